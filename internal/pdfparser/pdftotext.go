package pdfparser

import (
	"fmt"
	"os/exec"
	"strings"
)

// PdftotextExtractor shells out to poppler's pdftotext in layout mode, which
// keeps each printed row on one line.
type PdftotextExtractor struct {
	Command string
	run     func(name string, args ...string) ([]byte, error)
}

// NewPdftotextExtractor creates a PdftotextExtractor using "pdftotext" from PATH.
func NewPdftotextExtractor() *PdftotextExtractor {
	return &PdftotextExtractor{Command: "pdftotext", run: runCommand}
}

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output() // #nosec G204 -- fixed binary, user-provided file path
}

// ExtractPages implements PDFExtractor.
func (e *PdftotextExtractor) ExtractPages(pdfPath string) ([]string, error) {
	run := e.run
	if run == nil {
		run = runCommand
	}
	command := e.Command
	if command == "" {
		command = "pdftotext"
	}

	out, err := run(command, "-layout", pdfPath, "-")
	if err != nil {
		return nil, fmt.Errorf("error running %s: %w", command, err)
	}

	pages := splitPages(string(out))
	if !hasText(pages) {
		return nil, ErrNoText
	}
	return pages, nil
}

// splitPages splits pdftotext output on form feeds and normalizes each line.
func splitPages(out string) []string {
	raw := strings.Split(out, "\f")
	// pdftotext terminates every page, including the last, with a form feed
	if len(raw) > 1 && strings.TrimSpace(raw[len(raw)-1]) == "" {
		raw = raw[:len(raw)-1]
	}

	pages := make([]string, 0, len(raw))
	for _, page := range raw {
		var lines []string
		for _, line := range strings.Split(page, "\n") {
			if line = normalizeLine(line); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}
