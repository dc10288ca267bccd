package pdfparser

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// LibraryExtractor reads PDFs with github.com/ledongthuc/pdf, rebuilding
// each page row by row.
type LibraryExtractor struct{}

// NewLibraryExtractor creates a LibraryExtractor.
func NewLibraryExtractor() *LibraryExtractor {
	return &LibraryExtractor{}
}

// ExtractPages implements PDFExtractor. Panics inside the PDF library are
// reported as errors.
func (e *LibraryExtractor) ExtractPages(pdfPath string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	n := r.NumPage()
	if n == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("error reading page %d: %w", i, err)
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			if line := normalizeLine(strings.Join(words, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}

	if !hasText(pages) {
		return nil, ErrNoText
	}
	return pages, nil
}
