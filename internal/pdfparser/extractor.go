// Package pdfparser extracts per-page plain text from statement PDFs.
//
// Statement lines must come out whole: a purchase row printed as several
// text runs is only recognizable when the runs are merged back onto one line.
// Both extractors therefore emit one line per physical row with single
// spaces between words.
package pdfparser

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/ccstmt-csv/internal/logging"
)

// ErrNoText is returned when a document yields no text at all, which is the
// case for scanned statements.
var ErrNoText = errors.New("no text could be extracted")

// PDFExtractor extracts text from a PDF file, one string per page.
type PDFExtractor interface {
	ExtractPages(pdfPath string) ([]string, error)
}

// Extractor backends accepted by NewExtractor.
const (
	BackendAuto      = "auto"
	BackendLibrary   = "library"
	BackendPdftotext = "pdftotext"
)

// NewExtractor returns the extractor for a configured backend name.
func NewExtractor(backend string, logger logging.Logger) (PDFExtractor, error) {
	switch backend {
	case "", BackendAuto:
		return NewDefaultExtractor(logger), nil
	case BackendLibrary:
		return NewLibraryExtractor(), nil
	case BackendPdftotext:
		return NewPdftotextExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown PDF extractor backend %q", backend)
	}
}

// NewDefaultExtractor tries the pure Go library first and falls back to the
// pdftotext command.
func NewDefaultExtractor(logger logging.Logger) *FallbackExtractor {
	return NewFallbackExtractor(logger,
		NamedExtractor{Name: BackendLibrary, Extractor: NewLibraryExtractor()},
		NamedExtractor{Name: BackendPdftotext, Extractor: NewPdftotextExtractor()},
	)
}

// NamedExtractor pairs an extractor with the name used in logs.
type NamedExtractor struct {
	Name      string
	Extractor PDFExtractor
}

// FallbackExtractor returns the pages of the first extractor that succeeds.
type FallbackExtractor struct {
	chain  []NamedExtractor
	logger logging.Logger
}

// NewFallbackExtractor creates a FallbackExtractor over chain, in order.
func NewFallbackExtractor(logger logging.Logger, chain ...NamedExtractor) *FallbackExtractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &FallbackExtractor{chain: chain, logger: logger}
}

// ExtractPages implements PDFExtractor.
func (f *FallbackExtractor) ExtractPages(pdfPath string) ([]string, error) {
	var errs []error
	for _, ne := range f.chain {
		pages, err := ne.Extractor.ExtractPages(pdfPath)
		if err == nil {
			f.logger.Debug("Extracted PDF text",
				logging.F(logging.FieldFile, pdfPath),
				logging.F(logging.FieldExtractor, ne.Name),
				logging.F(logging.FieldPages, len(pages)))
			return pages, nil
		}
		f.logger.WithError(err).Debug("PDF extractor failed, trying next",
			logging.F(logging.FieldFile, pdfPath),
			logging.F(logging.FieldExtractor, ne.Name))
		errs = append(errs, fmt.Errorf("%s: %w", ne.Name, err))
	}
	if len(errs) == 0 {
		return nil, errors.New("no PDF extractor configured")
	}
	return nil, errors.Join(errs...)
}

// MockPDFExtractor returns fixed pages or a fixed error. Requested paths are
// recorded in Calls.
type MockPDFExtractor struct {
	MockPages []string
	MockErr   error
	Calls     []string
}

// NewMockPDFExtractor creates a MockPDFExtractor.
func NewMockPDFExtractor(pages []string, err error) *MockPDFExtractor {
	return &MockPDFExtractor{MockPages: pages, MockErr: err}
}

// ExtractPages returns the predefined pages or error.
func (m *MockPDFExtractor) ExtractPages(pdfPath string) ([]string, error) {
	m.Calls = append(m.Calls, pdfPath)
	if m.MockErr != nil {
		return nil, m.MockErr
	}
	return m.MockPages, nil
}

// normalizeLine collapses runs of whitespace to single spaces.
func normalizeLine(line string) string {
	return strings.Join(strings.Fields(line), " ")
}

// hasText reports whether any page has a non-blank character.
func hasText(pages []string) bool {
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}
