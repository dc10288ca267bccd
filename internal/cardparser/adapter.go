package cardparser

import (
	"errors"
	"fmt"

	"fjacquet/ccstmt-csv/internal/fileutils"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"
	"fjacquet/ccstmt-csv/internal/parsererror"
	"fjacquet/ccstmt-csv/internal/pdfparser"
)

// Adapter reads statement files through a PDF extractor and parses them.
type Adapter struct {
	extractor pdfparser.PDFExtractor
	logger    logging.Logger
}

// NewAdapter creates an Adapter. A nil extractor selects the default PDF
// extractor chain and a nil logger a stderr logrus logger.
func NewAdapter(logger logging.Logger, extractor pdfparser.PDFExtractor) *Adapter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if extractor == nil {
		extractor = pdfparser.NewDefaultExtractor(logger)
	}
	return &Adapter{
		extractor: extractor,
		logger:    logger.WithField(logging.FieldParser, parserName),
	}
}

// ParseFile extracts the text of one statement and parses its purchases.
func (a *Adapter) ParseFile(path string) ([]models.Purchase, error) {
	log := a.logger.WithField(logging.FieldFile, path)

	if err := fileutils.ValidateInputFile(path); err != nil {
		return nil, err
	}

	pages, err := a.extractor.ExtractPages(path)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "PDF",
			Msg:            "text extraction failed",
			Err:            err,
		}
	}
	log.Debug("Extracted statement text", logging.F(logging.FieldPages, len(pages)))

	stmt, err := Parse(pages)
	if err != nil {
		var dataErr *parsererror.DataExtractionError
		if errors.As(err, &dataErr) {
			dataErr.FilePath = path
		}
		return nil, err
	}

	if stmt.OrphanedLines > 0 {
		log.Debug("Dropped context lines above the first purchase",
			logging.F(logging.FieldOrphans, stmt.OrphanedLines))
	}
	log.Info("Parsed statement",
		logging.F(logging.FieldClosing, stmt.Closing.String()),
		logging.F(logging.FieldRetained, stmt.RetainedLines),
		logging.F(logging.FieldPurchases, len(stmt.Purchases)))

	return stmt.Purchases, nil
}

// ParseFiles parses each statement in order and concatenates the purchases.
// The first failing file aborts the whole batch.
func (a *Adapter) ParseFiles(paths []string) ([]models.Purchase, error) {
	purchases := []models.Purchase{}
	for _, path := range paths {
		p, err := a.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("error parsing statement %s: %w", path, err)
		}
		purchases = append(purchases, p...)
	}
	return purchases, nil
}
