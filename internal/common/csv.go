// Package common provides the CSV row shaping shared by the output formats.
package common

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"fjacquet/ccstmt-csv/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV columns unless configured otherwise.
const DefaultDelimiter rune = ','

// PurchaseRow is one CSV output row. Column order is fixed.
type PurchaseRow struct {
	Date      string `csv:"date"`
	Merchant  string `csv:"merchant"`
	State     string `csv:"state"`
	Itinerary string `csv:"itinerary"`
	Amount    string `csv:"amount"`
}

// CSVOptions controls CSV rendering.
type CSVOptions struct {
	Delimiter      rune
	IncludeHeaders bool
}

// NewPurchaseRow flattens a purchase into its CSV row.
func NewPurchaseRow(p models.Purchase) PurchaseRow {
	return PurchaseRow{
		Date:      p.Date,
		Merchant:  p.Merchant(),
		State:     p.State,
		Itinerary: p.ItineraryText(),
		Amount:    p.Amount,
	}
}

// MarshalPurchasesCSV renders all purchases into memory. Nothing is returned
// unless every row was written.
func MarshalPurchasesCSV(purchases []models.Purchase, opts CSVOptions) ([]byte, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = DefaultDelimiter
	}

	rows := make([]PurchaseRow, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, NewPurchaseRow(p))
	}
	if len(rows) == 0 && !opts.IncludeHeaders {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = opts.Delimiter
	out := gocsv.NewSafeCSVWriter(csvWriter)

	var err error
	if opts.IncludeHeaders {
		err = gocsv.MarshalCSV(rows, out)
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(rows, out)
	}
	if err != nil {
		return nil, fmt.Errorf("error writing CSV data: %w", err)
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return nil, fmt.Errorf("error flushing CSV data: %w", err)
	}
	return buf.Bytes(), nil
}
