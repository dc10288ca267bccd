// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"
)

// StatementParser turns statement files into purchases, in file order.
type StatementParser interface {
	ParseFiles(paths []string) ([]models.Purchase, error)
}

// Renderer writes purchases to w in the given output format.
type Renderer interface {
	Write(w io.Writer, purchases []models.Purchase, format string) error
}

// ProcessFiles parses every file, renders the combined purchases once and
// logs a run summary. Nothing reaches out unless every file parsed.
func ProcessFiles(p StatementParser, r Renderer, paths []string, format string, out io.Writer, log logging.Logger) error {
	purchases, err := p.ParseFiles(paths)
	if err != nil {
		return err
	}

	if err := r.Write(out, purchases, format); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	total, skipped := models.Total(purchases)
	fields := []logging.Field{
		logging.F(logging.FieldFiles, len(paths)),
		logging.F(logging.FieldPurchases, len(purchases)),
		logging.F(logging.FieldTotal, total.StringFixed(2)),
	}
	if skipped > 0 {
		fields = append(fields, logging.F(logging.FieldSkipped, skipped))
	}
	log.Info("Conversion completed successfully", fields...)
	return nil
}
