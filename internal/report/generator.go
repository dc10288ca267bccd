// Package report renders extracted purchases in the supported output formats.
package report

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/ccstmt-csv/internal/common"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/models"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatText = "text"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatCSV, FormatText, FormatYAML}
}

// IsSupportedFormat reports whether format can be rendered.
func IsSupportedFormat(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// ReportGenerator renders purchases as csv, text listing or yaml.
type ReportGenerator struct {
	logger logging.Logger
	csv    common.CSVOptions
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger, csvOpts common.CSVOptions) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{
		logger: logger.WithField("component", "ReportGenerator"),
		csv:    csvOpts,
	}
}

// Generate renders every purchase in the given format. The full document is
// built in memory, so a failure leaves nothing half written.
func (g *ReportGenerator) Generate(purchases []models.Purchase, format string) ([]byte, error) {
	switch format {
	case FormatCSV:
		return g.generateCSV(purchases)
	case FormatText:
		return g.generateText(purchases), nil
	case FormatYAML:
		return g.generateYAML(purchases)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Write renders purchases and writes the result to w in a single call.
func (g *ReportGenerator) Write(w io.Writer, purchases []models.Purchase, format string) error {
	out, err := g.Generate(purchases, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write %s output: %w", format, err)
	}
	g.logger.Debug("Output written",
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldPurchases, len(purchases)))
	return nil
}

func (g *ReportGenerator) generateCSV(purchases []models.Purchase) ([]byte, error) {
	out, err := common.MarshalPurchasesCSV(purchases, g.csv)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV output")
		return nil, err
	}
	return out, nil
}

func (g *ReportGenerator) generateText(purchases []models.Purchase) []byte {
	var sb strings.Builder
	for _, p := range purchases {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func (g *ReportGenerator) generateYAML(purchases []models.Purchase) ([]byte, error) {
	if purchases == nil {
		purchases = []models.Purchase{}
	}
	out, err := yaml.Marshal(purchases)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML output")
		return nil, fmt.Errorf("failed to marshal YAML output: %w", err)
	}
	return out, nil
}
