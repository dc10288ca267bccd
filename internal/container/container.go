// Package container provides dependency injection for the ccstmt-csv application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/ccstmt-csv/internal/cardparser"
	"fjacquet/ccstmt-csv/internal/common"
	"fjacquet/ccstmt-csv/internal/config"
	"fjacquet/ccstmt-csv/internal/logging"
	"fjacquet/ccstmt-csv/internal/pdfparser"
	"fjacquet/ccstmt-csv/internal/report"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: fields are private and only
// reachable through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	extractor pdfparser.PDFExtractor
	parser    *cardparser.Adapter
	generator *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	extractor, err := pdfparser.NewExtractor(cfg.Parsers.PDF.Extractor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF extractor: %w", err)
	}

	generator := report.NewReportGenerator(logger, common.CSVOptions{
		Delimiter:      cfg.CSVDelimiter(),
		IncludeHeaders: cfg.CSV.IncludeHeaders,
	})

	logger.Debug("Container initialized",
		logging.F(logging.FieldExtractor, cfg.Parsers.PDF.Extractor),
		logging.F(logging.FieldFormat, cfg.Output.Format),
		logging.F(logging.FieldDelimiter, cfg.CSV.Delimiter))

	return &Container{
		logger:    logger,
		config:    cfg,
		extractor: extractor,
		parser:    cardparser.NewAdapter(logger, extractor),
		generator: generator,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetExtractor returns the configured PDF text extractor.
func (c *Container) GetExtractor() pdfparser.PDFExtractor {
	return c.extractor
}

// GetParser returns the statement parser.
func (c *Container) GetParser() *cardparser.Adapter {
	return c.parser
}

// GetReportGenerator returns the output renderer.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}
