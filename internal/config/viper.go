// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"fjacquet/ccstmt-csv/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CCSTMT_LOG_LEVEL.
const EnvPrefix = "CCSTMT"

var pdfExtractors = []string{"auto", "library", "pdftotext"}

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	Output struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"output" yaml:"output"`

	Parsers struct {
		PDF struct {
			Extractor string `mapstructure:"extractor" yaml:"extractor"`
		} `mapstructure:"pdf" yaml:"pdf"`
	} `mapstructure:"parsers" yaml:"parsers"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ccstmt-csv")
	v.AddConfigPath(".ccstmt-csv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// stdout carries the CSV, so warnings go to stderr
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", false)

	v.SetDefault("output.format", report.FormatCSV)

	v.SetDefault("parsers.pdf.extractor", "auto")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if !report.IsSupportedFormat(config.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be one of %s)",
			config.Output.Format, strings.Join(report.Formats(), ", "))
	}

	if !contains(pdfExtractors, config.Parsers.PDF.Extractor) {
		return fmt.Errorf("invalid PDF extractor: %s (must be one of %s)",
			config.Parsers.PDF.Extractor, strings.Join(pdfExtractors, ", "))
	}

	return nil
}

// CSVDelimiter returns the configured delimiter as a rune.
func (c *Config) CSVDelimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
