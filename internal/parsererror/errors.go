// Package parsererror defines the typed errors returned while reading statements.
package parsererror

import "fmt"

// ParseError represents a value that was found but could not be interpreted.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input rejected before parsing started.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an input file that is not of the expected
// document type, e.g. a file the PDF extractor cannot open.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s: %v",
			e.FilePath, e.Msg, e.ExpectedFormat, e.Err)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// DataExtractionError represents required data missing from an otherwise
// readable document.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
	Err       error
}

func (e *DataExtractionError) Error() string {
	file := e.FilePath
	if file == "" {
		file = "<text>"
	}
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		file, e.FieldName, e.Reason)
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}
