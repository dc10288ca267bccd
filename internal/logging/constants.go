package logging

// Standardized field names for structured logging.
const (
	FieldFile      = "file_path"
	FieldFiles     = "files"
	FieldParser    = "parser"
	FieldExtractor = "extractor"
	FieldPages     = "pages"
	FieldRetained  = "retained_lines"
	FieldPurchases = "purchases"
	FieldOrphans   = "orphaned_lines"
	FieldClosing   = "closing_date"
	FieldFormat    = "format"
	FieldDelimiter = "delimiter"
	FieldTotal     = "total"
	FieldSkipped   = "unparsed_amounts"
)
