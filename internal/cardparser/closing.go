package cardparser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fjacquet/ccstmt-csv/internal/parsererror"
)

// ClosingHeader starts the first-page line that carries the statement period.
const ClosingHeader = "Opening/Closing Date"

const parserName = "card"

// ErrMissingClosingDate is returned when the first page has no ClosingHeader line.
var ErrMissingClosingDate = errors.New("statement has no '" + ClosingHeader + "' line on its first page")

// ClosingDate is the last day of the statement period, kept as the digit
// strings printed on the statement.
type ClosingDate struct {
	Month string
	Day   string
	Year  string
}

func (c ClosingDate) String() string {
	return c.Month + "/" + c.Day + "/" + c.Year
}

// ParseClosingDate parses an MM/DD/YYYY token.
func ParseClosingDate(token string) (ClosingDate, error) {
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return ClosingDate{}, &parsererror.ParseError{
			Parser: parserName,
			Field:  "closing date",
			Value:  token,
			Err:    errors.New("expected MM/DD/YYYY"),
		}
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return ClosingDate{}, &parsererror.ParseError{
				Parser: parserName,
				Field:  "closing date",
				Value:  token,
				Err:    err,
			}
		}
	}
	return ClosingDate{Month: parts[0], Day: parts[1], Year: parts[2]}, nil
}

// ClosingDateFromPages reads the closing date from the first page. The last
// token of the header line is the closing date.
func ClosingDateFromPages(pages []string) (ClosingDate, error) {
	if len(pages) == 0 {
		return ClosingDate{}, &parsererror.DataExtractionError{
			FieldName: "closing date",
			Reason:    "document has no pages",
			Err:       ErrMissingClosingDate,
		}
	}
	for _, line := range strings.Split(pages[0], "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, ClosingHeader) {
			continue
		}
		fields := strings.Fields(line)
		return ParseClosingDate(fields[len(fields)-1])
	}
	return ClosingDate{}, &parsererror.DataExtractionError{
		FieldName: "closing date",
		Reason:    fmt.Sprintf("no line starts with '%s'", ClosingHeader),
		Err:       ErrMissingClosingDate,
	}
}

// ResolveYear turns a purchase MM/DD into MM/DD/YYYY. December purchases on a
// statement that does not close in December belong to the previous year.
func ResolveYear(monthDay string, closing ClosingDate) string {
	month, day, _ := strings.Cut(monthDay, "/")
	year := closing.Year
	if month == "12" && month != closing.Month {
		if y, err := strconv.Atoi(closing.Year); err == nil {
			year = fmt.Sprintf("%0*d", len(closing.Year), y-1)
		}
	}
	return month + "/" + day + "/" + year
}
