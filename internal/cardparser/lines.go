// Package cardparser turns the text of a credit-card statement into purchases.
//
// Statement text is reduced to the lines matching one of five line shapes,
// then folded bottom-to-top so that itinerary legs and exchange annotations,
// which are printed below their purchase, are already collected when the
// purchase line itself is reached.
package cardparser

import (
	"regexp"
	"strings"
)

// LineKind identifies which of the recognized line shapes a line has.
type LineKind int

const (
	KindPurchase LineKind = iota + 1
	KindTravelLegFirst
	KindTravelLegContinuation
	KindExchangeRate
	KindExchangeCurrency
)

func (k LineKind) String() string {
	switch k {
	case KindPurchase:
		return "purchase"
	case KindTravelLegFirst:
		return "travel-leg-first"
	case KindTravelLegContinuation:
		return "travel-leg-continuation"
	case KindExchangeRate:
		return "exchange-rate"
	case KindExchangeCurrency:
		return "exchange-currency"
	default:
		return "unknown"
	}
}

var (
	purchaseRx              = regexp.MustCompile(`^[0-9]{2}/[0-9]{2} .* -?[0-9,]*\.\d{2}$`)
	travelLegFirstRx        = regexp.MustCompile(`^[0-9]{6} [0-9]`)
	travelLegContinuationRx = regexp.MustCompile(`^[0-9]+ +.. [A-Z]{3}`)
	exchangeRateRx          = regexp.MustCompile(`([0-9,]+\.\d{2}) X (\d+\.\d+) \(EXCHG RATE\)$`)
	exchangeCurrencyRx      = regexp.MustCompile(`^(\d{2}/\d{2}) +((\w+ ?)+)`)
)

// Line is a classified statement line. It is one of PurchaseLine,
// ExchangeCurrency, ExchangeRate, TravelLegFirst or TravelLegContinuation.
type Line interface {
	Kind() LineKind
}

// PurchaseLine is a line starting with MM/DD and ending in an amount.
// Fields holds every whitespace separated token of the line, date included.
type PurchaseLine struct {
	Date   string
	Fields []string
}

// TravelLegFirst is the first leg of an itinerary: six digits, a space, a digit.
type TravelLegFirst struct {
	Text string
}

// TravelLegContinuation is a following itinerary leg ending in an airport code.
type TravelLegContinuation struct {
	Text string
}

// ExchangeRate carries the "<amount> X <rate> (EXCHG RATE)" annotation.
type ExchangeRate struct {
	ForeignAmount string
	Rate          string
}

// ExchangeCurrency carries the quote date and currency description.
type ExchangeCurrency struct {
	Date     string
	Currency string
}

func (PurchaseLine) Kind() LineKind          { return KindPurchase }
func (TravelLegFirst) Kind() LineKind        { return KindTravelLegFirst }
func (TravelLegContinuation) Kind() LineKind { return KindTravelLegContinuation }
func (ExchangeRate) Kind() LineKind          { return KindExchangeRate }
func (ExchangeCurrency) Kind() LineKind      { return KindExchangeCurrency }

// MatchPurchase recognizes a purchase line.
func MatchPurchase(line string) (PurchaseLine, bool) {
	if !purchaseRx.MatchString(line) {
		return PurchaseLine{}, false
	}
	fields := strings.Fields(line)
	return PurchaseLine{Date: fields[0], Fields: fields}, true
}

// MatchTravelLegFirst recognizes the first leg of an itinerary.
func MatchTravelLegFirst(line string) (TravelLegFirst, bool) {
	if !travelLegFirstRx.MatchString(line) {
		return TravelLegFirst{}, false
	}
	return TravelLegFirst{Text: line}, true
}

// MatchTravelLegContinuation recognizes a continuing leg of an itinerary.
func MatchTravelLegContinuation(line string) (TravelLegContinuation, bool) {
	if !travelLegContinuationRx.MatchString(line) {
		return TravelLegContinuation{}, false
	}
	return TravelLegContinuation{Text: line}, true
}

// MatchExchangeRate recognizes an exchange amount/rate annotation anywhere
// before the end of the line.
func MatchExchangeRate(line string) (ExchangeRate, bool) {
	m := exchangeRateRx.FindStringSubmatch(line)
	if m == nil {
		return ExchangeRate{}, false
	}
	return ExchangeRate{ForeignAmount: m[1], Rate: m[2]}, true
}

// MatchExchangeCurrency recognizes an exchange quote date followed by the
// currency description.
func MatchExchangeCurrency(line string) (ExchangeCurrency, bool) {
	m := exchangeCurrencyRx.FindStringSubmatch(line)
	if m == nil {
		return ExchangeCurrency{}, false
	}
	return ExchangeCurrency{Date: m[1], Currency: strings.TrimSpace(m[2])}, true
}

// Retained reports whether a line has any of the five recognized shapes.
func Retained(line string) bool {
	return purchaseRx.MatchString(line) ||
		travelLegFirstRx.MatchString(line) ||
		travelLegContinuationRx.MatchString(line) ||
		exchangeRateRx.MatchString(line) ||
		exchangeCurrencyRx.MatchString(line)
}

// FilterLines trims every line and keeps those that are Retained, in order.
func FilterLines(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if Retained(l) {
			kept = append(kept, l)
		}
	}
	return kept
}

// Classify returns the decisive shape of a line, or nil if it has none.
//
// A line may match several shapes. Purchase wins over exchange currency,
// which wins over exchange rate; any remaining retained line is an
// itinerary leg.
func Classify(line string) Line {
	if p, ok := MatchPurchase(line); ok {
		return p
	}
	if c, ok := MatchExchangeCurrency(line); ok {
		return c
	}
	if r, ok := MatchExchangeRate(line); ok {
		return r
	}
	if l, ok := MatchTravelLegFirst(line); ok {
		return l
	}
	if l, ok := MatchTravelLegContinuation(line); ok {
		return l
	}
	return nil
}
