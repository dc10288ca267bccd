// Package models holds the records produced by the statement parser.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Purchase is one purchase line of a card statement together with the
// continuation lines and exchange annotations that belong to it.
//
// Optional exchange fields are nil when the statement carried no annotation.
// Itinerary is nil when the purchase has no travel legs.
type Purchase struct {
	Date            string   `yaml:"date"`
	MerchantCity    []string `yaml:"merchant_city"`
	State           string   `yaml:"state"`
	Amount          string   `yaml:"amount"`
	Itinerary       []string `yaml:"itinerary,omitempty"`
	ForeignAmount   *string  `yaml:"foreign_amount,omitempty"`
	ExchangeRate    *string  `yaml:"exchange_rate,omitempty"`
	ExchangeDate    *string  `yaml:"exchange_date,omitempty"`
	ForeignCurrency *string  `yaml:"foreign_currency,omitempty"`
}

// Merchant returns the merchant and city tokens joined by a single space.
func (p Purchase) Merchant() string {
	return strings.Join(p.MerchantCity, " ")
}

// ItineraryText returns the itinerary lines joined by "; ", or "" when there are none.
func (p Purchase) ItineraryText() string {
	if len(p.Itinerary) == 0 {
		return ""
	}
	return strings.Join(p.Itinerary, "; ")
}

// HasExchange reports whether the purchase was made in a foreign currency.
func (p Purchase) HasExchange() bool {
	return p.ForeignAmount != nil && *p.ForeignAmount != ""
}

// AmountDecimal parses Amount, ignoring thousands separators. Amounts are
// passed through from the statement unvalidated, so this can fail on garbage
// input.
func (p Purchase) AmountDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(p.Amount, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", p.Amount, err)
	}
	return d, nil
}

// String renders the purchase as a tab separated listing line followed by
// indented itinerary lines.
func (p Purchase) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\t%s\t%s\t%s", p.Date, p.Merchant(), p.State, p.Amount)
	if p.HasExchange() {
		fmt.Fprintf(&b, "\t(%s %s @ %s on %s)",
			deref(p.ForeignAmount), deref(p.ForeignCurrency),
			deref(p.ExchangeRate), deref(p.ExchangeDate))
	}
	for i, leg := range p.Itinerary {
		b.WriteString("\n\t")
		if i > 0 {
			b.WriteString("       ")
		}
		b.WriteString(leg)
	}
	return b.String()
}

// Total sums the purchase amounts. Amounts that do not parse are counted in
// skipped rather than failing the sum.
func Total(purchases []Purchase) (total decimal.Decimal, skipped int) {
	total = decimal.Zero
	for _, p := range purchases {
		d, err := p.AmountDecimal()
		if err != nil {
			skipped++
			continue
		}
		total = total.Add(d)
	}
	return total, skipped
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
