package cardparser

import (
	"strings"

	"fjacquet/ccstmt-csv/internal/models"
)

// Statement is the result of parsing one statement's text.
type Statement struct {
	Closing   ClosingDate
	Purchases []models.Purchase
	// RetainedLines counts the lines that had a recognized shape.
	RetainedLines int
	// OrphanedLines counts itinerary and exchange lines above the first
	// purchase. They are dropped.
	OrphanedLines int
}

// Parse reads the closing date from the first page and extracts the
// purchases of all pages in document order.
func Parse(pages []string) (*Statement, error) {
	closing, err := ClosingDateFromPages(pages)
	if err != nil {
		return nil, err
	}

	lines := FilterLines(strings.Split(strings.Join(pages, "\n"), "\n"))
	purchases, orphans := fold(closing, lines)

	return &Statement{
		Closing:       closing,
		Purchases:     purchases,
		RetainedLines: len(lines),
		OrphanedLines: orphans,
	}, nil
}

// ParsePurchases folds filtered statement lines, in document order, into
// purchases in document order. Lines without a recognized shape are ignored.
func ParsePurchases(closing ClosingDate, lines []string) []models.Purchase {
	purchases, _ := fold(closing, lines)
	return purchases
}

// pending holds the context collected below a purchase line while walking
// the statement upwards.
type pending struct {
	itinerary []string // reversed
	rate      *ExchangeRate
	currency  *ExchangeCurrency
}

func (p *pending) size() int {
	n := len(p.itinerary)
	if p.rate != nil {
		n++
	}
	if p.currency != nil {
		n++
	}
	return n
}

func fold(closing ClosingDate, lines []string) ([]models.Purchase, int) {
	var (
		purchases []models.Purchase
		ctx       pending
	)

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])

		switch l := Classify(line).(type) {
		case PurchaseLine:
			purchases = append(purchases, newPurchase(l, closing, ctx))
			ctx = pending{}
		case ExchangeCurrency:
			ctx.currency = &l
		case ExchangeRate:
			ctx.rate = &l
		case TravelLegFirst:
			ctx.itinerary = append(ctx.itinerary, l.Text)
		case TravelLegContinuation:
			ctx.itinerary = append(ctx.itinerary, l.Text)
		}
	}

	for i, j := 0, len(purchases)-1; i < j; i, j = i+1, j-1 {
		purchases[i], purchases[j] = purchases[j], purchases[i]
	}
	return purchases, ctx.size()
}

func newPurchase(l PurchaseLine, closing ClosingDate, ctx pending) models.Purchase {
	p := models.Purchase{
		Date: ResolveYear(l.Date, closing),
	}

	fields := l.Fields
	p.Amount = strings.ReplaceAll(fields[len(fields)-1], ",", "")
	if len(fields) >= 3 {
		p.State = fields[len(fields)-2]
		merchant := fields[1 : len(fields)-2]
		if len(merchant) > 0 && merchant[0] == "&" {
			merchant = merchant[1:]
		}
		p.MerchantCity = append([]string{}, merchant...)
	} else {
		p.MerchantCity = []string{}
	}

	if len(ctx.itinerary) > 0 {
		p.Itinerary = make([]string, len(ctx.itinerary))
		for i, leg := range ctx.itinerary {
			p.Itinerary[len(ctx.itinerary)-1-i] = leg
		}
	}
	if ctx.rate != nil {
		p.ForeignAmount = models.StringPtr(ctx.rate.ForeignAmount)
		p.ExchangeRate = models.StringPtr(ctx.rate.Rate)
	}
	if ctx.currency != nil {
		p.ExchangeDate = models.StringPtr(ctx.currency.Date)
		p.ForeignCurrency = models.StringPtr(ctx.currency.Currency)
	}
	return p
}
