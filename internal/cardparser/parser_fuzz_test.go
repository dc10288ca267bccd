package cardparser

import (
	"strings"
	"testing"
)

func FuzzParsePurchases(f *testing.F) {
	for _, page := range statementPages() {
		f.Add(page)
	}
	f.Add("01/06  2.00\n12/17 EURO")
	f.Add("12/31 & 1,000,000.00\n123456 7\n1  AB XYZ")

	f.Fuzz(func(t *testing.T, s string) {
		lines := FilterLines(strings.Split(s, "\n"))

		want := 0
		for _, l := range lines {
			if _, ok := MatchPurchase(l); ok {
				want++
			}
		}

		purchases := ParsePurchases(januaryClosing, lines)
		if len(purchases) != want {
			t.Fatalf("got %d purchases for %d purchase lines", len(purchases), want)
		}
		for _, p := range purchases {
			if strings.Count(p.Date, "/") != 2 {
				t.Errorf("date %q is not MM/DD/YYYY", p.Date)
			}
			if strings.Contains(p.Amount, ",") {
				t.Errorf("amount %q still has thousands separators", p.Amount)
			}
			if p.Itinerary != nil && len(p.Itinerary) == 0 {
				t.Error("empty itinerary must be nil")
			}
		}
	})
}
