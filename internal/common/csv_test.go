package common

import (
	"testing"

	"fjacquet/ccstmt-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePurchases() []models.Purchase {
	return []models.Purchase{
		{
			Date:         "12/18/2022",
			MerchantCity: []string{"DELTA", "AIR", "LINES", "ATLANTA"},
			State:        "GA",
			Amount:       "512.30",
			Itinerary:    []string{"006123 1 DL ATL", "2 DL JFK"},
		},
		{
			Date:          "12/20/2022",
			MerchantCity:  []string{"CAFE", "DE", "FLORE,", "PARIS"},
			State:         "FR",
			Amount:        "-103.01",
			ForeignAmount: models.StringPtr("95.00"),
		},
		{
			Date:         "01/05/2023",
			MerchantCity: []string{},
			State:        "NY",
			Amount:       "1045.67",
		},
	}
}

func TestNewPurchaseRow(t *testing.T) {
	row := NewPurchaseRow(samplePurchases()[0])
	assert.Equal(t, PurchaseRow{
		Date:      "12/18/2022",
		Merchant:  "DELTA AIR LINES ATLANTA",
		State:     "GA",
		Itinerary: "006123 1 DL ATL; 2 DL JFK",
		Amount:    "512.30",
	}, row)
}

func TestMarshalPurchasesCSV(t *testing.T) {
	tests := []struct {
		name     string
		opts     CSVOptions
		expected string
	}{
		{
			name: "header-less default",
			opts: CSVOptions{},
			expected: "12/18/2022,DELTA AIR LINES ATLANTA,GA,006123 1 DL ATL; 2 DL JFK,512.30\n" +
				"12/20/2022,\"CAFE DE FLORE, PARIS\",FR,,-103.01\n" +
				"01/05/2023,,NY,,1045.67\n",
		},
		{
			name: "semicolon with header",
			opts: CSVOptions{Delimiter: ';', IncludeHeaders: true},
			expected: "date;merchant;state;itinerary;amount\n" +
				"12/18/2022;DELTA AIR LINES ATLANTA;GA;\"006123 1 DL ATL; 2 DL JFK\";512.30\n" +
				"12/20/2022;CAFE DE FLORE, PARIS;FR;;-103.01\n" +
				"01/05/2023;;NY;;1045.67\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := MarshalPurchasesCSV(samplePurchases(), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestMarshalPurchasesCSV_Empty(t *testing.T) {
	out, err := MarshalPurchasesCSV(nil, CSVOptions{})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = MarshalPurchasesCSV(nil, CSVOptions{IncludeHeaders: true})
	require.NoError(t, err)
	assert.Equal(t, "date,merchant,state,itinerary,amount\n", string(out))
}
