package analytics

import (
	"time"

	"clearbrook/internal/domain"

	"github.com/shopspring/decimal"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func day(n int) time.Time {
	return time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

// joinedRowsFromPrices builds the joined rows one ticker produces from a
// daily price series starting at day(1), with the row-lag prior values
// already populated.
func joinedRowsFromPrices(ticker string, class domain.AssetClass, quantity float64, prices []float64) []JoinedRow {
	out := []JoinedRow{}
	for i, price := range prices {
		row := JoinedRow{
			CustomerID:      "164",
			FullName:        "Leslie Voss",
			MajorAssetClass: class,
			Ticker:          ticker,
			SecurityName:    ticker + " fund",
			Quantity:        dec(quantity),
			Date:            day(i + 1),
			Value:           dec(price),
			PositionValue:   dec(quantity).Mul(dec(price)),
		}
		if i > 0 {
			prior := dec(prices[i-1])
			row.PriorValue = &prior
		}
		out = append(out, row)
	}
	return out
}
