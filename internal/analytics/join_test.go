package analytics

import (
	"testing"

	"clearbrook/internal/db/models/postgres/public/model"
	"clearbrook/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	params := JoinParams{
		CustomerIDs: []string{"164"},
		Start:       day(0),
		End:         day(10),
		PriceType:   "Adj_Close",
	}
	customers := []model.Customer{
		{CustomerID: "164", FullName: "Leslie Voss"},
		{CustomerID: "999", FullName: "Somebody Else"},
	}
	accounts := []model.Account{
		{AccountID: "acct-1", ClientID: "164", AcctOpenDate: day(-100)},
		{AccountID: "acct-other", ClientID: "999", AcctOpenDate: day(-100)},
	}
	holdings := []model.Holding{
		{AccountID: "acct-1", Ticker: "SPY", Quantity: dec(10)},
		{AccountID: "acct-1", Ticker: "GLD", Quantity: dec(5)},
		{AccountID: "acct-1", Ticker: "ORPHAN", Quantity: dec(2)},
		{AccountID: "acct-other", Ticker: "SPY", Quantity: dec(100)},
	}
	securities := []model.SecurityMaster{
		{Ticker: "SPY", SecurityName: "SPDR S&P 500", MajorAssetClass: "equty", MinorAssetClass: "large cap"},
		{Ticker: "GLD", SecurityName: "SPDR Gold Shares", MajorAssetClass: "commodities", MinorAssetClass: "gold"},
		{Ticker: "ORPHAN", SecurityName: "No Prices Fund", MajorAssetClass: "equity", MinorAssetClass: ""},
	}
	prices := []model.PricingDaily{
		{Ticker: "SPY", Date: day(1), PriceType: "Adj_Close", Value: dec(100)},
		{Ticker: "SPY", Date: day(2), PriceType: "Adj_Close", Value: dec(102)},
		// note the calendar gap: day(3) is missing, the lag still
		// picks up day(2)'s value
		{Ticker: "SPY", Date: day(4), PriceType: "Adj_Close", Value: dec(101)},
		{Ticker: "SPY", Date: day(2), PriceType: "Close", Value: dec(90)},
		{Ticker: "SPY", Date: day(20), PriceType: "Adj_Close", Value: dec(130)},
		{Ticker: "GLD", Date: day(1), PriceType: "Adj_Close", Value: dec(150)},
		{Ticker: "GLD", Date: day(2), PriceType: "Adj_Close", Value: dec(151.5)},
	}

	t.Run("inner-join semantics and filters", func(t *testing.T) {
		rows := Join(params, customers, accounts, holdings, securities, prices)

		// ORPHAN has no prices, acct-other belongs to another customer,
		// Close rows and out-of-window rows are filtered
		require.Len(t, rows, 5)
		for _, r := range rows {
			require.Equal(t, "164", r.CustomerID)
			require.NotEqual(t, "ORPHAN", r.Ticker)
			require.False(t, r.Date.After(day(10)))
		}
	})

	t.Run("no security master entry drops the holding", func(t *testing.T) {
		moreHoldings := append(holdings, model.Holding{AccountID: "acct-1", Ticker: "UNKNOWN", Quantity: dec(1)})
		morePrices := append(prices, model.PricingDaily{Ticker: "UNKNOWN", Date: day(1), PriceType: "Adj_Close", Value: dec(10)})

		rows := Join(params, customers, accounts, moreHoldings, securities, morePrices)
		for _, r := range rows {
			require.NotEqual(t, "UNKNOWN", r.Ticker)
		}
	})

	t.Run("prior value lags by row not by calendar day", func(t *testing.T) {
		rows := Join(params, customers, accounts, holdings, securities, prices)

		spy := []JoinedRow{}
		for _, r := range rows {
			if r.Ticker == "SPY" {
				spy = append(spy, r)
			}
		}
		require.Len(t, spy, 3)

		require.Nil(t, spy[0].PriorValue)
		require.True(t, spy[1].Date.After(spy[0].Date))
		require.True(t, spy[2].Date.After(spy[1].Date))
		require.True(t, spy[1].PriorValue.Equal(spy[0].Value))
		// day(4) row lags day(2)'s value across the gap
		require.True(t, spy[2].PriorValue.Equal(spy[1].Value))
	})

	t.Run("asset class labels normalize downstream", func(t *testing.T) {
		rows := Join(params, customers, accounts, holdings, securities, prices)

		for _, r := range rows {
			if r.Ticker == "SPY" {
				require.Equal(t, domain.AssetClassEquity, r.MajorAssetClass)
			}
			if r.Ticker == "GLD" {
				require.Equal(t, domain.AssetClassCommodities, r.MajorAssetClass)
			}
		}
	})

	t.Run("position value is quantity times value", func(t *testing.T) {
		rows := Join(params, customers, accounts, holdings, securities, prices)

		for _, r := range rows {
			require.True(t, r.PositionValue.Equal(r.Quantity.Mul(r.Value)))
		}
	})
}
