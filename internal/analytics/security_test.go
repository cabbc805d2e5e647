package analytics

import (
	"math"
	"testing"

	"clearbrook/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSecurityMetrics(t *testing.T) {
	t.Run("single ticker return and risk", func(t *testing.T) {
		rows := joinedRowsFromPrices("T", domain.AssetClassEquity, 10, []float64{100, 102, 101, 104})

		out := SecurityMetrics(rows)
		require.Len(t, out, 1)
		row := out[0]

		// daily return sample is [0.02, -0.0098039, 0.0297030]
		mean := 0.013299682909467417
		stdev := 0.020588080632831

		require.NotNil(t, row.Return12m)
		require.InDelta(t, mean*math.Sqrt(250), *row.Return12m, 1e-6)
		require.InDelta(t, mean*math.Sqrt(375), *row.Return18m, 1e-6)
		require.InDelta(t, mean*math.Sqrt(500), *row.Return24m, 1e-6)
		require.InDelta(t, stdev*math.Sqrt(250), *row.Sigma12m, 1e-4)
		require.InDelta(t, mean/stdev, *row.RiskAdjustedReturn12m, 1e-4)
	})

	t.Run("risk-adjusted return is not annualized", func(t *testing.T) {
		rows := joinedRowsFromPrices("T", domain.AssetClassEquity, 10, []float64{100, 102, 101, 104})

		out := SecurityMetrics(rows)
		require.Len(t, out, 1)
		row := out[0]

		// return12m = mean·√250 and sigma12m = stdev·√250, so the
		// ratio return12m/riskAdjusted must recover sigma12m exactly.
		// if riskAdjusted were scaled too, this would be off by √250.
		require.InDelta(t, *row.Sigma12m, *row.Return12m / *row.RiskAdjustedReturn12m, 1e-9)
	})

	t.Run("weights sum to one over the whole holding set", func(t *testing.T) {
		rows := joinedRowsFromPrices("AAA", domain.AssetClassEquity, 10, []float64{100, 101, 103})
		rows = append(rows, joinedRowsFromPrices("BBB", domain.AssetClassCommodities, 3, []float64{50, 49, 51})...)
		rows = append(rows, joinedRowsFromPrices("CCC", domain.AssetClassFixedIncome, 7, []float64{20, 20.5})...)

		out := SecurityMetrics(rows)
		require.Len(t, out, 3)

		weightSum := 0.0
		for _, row := range out {
			weightSum += row.Weight
		}
		require.InDelta(t, 1.0, weightSum, 1e-9)
	})

	t.Run("ticker priced on one day keeps weight but nil stats", func(t *testing.T) {
		rows := joinedRowsFromPrices("AAA", domain.AssetClassEquity, 10, []float64{100, 101, 103})
		rows = append(rows, joinedRowsFromPrices("ONE", domain.AssetClassAlternatives, 4, []float64{75})...)

		out := SecurityMetrics(rows)
		require.Len(t, out, 2)

		var one SecurityMetricsRow
		for _, row := range out {
			if row.Ticker == "ONE" {
				one = row
			}
		}
		require.Nil(t, one.Return12m)
		require.Nil(t, one.Sigma12m)
		require.Nil(t, one.RiskAdjustedReturn12m)
		require.Greater(t, one.Weight, 0.0)

		weightSum := 0.0
		for _, row := range out {
			weightSum += row.Weight
		}
		require.InDelta(t, 1.0, weightSum, 1e-9)
	})

	t.Run("zero variance sample yields nil sigma and risk-adjusted", func(t *testing.T) {
		rows := joinedRowsFromPrices("FLAT", domain.AssetClassFixedIncome, 10, []float64{100, 100, 100})

		out := SecurityMetrics(rows)
		require.Len(t, out, 1)
		row := out[0]

		require.NotNil(t, row.Return12m)
		require.Equal(t, 0.0, *row.Return12m)
		require.Nil(t, row.Sigma12m)
		require.Nil(t, row.RiskAdjustedReturn12m)
	})

	t.Run("sorted by return12m descending with nils last", func(t *testing.T) {
		rows := joinedRowsFromPrices("UP", domain.AssetClassEquity, 1, []float64{100, 110})
		rows = append(rows, joinedRowsFromPrices("DOWN", domain.AssetClassEquity, 1, []float64{100, 90})...)
		rows = append(rows, joinedRowsFromPrices("ONE", domain.AssetClassEquity, 1, []float64{100})...)

		out := SecurityMetrics(rows)
		require.Len(t, out, 3)
		require.Equal(t, "UP", out[0].Ticker)
		require.Equal(t, "DOWN", out[1].Ticker)
		require.Equal(t, "ONE", out[2].Ticker)
	})
}

func TestSecurityMetrics_returnSampleSize(t *testing.T) {
	// every ticker's sample excludes exactly its first chronological row
	prices := []float64{100, 102, 101, 104, 103}
	rows := joinedRowsFromPrices("T", domain.AssetClassEquity, 10, prices)

	withPrior := 0
	for _, r := range rows {
		if r.PriorValue != nil {
			withPrior++
		}
	}
	require.Equal(t, len(prices)-1, withPrior)
}
