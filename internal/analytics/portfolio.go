package analytics

type PortfolioMetricsRow struct {
	CustomerID            string
	Return12m             *float64
	Sigma12m              *float64
	RiskAdjustedReturn12m *float64
}

// AggregatePortfolio collapses per-security metrics into one
// weight-aggregated row for the customer.
//
// Null policy: securities with a nil metric are skipped and the weights
// of the remaining rows are renormalized, so a single thinly-traded
// position cannot blank out the whole portfolio figure. If every
// constituent is nil the aggregate is nil.
func AggregatePortfolio(customerID string, rows []SecurityMetricsRow) PortfolioMetricsRow {
	return PortfolioMetricsRow{
		CustomerID: customerID,
		Return12m: weightedAverage(rows, func(r SecurityMetricsRow) *float64 {
			return r.Return12m
		}),
		Sigma12m: weightedAverage(rows, func(r SecurityMetricsRow) *float64 {
			return r.Sigma12m
		}),
		RiskAdjustedReturn12m: weightedAverage(rows, func(r SecurityMetricsRow) *float64 {
			return r.RiskAdjustedReturn12m
		}),
	}
}

func weightedAverage(rows []SecurityMetricsRow, metric func(SecurityMetricsRow) *float64) *float64 {
	sum := 0.0
	weightTotal := 0.0
	for _, r := range rows {
		m := metric(r)
		if m == nil {
			continue
		}
		sum += *m * r.Weight
		weightTotal += r.Weight
	}
	if weightTotal == 0 {
		return nil
	}
	return floatPtr(sum / weightTotal)
}
