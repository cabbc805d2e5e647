package domain

import (
	"github.com/montanaflynn/stats"
)

// typed numbers for the analytics layer. a bare float64 is ambiguous
// about its unit; these make the intent explicit at call sites.

type Percent float64
type PercentData []Percent

func (p Percent) AsFraction() float64 {
	return float64(p)
}

func (p Percent) AsPercent() float64 {
	return p.AsFraction() * 100
}

func PercentFromFraction(f float64) Percent {
	return Percent(f)
}

// ToStatsData keeps the values as fractions. Return/risk statistics and
// their annualization constants all operate on fractional daily returns.
func (pd PercentData) ToStatsData() stats.Float64Data {
	out := make(stats.Float64Data, len(pd))
	for i, n := range pd {
		out[i] = n.AsFraction()
	}
	return out
}
