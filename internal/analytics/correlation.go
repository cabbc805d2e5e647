package analytics

import (
	"math"

	"clearbrook/internal/domain"
)

// ClassPair is an unordered asset-class pair, stored in canonical order
// (the order of domain.MajorAssetClasses).
type ClassPair struct {
	A domain.AssetClass
	B domain.AssetClass
}

// PairwiseCorrelations computes the Pearson coefficient for every
// 2-combination of the canonical asset classes over the class daily
// return series.
//
// Observations are pairwise-complete: a date contributes to a pair only
// when both series are non-nil on that date, and an excluded date
// contributes to none of the accumulators for that pair. A pair with no
// overlapping observations, or with a constant series over the overlap,
// has a nil coefficient. Coefficients are rounded to 3 decimal places.
func PairwiseCorrelations(rows []ClassDailyReturnRow) map[ClassPair]*float64 {
	classes := domain.MajorAssetClasses()

	out := map[ClassPair]*float64{}
	for i := range classes {
		for j := i + 1; j < len(classes); j++ {
			xs := []float64{}
			ys := []float64{}
			for _, row := range rows {
				x := row.Returns[classes[i]]
				y := row.Returns[classes[j]]
				if x == nil || y == nil {
					continue
				}
				xs = append(xs, *x)
				ys = append(ys, *y)
			}
			out[ClassPair{A: classes[i], B: classes[j]}] = pearson(xs, ys)
		}
	}

	return out
}

// pearson uses the raw-moment form
//
//	r = (n·Σxy − Σx·Σy) / (√(n·Σx² − (Σx)²) · √(n·Σy² − (Σy)²))
//
// so the zero-denominator case (a constant series) can yield nil rather
// than an error.
func pearson(xs, ys []float64) *float64 {
	n := float64(len(xs))
	if n == 0 {
		return nil
	}

	var sx, sy, sxy, sxx, syy float64
	for i := range xs {
		sx += xs[i]
		sy += ys[i]
		sxy += xs[i] * ys[i]
		sxx += xs[i] * xs[i]
		syy += ys[i] * ys[i]
	}

	denominator := math.Sqrt(n*sxx-sx*sx) * math.Sqrt(n*syy-sy*sy)
	if denominator == 0 || math.IsNaN(denominator) {
		return nil
	}

	r := (n*sxy - sx*sy) / denominator
	return floatPtr(math.Round(r*1000) / 1000)
}

// CorrelationMatrix is the symmetric cross-table of pairwise
// coefficients, rows and columns both in canonical class order.
type CorrelationMatrix struct {
	Classes      []domain.AssetClass
	Coefficients [][]*float64
}

// BuildCorrelationMatrix materializes the NxN table from the pairwise
// map by lookup: unit diagonal, symmetric off-diagonals.
func BuildCorrelationMatrix(pairs map[ClassPair]*float64) CorrelationMatrix {
	classes := domain.MajorAssetClasses()

	cells := make([][]*float64, len(classes))
	for i := range classes {
		cells[i] = make([]*float64, len(classes))
		for j := range classes {
			if i == j {
				cells[i][j] = floatPtr(1.0)
				continue
			}
			a, b := i, j
			if b < a {
				a, b = b, a
			}
			cells[i][j] = pairs[ClassPair{A: classes[a], B: classes[b]}]
		}
	}

	return CorrelationMatrix{
		Classes:      classes,
		Coefficients: cells,
	}
}
