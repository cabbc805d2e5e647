package analytics

import (
	"sort"
	"time"

	"clearbrook/internal/domain"
)

type DailyReturnRow struct {
	Ticker          string
	MajorAssetClass domain.AssetClass
	Date            time.Time
	Return1d        float64
}

// DailyReturns computes one simple daily return per (ticker, date) from
// rows dated strictly after the window start. Normally each group holds
// a single observation; averaging covers a ticker held across several
// accounts. Groups with no defined prior value are dropped.
// Output is ordered by date ascending.
func DailyReturns(rows []JoinedRow, windowStart time.Time) []DailyReturnRow {
	type group struct {
		ticker string
		class  domain.AssetClass
		date   time.Time
		sum    float64
		count  int
	}

	groups := map[string]*group{}
	for _, r := range rows {
		if !r.Date.After(windowStart) {
			continue
		}
		if r.PriorValue == nil {
			continue
		}
		key := r.Ticker + "|" + r.Date.Format("2006-01-02")
		g, ok := groups[key]
		if !ok {
			g = &group{ticker: r.Ticker, class: r.MajorAssetClass, date: r.Date}
			groups[key] = g
		}
		prior := r.PriorValue.InexactFloat64()
		current := r.Value.InexactFloat64()
		g.sum += (current - prior) / prior
		g.count++
	}

	out := []DailyReturnRow{}
	for _, g := range groups {
		out = append(out, DailyReturnRow{
			Ticker:          g.ticker,
			MajorAssetClass: g.class,
			Date:            g.date,
			Return1d:        g.sum / float64(g.count),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Ticker < out[j].Ticker
	})

	return out
}

// ClassDailyReturnRow holds one date's cross-sectional average return
// per canonical asset class. A class with no securities trading that
// date carries nil, never zero.
type ClassDailyReturnRow struct {
	Date    time.Time
	Returns map[domain.AssetClass]*float64
}

// ClassDailyReturns averages security daily returns into one series per
// major asset class, one row per distinct date, ascending. Securities
// whose class is outside the canonical four are left out.
func ClassDailyReturns(rows []DailyReturnRow) []ClassDailyReturnRow {
	type accumulator struct {
		sum   float64
		count int
	}

	byDate := map[string]map[domain.AssetClass]*accumulator{}
	dates := map[string]time.Time{}
	for _, r := range rows {
		key := r.Date.Format("2006-01-02")
		if _, ok := byDate[key]; !ok {
			byDate[key] = map[domain.AssetClass]*accumulator{}
			dates[key] = r.Date
		}
		acc, ok := byDate[key][r.MajorAssetClass]
		if !ok {
			acc = &accumulator{}
			byDate[key][r.MajorAssetClass] = acc
		}
		acc.sum += r.Return1d
		acc.count++
	}

	dateKeys := []string{}
	for key := range byDate {
		dateKeys = append(dateKeys, key)
	}
	sort.Strings(dateKeys)

	out := []ClassDailyReturnRow{}
	for _, key := range dateKeys {
		row := ClassDailyReturnRow{
			Date:    dates[key],
			Returns: map[domain.AssetClass]*float64{},
		}
		for _, class := range domain.MajorAssetClasses() {
			if acc, ok := byDate[key][class]; ok {
				row.Returns[class] = floatPtr(acc.sum / float64(acc.count))
			} else {
				row.Returns[class] = nil
			}
		}
		out = append(out, row)
	}

	return out
}
