package analytics

import (
	"sort"
	"time"

	"clearbrook/internal/db/models/postgres/public/model"
	"clearbrook/internal/domain"

	"github.com/shopspring/decimal"
)

type JoinParams struct {
	CustomerIDs []string
	Start       time.Time
	End         time.Time
	PriceType   string
}

// JoinedRow is one holding priced on one day, denormalized across the
// customer, account, holding, security master and pricing tables.
type JoinedRow struct {
	CustomerID      string
	FullName        string
	AcctOpenDate    time.Time
	MajorAssetClass domain.AssetClass
	MinorAssetClass string
	Ticker          string
	SecurityName    string
	Quantity        decimal.Decimal
	Date            time.Time
	Value           decimal.Decimal
	PriorValue      *decimal.Decimal
	PositionValue   decimal.Decimal
}

// Join denormalizes the raw table rows into per-holding-per-day rows,
// restricted to the requested customers, date window and price type.
//
// Inner-join semantics throughout: a holding with no security master
// entry, or no price rows of the requested type inside the window, is
// dropped without error.
//
// PriorValue is a lag by one row within the ticker's date-sorted price
// series, not a lag by one calendar day; the earliest row per ticker has
// no prior value. Within one ticker the output preserves strict date
// ordering, so PriorValue(date[i]) == Value(date[i-1]).
func Join(
	params JoinParams,
	customers []model.Customer,
	accounts []model.Account,
	holdings []model.Holding,
	securities []model.SecurityMaster,
	prices []model.PricingDaily,
) []JoinedRow {
	requestedCustomers := map[string]model.Customer{}
	for _, id := range params.CustomerIDs {
		for _, c := range customers {
			if c.CustomerID == id {
				requestedCustomers[id] = c
			}
		}
	}

	accountsByID := map[string]model.Account{}
	for _, a := range accounts {
		if _, ok := requestedCustomers[a.ClientID]; ok {
			accountsByID[a.AccountID] = a
		}
	}

	securitiesByTicker := map[string]model.SecurityMaster{}
	for _, s := range securities {
		securitiesByTicker[s.Ticker] = s
	}

	// the lag is computed once per ticker on the price series; every
	// holding of that ticker shares the same value/prior pairs.
	pricesByTicker := map[string][]model.PricingDaily{}
	for _, p := range prices {
		if p.PriceType != params.PriceType {
			continue
		}
		if p.Date.Before(params.Start) || p.Date.After(params.End) {
			continue
		}
		pricesByTicker[p.Ticker] = append(pricesByTicker[p.Ticker], p)
	}
	for ticker := range pricesByTicker {
		series := pricesByTicker[ticker]
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})
	}

	out := []JoinedRow{}
	for _, holding := range holdings {
		account, ok := accountsByID[holding.AccountID]
		if !ok {
			continue
		}
		security, ok := securitiesByTicker[holding.Ticker]
		if !ok {
			continue
		}
		series, ok := pricesByTicker[holding.Ticker]
		if !ok {
			continue
		}
		customer := requestedCustomers[account.ClientID]

		for i, price := range series {
			var priorValue *decimal.Decimal
			if i > 0 {
				v := series[i-1].Value
				priorValue = &v
			}
			out = append(out, JoinedRow{
				CustomerID:      customer.CustomerID,
				FullName:        customer.FullName,
				AcctOpenDate:    account.AcctOpenDate,
				MajorAssetClass: domain.NormalizeAssetClass(security.MajorAssetClass),
				MinorAssetClass: security.MinorAssetClass,
				Ticker:          holding.Ticker,
				SecurityName:    security.SecurityName,
				Quantity:        holding.Quantity,
				Date:            price.Date,
				Value:           price.Value,
				PriorValue:      priorValue,
				PositionValue:   holding.Quantity.Mul(price.Value),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Ticker != out[j].Ticker {
			return out[i].Ticker < out[j].Ticker
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out
}
