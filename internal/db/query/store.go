package db

import (
	"database/sql"
	"fmt"
	"time"

	"clearbrook/internal/db/models/postgres/public/model"
	. "clearbrook/internal/db/models/postgres/public/table"

	. "github.com/go-jet/jet/v2/postgres"
)

// PriceTypeAdjClose is the pricing_daily row variant this analysis
// selects. Other price types (raw close, open, etc) coexist per
// ticker/date and are ignored.
const PriceTypeAdjClose = "Adj_Close"

func GetCustomers(tx *sql.Tx, customerIDs []string) ([]model.Customer, error) {
	query := Customer.SELECT(Customer.AllColumns).
		WHERE(Customer.CustomerID.IN(stringExpression(customerIDs)...))

	results := []model.Customer{}
	err := query.Query(tx, &results)
	if err != nil {
		fmt.Println(query.DebugSql())
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	return results, nil
}

func GetAccountsForCustomers(tx *sql.Tx, customerIDs []string) ([]model.Account, error) {
	query := Account.SELECT(Account.AllColumns).
		WHERE(Account.ClientID.IN(stringExpression(customerIDs)...))

	results := []model.Account{}
	err := query.Query(tx, &results)
	if err != nil {
		fmt.Println(query.DebugSql())
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	return results, nil
}

func GetHoldingsForAccounts(tx *sql.Tx, accountIDs []string) ([]model.Holding, error) {
	query := Holding.SELECT(Holding.AllColumns).
		WHERE(Holding.AccountID.IN(stringExpression(accountIDs)...))

	results := []model.Holding{}
	err := query.Query(tx, &results)
	if err != nil {
		fmt.Println(query.DebugSql())
		return nil, fmt.Errorf("failed to fetch holdings: %w", err)
	}

	return results, nil
}

func GetSecurities(tx *sql.Tx, tickers []string) ([]model.SecurityMaster, error) {
	query := SecurityMaster.SELECT(SecurityMaster.AllColumns).
		WHERE(SecurityMaster.Ticker.IN(stringExpression(tickers)...))

	results := []model.SecurityMaster{}
	err := query.Query(tx, &results)
	if err != nil {
		fmt.Println(query.DebugSql())
		return nil, fmt.Errorf("failed to fetch securities: %w", err)
	}

	return results, nil
}

// GetDailyPrices returns price rows of one price type for the given tickers
// inside [start, end], ordered by date ascending. The ordering matters
// downstream: prior-value lags assume date-sorted input per ticker.
func GetDailyPrices(tx *sql.Tx, tickers []string, priceType string, start, end time.Time) ([]model.PricingDaily, error) {
	query := PricingDaily.SELECT(PricingDaily.AllColumns).
		WHERE(AND(
			PricingDaily.Ticker.IN(stringExpression(tickers)...),
			PricingDaily.PriceType.EQ(String(priceType)),
			PricingDaily.Date.GT_EQ(DateT(start)),
			PricingDaily.Date.LT_EQ(DateT(end)),
		)).
		ORDER_BY(PricingDaily.Ticker.ASC(), PricingDaily.Date.ASC())

	results := []model.PricingDaily{}
	err := query.Query(tx, &results)
	if err != nil {
		fmt.Println(query.DebugSql())
		return nil, fmt.Errorf("failed to fetch daily prices: %w", err)
	}

	return results, nil
}

func stringExpression(values []string) []Expression {
	out := []Expression{}
	for _, v := range values {
		out = append(out, String(v))
	}
	return out
}
