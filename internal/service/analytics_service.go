package service

import (
	"context"
	"database/sql"
	"time"

	"clearbrook/internal/analytics"
	"clearbrook/internal/db/models/postgres/public/model"
	db "clearbrook/internal/db/query"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store is the read-only view of the brokerage tables the pipeline
// consumes. The production implementation delegates to the go-jet query
// layer; tests substitute a mock.
type Store interface {
	GetCustomers(tx *sql.Tx, customerIDs []string) ([]model.Customer, error)
	GetAccountsForCustomers(tx *sql.Tx, customerIDs []string) ([]model.Account, error)
	GetHoldingsForAccounts(tx *sql.Tx, accountIDs []string) ([]model.Holding, error)
	GetSecurities(tx *sql.Tx, tickers []string) ([]model.SecurityMaster, error)
	GetDailyPrices(tx *sql.Tx, tickers []string, priceType string, start, end time.Time) ([]model.PricingDaily, error)
}

type ComputeAnalyticsInput struct {
	CustomerID string
	Start      time.Time
	End        time.Time
	PriceType  string
}

// PortfolioAnalytics bundles the three result sets of one run.
type PortfolioAnalytics struct {
	SecurityMetrics  []analytics.SecurityMetricsRow
	PortfolioMetrics analytics.PortfolioMetricsRow
	Correlations     analytics.CorrelationMatrix
}

type AnalyticsService interface {
	ComputePortfolioAnalytics(ctx context.Context, in ComputeAnalyticsInput) (*PortfolioAnalytics, error)
}

type analyticsServiceHandler struct {
	Store  Store
	Logger zerolog.Logger
}

func NewAnalyticsService(store Store, logger zerolog.Logger) AnalyticsService {
	return analyticsServiceHandler{
		Store:  store,
		Logger: logger,
	}
}

// ComputePortfolioAnalytics performs the bulk reads and runs the whole
// pipeline for one customer. Everything downstream of the reads is pure
// and recomputed in full; nothing persists between runs.
//
// An unknown customer, or a customer with no accounts or holdings,
// yields empty result sets rather than an error.
func (h analyticsServiceHandler) ComputePortfolioAnalytics(ctx context.Context, in ComputeAnalyticsInput) (*PortfolioAnalytics, error) {
	tx, err := db.GetTx(ctx)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	start := time.Now()
	logger := h.Logger.With().
		Str("runId", runID.String()).
		Str("customerId", in.CustomerID).
		Logger()

	customerIDs := []string{in.CustomerID}

	customers, err := h.Store.GetCustomers(tx, customerIDs)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		logger.Warn().Msg("no matching customer, returning empty analytics")
		return h.emptyResult(in.CustomerID), nil
	}

	accounts, err := h.Store.GetAccountsForCustomers(tx, customerIDs)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		logger.Warn().Msg("customer has no accounts, returning empty analytics")
		return h.emptyResult(in.CustomerID), nil
	}

	accountIDs := []string{}
	for _, a := range accounts {
		accountIDs = append(accountIDs, a.AccountID)
	}

	holdings, err := h.Store.GetHoldingsForAccounts(tx, accountIDs)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		logger.Warn().Msg("customer has no holdings, returning empty analytics")
		return h.emptyResult(in.CustomerID), nil
	}

	tickerSet := map[string]struct{}{}
	tickers := []string{}
	for _, holding := range holdings {
		if _, ok := tickerSet[holding.Ticker]; !ok {
			tickerSet[holding.Ticker] = struct{}{}
			tickers = append(tickers, holding.Ticker)
		}
	}

	securities, err := h.Store.GetSecurities(tx, tickers)
	if err != nil {
		return nil, err
	}
	prices, err := h.Store.GetDailyPrices(tx, tickers, in.PriceType, in.Start, in.End)
	if err != nil {
		return nil, err
	}

	joined := analytics.Join(analytics.JoinParams{
		CustomerIDs: customerIDs,
		Start:       in.Start,
		End:         in.End,
		PriceType:   in.PriceType,
	}, customers, accounts, holdings, securities, prices)

	securityMetrics := analytics.SecurityMetrics(joined)
	portfolioMetrics := analytics.AggregatePortfolio(in.CustomerID, securityMetrics)
	dailyReturns := analytics.DailyReturns(joined, in.Start)
	classReturns := analytics.ClassDailyReturns(dailyReturns)
	correlations := analytics.BuildCorrelationMatrix(analytics.PairwiseCorrelations(classReturns))

	logger.Info().
		Int("holdings", len(holdings)).
		Int("joinedRows", len(joined)).
		Int("securities", len(securityMetrics)).
		Int("tradingDays", len(classReturns)).
		Dur("elapsed", time.Since(start)).
		Msg("computed portfolio analytics")

	return &PortfolioAnalytics{
		SecurityMetrics:  securityMetrics,
		PortfolioMetrics: portfolioMetrics,
		Correlations:     correlations,
	}, nil
}

func (h analyticsServiceHandler) emptyResult(customerID string) *PortfolioAnalytics {
	return &PortfolioAnalytics{
		SecurityMetrics:  []analytics.SecurityMetricsRow{},
		PortfolioMetrics: analytics.PortfolioMetricsRow{CustomerID: customerID},
		Correlations:     analytics.BuildCorrelationMatrix(analytics.PairwiseCorrelations(nil)),
	}
}

// dbStore adapts the package-level query functions to the Store
// interface.
type dbStore struct{}

func NewStore() Store {
	return dbStore{}
}

func (dbStore) GetCustomers(tx *sql.Tx, customerIDs []string) ([]model.Customer, error) {
	return db.GetCustomers(tx, customerIDs)
}

func (dbStore) GetAccountsForCustomers(tx *sql.Tx, customerIDs []string) ([]model.Account, error) {
	return db.GetAccountsForCustomers(tx, customerIDs)
}

func (dbStore) GetHoldingsForAccounts(tx *sql.Tx, accountIDs []string) ([]model.Holding, error) {
	return db.GetHoldingsForAccounts(tx, accountIDs)
}

func (dbStore) GetSecurities(tx *sql.Tx, tickers []string) ([]model.SecurityMaster, error) {
	return db.GetSecurities(tx, tickers)
}

func (dbStore) GetDailyPrices(tx *sql.Tx, tickers []string, priceType string, start, end time.Time) ([]model.PricingDaily, error) {
	return db.GetDailyPrices(tx, tickers, priceType, start, end)
}
