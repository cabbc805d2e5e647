package main

import (
	"context"
	"database/sql"
	"os"

	"clearbrook/internal/config"
	"clearbrook/internal/service"
	"clearbrook/internal/util"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	dbConn, err := sql.Open("postgres", cfg.DBConnStr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database connection")
	}
	defer dbConn.Close()

	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to begin transaction")
	}
	// read-only computation, nothing to commit
	defer tx.Rollback()

	svc := service.NewAnalyticsService(service.NewStore(), log.Logger)

	ctx := context.WithValue(context.Background(), "tx", tx)
	out, err := svc.ComputePortfolioAnalytics(ctx, service.ComputeAnalyticsInput{
		CustomerID: cfg.CustomerID,
		Start:      cfg.Start,
		End:        cfg.End,
		PriceType:  cfg.PriceType,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compute portfolio analytics")
	}

	util.Pprint(out)
}
