package main

import (
	"context"
	"repnowait/config"
	"repnowait/di"
	"repnowait/helper"
	"repnowait/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const startupTimeout = 30 * time.Second

// @title RepNoWait API
// @version 1.0
// @description Gym equipment booking with live zone occupancy.
// @BasePath /api
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeService()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)

	if _, err := app.Ledger.VerifyZones(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to verify zone rows")
	}

	if cfg.App.ReconcileOnStart {
		if _, err := app.Ledger.Reconcile(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to reconcile zone counters")
		}
	}

	cancel()

	app.HTTP.OnShutdown(app.Close)
	app.HTTP.Serve()
}
