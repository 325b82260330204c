package di

import (
	"context"
	"errors"
	"fmt"
	"repnowait/infras/kafka"
	"repnowait/infras/otel"
	"repnowait/infras/postgres"
	bookingEvent "repnowait/internal/domains/booking/event"
	occupancyService "repnowait/internal/domains/occupancy/service"
	"repnowait/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

// Resources are the connections a process opens at start-up and must release on exit.
type Resources struct {
	Otel  otel.Otel
	DB    *postgres.Connection
	Redis *goRedis.Client
	Kafka kafka.Client
}

// Close flushes pending events and spans before dropping the connections.
func (r Resources) Close(ctx context.Context) error {
	var errs []error

	if err := r.Kafka.Close(); err != nil {
		errs = append(errs, fmt.Errorf("kafka: %w", err))
	}

	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}

	if err := r.DB.Close(); err != nil {
		errs = append(errs, err)
	}

	if err := r.Otel.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("otel: %w", err))
	}

	return errors.Join(errs...)
}

type App struct {
	HTTP      *http.HTTP
	Ledger    occupancyService.Ledger
	Events    bookingEvent.Publisher
	Resources Resources
}

// Close waits for pending booking events before the Kafka writers are closed.
func (a *App) Close(ctx context.Context) error {
	var errs []error

	if err := a.Events.Wait(ctx); err != nil {
		errs = append(errs, err)
	}

	if err := a.Resources.Close(ctx); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// LedgerJob is everything the offline ledger commands need.
type LedgerJob struct {
	Ledger    occupancyService.Ledger
	Resources Resources
}
