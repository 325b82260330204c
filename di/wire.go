//go:build wireinject
// +build wireinject

package di

import (
	"repnowait/config"
	"repnowait/infras/kafka"
	"repnowait/infras/otel"
	"repnowait/infras/postgres"
	"repnowait/infras/redis"
	"repnowait/shared/cache"
	"repnowait/shared/transaction"
	"repnowait/transport/http"
	"repnowait/transport/http/middleware"
	"repnowait/transport/http/router"
	"repnowait/zonemap"

	bookingEvent "repnowait/internal/domains/booking/event"
	bookingRepository "repnowait/internal/domains/booking/repository"
	bookingService "repnowait/internal/domains/booking/service"
	bookingHandler "repnowait/internal/handlers/booking"

	catalogRepository "repnowait/internal/domains/catalog/repository"
	catalogService "repnowait/internal/domains/catalog/service"
	catalogHandler "repnowait/internal/handlers/catalog"

	occupancyRepository "repnowait/internal/domains/occupancy/repository"
	occupancyService "repnowait/internal/domains/occupancy/service"
	heatmapHandler "repnowait/internal/handlers/heatmap"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	zonemap.New,
	wire.Bind(new(occupancyService.ZoneResolver), new(*zonemap.Table)),
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	wire.Struct(new(Resources), "*"),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	transaction.New,
)

var occupancyDomain = wire.NewSet(
	occupancyRepository.New,
	occupancyService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.New,
	bookingService.New,
)

var domains = wire.NewSet(
	occupancyDomain,
	catalogDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	bookingHandler.New,
	heatmapHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeLedger() *LedgerJob {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		occupancyDomain,
		wire.Struct(new(LedgerJob), "*"),
	)

	return &LedgerJob{}
}
