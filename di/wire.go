//go:build wireinject
// +build wireinject

package di

import (
	"campsite/config"
	"campsite/infras/otel"
	"campsite/infras/postgres"
	"campsite/infras/redis"
	"campsite/shared/cache"
	"campsite/transport/http"
	"campsite/transport/http/middleware"
	"campsite/transport/http/router"

	accommodationHandler "campsite/internal/handlers/accommodation"
	availabilityHandler "campsite/internal/handlers/availability"
	bookingHandler "campsite/internal/handlers/booking"
	guestHandler "campsite/internal/handlers/guest"
	reviewHandler "campsite/internal/handlers/review"
	systemHandler "campsite/internal/handlers/system"

	accommodationRepository "campsite/internal/domains/accommodation/repository"
	accommodationService "campsite/internal/domains/accommodation/service"
	availabilityRepository "campsite/internal/domains/availability/repository"
	availabilityService "campsite/internal/domains/availability/service"
	bookingRepository "campsite/internal/domains/booking/repository"
	bookingService "campsite/internal/domains/booking/service"
	guestRepository "campsite/internal/domains/guest/repository"
	guestService "campsite/internal/domains/guest/service"
	reviewRepository "campsite/internal/domains/review/repository"
	reviewService "campsite/internal/domains/review/service"
	systemService "campsite/internal/domains/system/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var accommodationDomain = wire.NewSet(
	accommodationRepository.New,
	accommodationService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var systemDomain = wire.NewSet(
	systemService.New,
)

var domains = wire.NewSet(
	accommodationDomain,
	guestDomain,
	bookingDomain,
	reviewDomain,
	availabilityDomain,
	systemDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	systemHandler.New,
	accommodationHandler.New,
	guestHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	availabilityHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
