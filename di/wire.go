//go:build wireinject
// +build wireinject

package di

import (
	"wander/config"
	"wander/infras/jwt"
	"wander/infras/kafka"
	"wander/infras/otel"
	"wander/infras/postgres"
	"wander/infras/redis"
	"wander/infras/s3"
	"wander/permissions"
	"wander/shared/cache"
	"wander/transport/http"
	"wander/transport/http/middleware"
	"wander/transport/http/router"

	bookingRepository "wander/internal/domains/booking/repository"
	bookingService "wander/internal/domains/booking/service"
	experienceRepository "wander/internal/domains/experience/repository"
	experienceService "wander/internal/domains/experience/service"
	bookingHandler "wander/internal/handlers/booking"
	experienceHandler "wander/internal/handlers/experience"
	healthHandler "wander/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var experienceDomain = wire.NewSet(
	experienceRepository.New,
	experienceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	experienceDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	experienceHandler.New,
	bookingHandler.New,
	healthHandler.New,
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
