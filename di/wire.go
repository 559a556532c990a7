//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/permissions"
	"hotelier/shared/cache"
	"hotelier/shared/clock"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	authService "hotelier/internal/domains/auth/service"
	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	branchRepository "hotelier/internal/domains/branch/repository"
	branchService "hotelier/internal/domains/branch/service"
	cashflowRepository "hotelier/internal/domains/cashflow/repository"
	cashflowService "hotelier/internal/domains/cashflow/service"
	customerRepository "hotelier/internal/domains/customer/repository"
	customerService "hotelier/internal/domains/customer/service"
	deviceRepository "hotelier/internal/domains/device/repository"
	deviceService "hotelier/internal/domains/device/service"
	productRepository "hotelier/internal/domains/product/repository"
	productService "hotelier/internal/domains/product/service"
	reportRepository "hotelier/internal/domains/report/repository"
	reportService "hotelier/internal/domains/report/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	roomclassRepository "hotelier/internal/domains/roomclass/repository"
	roomclassService "hotelier/internal/domains/roomclass/service"
	userRepository "hotelier/internal/domains/user/repository"
	userService "hotelier/internal/domains/user/service"

	authHandler "hotelier/internal/handlers/auth"
	bookingHandler "hotelier/internal/handlers/booking"
	branchHandler "hotelier/internal/handlers/branch"
	cashflowHandler "hotelier/internal/handlers/cashflow"
	customerHandler "hotelier/internal/handlers/customer"
	deviceHandler "hotelier/internal/handlers/device"
	productHandler "hotelier/internal/handlers/product"
	reportHandler "hotelier/internal/handlers/report"
	roomHandler "hotelier/internal/handlers/room"
	roomclassHandler "hotelier/internal/handlers/roomclass"
	userHandler "hotelier/internal/handlers/user"

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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.NewSystem,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var branchDomain = wire.NewSet(
	branchRepository.New,
	branchRepository.NewArea,
	branchService.New,
)

var roomDomain = wire.NewSet(
	roomclassRepository.New,
	roomclassService.New,
	roomRepository.New,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var productDomain = wire.NewSet(
	productRepository.New,
	productService.New,
)

var cashflowDomain = wire.NewSet(
	cashflowRepository.New,
	cashflowService.New,
)

var deviceDomain = wire.NewSet(
	deviceRepository.New,
	deviceService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	authDomain,
	branchDomain,
	roomDomain,
	customerDomain,
	bookingDomain,
	productDomain,
	cashflowDomain,
	deviceDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	branchHandler.New,
	roomclassHandler.New,
	roomHandler.New,
	customerHandler.New,
	bookingHandler.New,
	productHandler.New,
	cashflowHandler.New,
	deviceHandler.New,
	reportHandler.New,
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
