// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/internal/domains/auth/service"
	repository7 "hotelier/internal/domains/booking/repository"
	service6 "hotelier/internal/domains/booking/service"
	repository2 "hotelier/internal/domains/branch/repository"
	service3 "hotelier/internal/domains/branch/service"
	repository6 "hotelier/internal/domains/cashflow/repository"
	service9 "hotelier/internal/domains/cashflow/service"
	repository5 "hotelier/internal/domains/customer/repository"
	service7 "hotelier/internal/domains/customer/service"
	repository9 "hotelier/internal/domains/device/repository"
	service10 "hotelier/internal/domains/device/service"
	repository8 "hotelier/internal/domains/product/repository"
	service8 "hotelier/internal/domains/product/service"
	repository10 "hotelier/internal/domains/report/repository"
	service11 "hotelier/internal/domains/report/service"
	repository4 "hotelier/internal/domains/room/repository"
	service5 "hotelier/internal/domains/room/service"
	repository3 "hotelier/internal/domains/roomclass/repository"
	service4 "hotelier/internal/domains/roomclass/service"
	"hotelier/internal/domains/user/repository"
	service2 "hotelier/internal/domains/user/service"
	"hotelier/internal/handlers/auth"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/branch"
	"hotelier/internal/handlers/cashflow"
	"hotelier/internal/handlers/customer"
	"hotelier/internal/handlers/device"
	"hotelier/internal/handlers/product"
	"hotelier/internal/handlers/report"
	"hotelier/internal/handlers/room"
	"hotelier/internal/handlers/roomclass"
	"hotelier/internal/handlers/user"
	"hotelier/permissions"
	"hotelier/shared/cache"
	"hotelier/shared/clock"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	repositoryBranch := repository2.New(connection, otelOtel)
	area := repository2.NewArea(connection, otelOtel)
	serviceBranch := service3.New(repositoryBranch, area, configConfig, otelOtel)
	branchHandler := branch.New(serviceBranch, otelOtel)
	roomClass := repository3.New(connection, otelOtel)
	serviceRoomClass := service4.New(roomClass, otelOtel)
	roomclassHandler := roomclass.New(serviceRoomClass, otelOtel)
	repositoryRoom := repository4.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceRoom := service5.New(repositoryRoom, configConfig, redisCache, otelOtel)
	repositoryCustomer := repository5.New(connection, otelOtel)
	cashFlow := repository6.New(connection, otelOtel)
	repositoryBooking := repository7.New(connection, otelOtel, repositoryCustomer, cashFlow)
	clockClock := clock.NewSystem()
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service6.New(repositoryBooking, configConfig, clockClock, kafkaClient, otelOtel)
	roomHandler := room.New(serviceRoom, serviceBooking, otelOtel)
	serviceCustomer := service7.New(repositoryCustomer, otelOtel)
	customerHandler := customer.New(serviceCustomer, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	repositoryProduct := repository8.New(connection, otelOtel)
	serviceProduct := service8.New(repositoryProduct, configConfig, redisCache, otelOtel)
	productHandler := product.New(serviceProduct, otelOtel)
	serviceCashFlow := service9.New(cashFlow, otelOtel)
	cashflowHandler := cashflow.New(serviceCashFlow, otelOtel)
	repositoryDevice := repository9.New(connection, otelOtel, cashFlow)
	serviceDevice := service10.New(repositoryDevice, configConfig, kafkaClient, otelOtel)
	deviceHandler := device.New(serviceDevice, otelOtel)
	repositoryReport := repository10.New(connection, otelOtel)
	serviceReport := service11.New(repositoryReport, clockClock, otelOtel)
	reportHandler := report.New(serviceReport, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:      handler,
		User:      userHandler,
		Branch:    branchHandler,
		RoomClass: roomclassHandler,
		Room:      roomHandler,
		Customer:  customerHandler,
		Booking:   bookingHandler,
		Product:   productHandler,
		CashFlow:  cashflowHandler,
		Device:    deviceHandler,
		Report:    reportHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, authRole)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, clock.NewSystem)

var authDomain = wire.NewSet(repository.New, service2.New, service.New)

var branchDomain = wire.NewSet(repository2.New, repository2.NewArea, service3.New)

var roomDomain = wire.NewSet(repository3.New, service4.New, repository4.New, service5.New)

var customerDomain = wire.NewSet(repository5.New, service7.New)

var bookingDomain = wire.NewSet(repository7.New, service6.New)

var productDomain = wire.NewSet(repository8.New, service8.New)

var cashflowDomain = wire.NewSet(repository6.New, service9.New)

var deviceDomain = wire.NewSet(repository9.New, service10.New)

var reportDomain = wire.NewSet(repository10.New, service11.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, branch.New, roomclass.New, room.New, customer.New, booking.New, product.New, cashflow.New, device.New, report.New, router.New)
