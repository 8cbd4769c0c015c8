//go:build wireinject
// +build wireinject

package di

import (
	"lux/config"
	"lux/infras/jwt"
	"lux/infras/otel"
	"lux/infras/postgres"
	"lux/infras/redis"
	"lux/infras/s3"
	"lux/permissions"
	"lux/shared/cache"
	"lux/transport/http"
	"lux/transport/http/middleware"
	"lux/transport/http/router"

	"github.com/google/wire"

	announcementRepository "lux/internal/domains/announcement/repository"
	announcementService "lux/internal/domains/announcement/service"
	authService "lux/internal/domains/auth/service"
	bookingRepository "lux/internal/domains/booking/repository"
	bookingService "lux/internal/domains/booking/service"
	checkinRepository "lux/internal/domains/checkin/repository"
	checkinService "lux/internal/domains/checkin/service"
	guestRepository "lux/internal/domains/guest/repository"
	guestService "lux/internal/domains/guest/service"
	housekeepingRepository "lux/internal/domains/housekeeping/repository"
	housekeepingService "lux/internal/domains/housekeeping/service"
	paymentRepository "lux/internal/domains/payment/repository"
	paymentService "lux/internal/domains/payment/service"
	reportService "lux/internal/domains/report/service"
	roomRepository "lux/internal/domains/room/repository"
	roomService "lux/internal/domains/room/service"
	staffRepository "lux/internal/domains/staff/repository"
	staffService "lux/internal/domains/staff/service"
	userRepository "lux/internal/domains/user/repository"
	userService "lux/internal/domains/user/service"

	announcementHandler "lux/internal/handlers/announcement"
	authHandler "lux/internal/handlers/auth"
	bookingHandler "lux/internal/handlers/booking"
	checkinHandler "lux/internal/handlers/checkin"
	guestHandler "lux/internal/handlers/guest"
	housekeepingHandler "lux/internal/handlers/housekeeping"
	moduleHandler "lux/internal/handlers/module"
	paymentHandler "lux/internal/handlers/payment"
	reportHandler "lux/internal/handlers/report"
	roomHandler "lux/internal/handlers/room"
	staffHandler "lux/internal/handlers/staff"
	userHandler "lux/internal/handlers/user"
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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var checkinDomain = wire.NewSet(
	checkinRepository.New,
	checkinService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffRepository.NewDocument,
	staffService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestRepository.NewReceipt,
	guestService.New,
)

var announcementDomain = wire.NewSet(
	announcementRepository.New,
	announcementService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	checkinDomain,
	housekeepingDomain,
	staffDomain,
	guestDomain,
	announcementDomain,
	paymentDomain,
	reportDomain,
	authDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	checkinHandler.New,
	housekeepingHandler.New,
	staffHandler.New,
	guestHandler.New,
	announcementHandler.New,
	paymentHandler.New,
	reportHandler.New,
	moduleHandler.New,
	userHandler.New,
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
