package service

import (
	"context"
	"fmt"

	"lux/config"
	"lux/infras/otel"
	bookingRepository "lux/internal/domains/booking/repository"
	"lux/internal/domains/report/model/dto"
	roomRepository "lux/internal/domains/room/repository"
	"lux/shared/cache"
	"lux/shared/constant"
	gDto "lux/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheSummary = "report:summary"
)

type Report interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepository.Booking
	roomRepo    roomRepository.Room
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(bookingRepo bookingRepository.Booking, roomRepo roomRepository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Summary aggregates the dashboard figures. Occupancy is booked nights over
// the total room-nights of a fixed window.
func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSummary, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSummary).Msg("cache hit for report summary")

		return res, nil
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for summary")

		return res, fmt.Errorf("failed to get bookings for summary: %w", err)
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for summary")

		return res, fmt.Errorf("failed to get rooms for summary: %w", err)
	}

	res.TotalBookings = len(bookings)
	res.TotalRooms = len(rooms)
	res.RoomTypes = map[string]int{}
	res.BookingStatuses = map[string]int{}

	for _, room := range rooms {
		res.RoomTypes[room.Type]++

		if room.IsAvailable {
			res.AvailableRooms++
		}
	}

	for _, booking := range bookings {
		res.BookingStatuses[booking.BookingStatus]++

		if booking.BookingStatus == constant.BookingStatusCancelled {
			continue
		}

		nights := int(booking.CheckOutDate.Sub(booking.CheckInDate).Hours() / 24)
		if nights > 0 {
			res.BookedNights += nights
		}

		if booking.PaymentStatus == constant.PaymentStatusConfirmed {
			res.EstimatedRevenue += booking.TotalAmount
		}
	}

	if totalNights := res.TotalRooms * constant.ReportWindowDays; totalNights > 0 {
		res.OccupancyRate = float64(res.BookedNights) / float64(totalNights) * 100
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSummary, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save report summary to cache")
		}
	}()

	return res, nil
}
