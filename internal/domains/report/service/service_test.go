package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lux/config"
	"lux/infras/otel/mocks"
	bookingMocks "lux/internal/domains/booking/mocks"
	bookingModel "lux/internal/domains/booking/model"
	"lux/internal/domains/report/service"
	roomMocks "lux/internal/domains/room/mocks"
	roomModel "lux/internal/domains/room/model"
	cacheMocks "lux/shared/cache/mocks"
	"lux/shared/constant"
)

func TestReportService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBookingRepo, mockRoomRepo, cfg, mockCache, mockOtel)

	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	bookings := []bookingModel.Booking{
		{
			ID:            "booking-1",
			BookingStatus: constant.BookingStatusConfirmed,
			PaymentStatus: constant.PaymentStatusConfirmed,
			CheckInDate:   checkIn,
			CheckOutDate:  checkIn.AddDate(0, 0, 2),
			TotalAmount:   1500000,
		},
		{
			ID:            "booking-2",
			BookingStatus: constant.BookingStatusPending,
			PaymentStatus: constant.PaymentStatusPending,
			CheckInDate:   checkIn,
			CheckOutDate:  checkIn.AddDate(0, 0, 3),
			TotalAmount:   2000000,
		},
		{
			ID:            "booking-3",
			BookingStatus: constant.BookingStatusCancelled,
			PaymentStatus: constant.PaymentStatusPending,
			CheckInDate:   checkIn,
			CheckOutDate:  checkIn.AddDate(0, 0, 5),
			TotalAmount:   4000000,
		},
	}

	rooms := []roomModel.Room{
		{ID: "room-1", Type: "deluxe", IsAvailable: true},
		{ID: "room-2", Type: "deluxe", IsAvailable: false},
		{ID: "room-3", Type: "suite", IsAvailable: true},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "aggregates bookings and rooms",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)

				mockRoomRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rooms, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "room repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)

				mockRoomRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			res, err := svc.Summary(ctx)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.name != "aggregates bookings and rooms" {
				return
			}

			assert.Equal(t, 3, res.TotalBookings)
			assert.Equal(t, 3, res.TotalRooms)
			assert.Equal(t, 2, res.AvailableRooms)
			// Cancelled bookings contribute no nights: 2 + 3.
			assert.Equal(t, 5, res.BookedNights)
			// Only the confirmed payment counts toward revenue.
			assert.Equal(t, int64(1500000), res.EstimatedRevenue)
			assert.Equal(t, 2, res.RoomTypes["deluxe"])
			assert.Equal(t, 1, res.RoomTypes["suite"])
			assert.Equal(t, 1, res.BookingStatuses[constant.BookingStatusCancelled])
			assert.Greater(t, res.OccupancyRate, 0.0)
		})
	}
}
