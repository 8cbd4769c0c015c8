package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lux/config"
	"lux/infras/otel/mocks"
	s3Mocks "lux/infras/s3/mocks"
	bookingMocks "lux/internal/domains/booking/mocks"
	"lux/internal/domains/booking/model"
	"lux/internal/domains/booking/model/dto"
	"lux/internal/domains/booking/service"
	roomMocks "lux/internal/domains/room/mocks"
	roomModel "lux/internal/domains/room/model"
	cacheMocks "lux/shared/cache/mocks"
	"lux/shared/constant"
	"lux/shared/failure"
	gModel "lux/shared/model"
	"lux/shared/timezone"
)

// newTestTx hands out a real transaction over a stub driver so the service
// can commit or roll back without a database.
func newTestTx(t *testing.T) *sqlx.Tx {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectRollback()

	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	require.NoError(t, err)

	return tx
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	availableRoom := roomModel.Room{
		ID:          "room-id-123",
		RoomNumber:  "101",
		IsAvailable: true,
	}

	validReq := dto.CreateBookingRequest{
		RoomID:       "room-id-123",
		GuestName:    "Siti Rahma",
		GuestEmail:   "siti@example.com",
		GuestPhone:   "+628123456789",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-03",
		TotalAmount:  1500000,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(newTestTx(t), nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room not available",
			req:  validReq,
			setupMock: func() {
				occupied := availableRoom
				occupied.IsAvailable = false

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupied, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "check out before check in",
			req: dto.CreateBookingRequest{
				RoomID:       "room-id-123",
				GuestName:    "Siti Rahma",
				GuestEmail:   "siti@example.com",
				GuestPhone:   "+628123456789",
				CheckInDate:  "2026-09-03",
				CheckOutDate: "2026-09-01",
				TotalAmount:  1500000,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unparseable check in date",
			req: dto.CreateBookingRequest{
				RoomID:       "room-id-123",
				GuestName:    "Siti Rahma",
				GuestEmail:   "siti@example.com",
				GuestPhone:   "+628123456789",
				CheckInDate:  "not-a-date",
				CheckOutDate: "2026-09-03",
				TotalAmount:  1500000,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert error rolls back",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(newTestTx(t), nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "room flip error rolls back",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(newTestTx(t), nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
				assert.NotEmpty(t, result.ReferenceNumber)
				assert.Equal(t, constant.BookingStatusPending, result.BookingStatus)
				assert.Equal(t, constant.PaymentStatusPending, result.PaymentStatus)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	pendingBooking := model.Booking{
		ID:              "booking-id-123",
		ReferenceNumber: "LUX-TEST-0001",
		RoomID:          "room-id-123",
		BookingStatus:   constant.BookingStatusPending,
		PaymentStatus:   constant.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	confirmedBooking := pendingBooking
	confirmedBooking.BookingStatus = constant.BookingStatusConfirmed

	paidBooking := confirmedBooking
	paidBooking.PaymentStatus = constant.PaymentStatusConfirmed

	tests := []struct {
		name      string
		req       dto.UpdateStatusRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "confirming a pending booking keeps the room held",
			req: dto.UpdateStatusRequest{
				BookingStatus: constant.BookingStatusConfirmed,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "completing a confirmed booking frees the room",
			req: dto.UpdateStatusRequest{
				BookingStatus: constant.BookingStatusCompleted,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(newTestTx(t), nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cancelling a pending booking frees the room",
			req: dto.UpdateStatusRequest{
				BookingStatus: constant.BookingStatusCancelled,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(newTestTx(t), nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "pending cannot jump straight to completed",
			req: dto.UpdateStatusRequest{
				BookingStatus: constant.BookingStatusCompleted,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "terminal booking accepts no transition",
			req: dto.UpdateStatusRequest{
				BookingStatus: constant.BookingStatusConfirmed,
			},
			setupMock: func() {
				cancelled := pendingBooking
				cancelled.BookingStatus = constant.BookingStatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "payment confirmation cannot be reverted",
			req: dto.UpdateStatusRequest{
				BookingStatus: constant.BookingStatusConfirmed,
				PaymentStatus: constant.PaymentStatusPending,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paidBooking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "booking not found",
			req: dto.UpdateStatusRequest{
				BookingStatus: constant.BookingStatusConfirmed,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, tt.req, "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	openBooking := model.Booking{
		ID:              "booking-id-123",
		ReferenceNumber: "LUX-TEST-0001",
		RoomID:          "room-id-123",
		BookingStatus:   constant.BookingStatusConfirmed,
		PaymentStatus:   constant.PaymentStatusPending,
	}

	closedBooking := openBooking
	closedBooking.BookingStatus = constant.BookingStatusCompleted

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "deleting an open booking frees the room",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openBooking, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(newTestTx(t), nil)

				mockRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "deleting a closed booking leaves the room alone",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(closedBooking, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(newTestTx(t), nil)

				mockRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Delete(ctx, "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_GetByReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3)

	booking := model.Booking{
		ID:              "booking-id-123",
		ReferenceNumber: "LUX-TEST-0001",
		RoomID:          "room-id-123",
		BookingStatus:   constant.BookingStatusPending,
		PaymentStatus:   constant.PaymentStatusPending,
	}

	tests := []struct {
		name      string
		ref       string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			ref:  "LUX-TEST-0001",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantID:  "",
		},
		{
			name: "lowercase reference still resolves",
			ref:  "lux-test-0001",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "booking-id-123",
		},
		{
			name: "booking not found",
			ref:  "LUX-NOPE-0000",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetByReference(ctx, tt.ref)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	openBooking := model.Booking{
		ID:              "booking-id-123",
		ReferenceNumber: "LUX-TEST-0001",
		BookingStatus:   constant.BookingStatusPending,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(openBooking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "closed booking rejects edits",
			setupMock: func() {
				closed := openBooking
				closed.BookingStatus = constant.BookingStatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(closed, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, dto.UpdateBookingRequest{GuestName: "Updated Name"}, "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
