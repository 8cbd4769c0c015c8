package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lux/config"
	"lux/infras/otel/mocks"
	checkinMocks "lux/internal/domains/checkin/mocks"
	"lux/internal/domains/checkin/model"
	"lux/internal/domains/checkin/model/dto"
	"lux/internal/domains/checkin/service"
	cacheMocks "lux/shared/cache/mocks"
	"lux/shared/constant"
	gDto "lux/shared/dto"
)

func TestCheckInService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := checkinMocks.NewMockCheckIn(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.UpdateCheckInStatusRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "checking in stamps checked_in_at",
			req:  dto.UpdateCheckInStatusRequest{Status: constant.CheckInStatusCheckedIn},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, model.FieldCheckedInAt)
						assert.NotContains(t, fields, model.FieldCheckedOutAt)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "checking out stamps checked_out_at",
			req:  dto.UpdateCheckInStatusRequest{Status: constant.CheckInStatusCheckedOut},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, model.FieldCheckedOutAt)
						assert.NotContains(t, fields, model.FieldCheckedInAt)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "no show stamps nothing",
			req:  dto.UpdateCheckInStatusRequest{Status: constant.CheckInStatusNoShow},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.NotContains(t, fields, model.FieldCheckedInAt)
						assert.NotContains(t, fields, model.FieldCheckedOutAt)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "record not found",
			req:  dto.UpdateCheckInStatusRequest{Status: constant.CheckInStatusCheckedIn},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			req:  dto.UpdateCheckInStatusRequest{Status: constant.CheckInStatusCheckedIn},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, tt.req, "checkin-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
