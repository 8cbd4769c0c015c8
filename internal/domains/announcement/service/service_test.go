package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lux/config"
	"lux/infras/otel/mocks"
	announcementMocks "lux/internal/domains/announcement/mocks"
	"lux/internal/domains/announcement/model"
	"lux/internal/domains/announcement/service"
	cacheMocks "lux/shared/cache/mocks"
	"lux/shared/constant"
	gDto "lux/shared/dto"
)

func TestAnnouncementService_GetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := announcementMocks.NewMockAnnouncement(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		AnyTimes()
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	announcements := []model.Announcement{
		{
			ID:       "announcement-1",
			Title:    "Pool maintenance",
			Body:     "The pool closes at noon.",
			Audience: constant.AudiencePublic,
			IsActive: true,
		},
	}

	var captured gDto.FilterGroup

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Announcement, error) {
			captured = filter

			return announcements, nil
		})

	res, err := svc.GetActive(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, constant.AudiencePublic)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Announcements, 1)

	// The audience filter must admit both the requested audience and "all".
	assert.Equal(t, gDto.FilterGroupOperatorAnd, captured.Operator)

	found := false
	for _, f := range captured.Filters {
		filter, ok := f.(gDto.Filter)
		if !ok || filter.Field != model.FieldAudience {
			continue
		}

		found = true
		assert.Equal(t, gDto.FilterOperatorIn, filter.Operator)
		assert.Equal(t, []string{constant.AudiencePublic, constant.AudienceAll}, filter.Value)
	}
	assert.True(t, found, "audience filter missing")
}

func TestAnnouncementService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := announcementMocks.NewMockAnnouncement(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "announcement not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "announcement-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
