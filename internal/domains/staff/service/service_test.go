package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lux/config"
	"lux/infras/otel/mocks"
	s3Mocks "lux/infras/s3/mocks"
	staffMocks "lux/internal/domains/staff/mocks"
	"lux/internal/domains/staff/model"
	"lux/internal/domains/staff/model/dto"
	"lux/internal/domains/staff/service"
	cacheMocks "lux/shared/cache/mocks"
	"lux/shared/constant"
	"lux/shared/failure"
)

func TestStaffService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := staffMocks.NewMockStaff(ctrl)
	mockDocRepo := staffMocks.NewMockStaffDocument(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockDocRepo, cfg, mockCache, mockOtel, mockS3)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	validReq := dto.CreateStaffRequest{
		Name:     "Ayu Lestari",
		Email:    "ayu@example.com",
		Role:     "receptionist",
		Shift:    "morning",
		Password: "supersecret",
	}

	tests := []struct {
		name      string
		req       dto.CreateStaffRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-admin-id")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
				assert.NotEmpty(t, result.StaffCode)
				assert.Equal(t, tt.req.Email, result.Email)
			}
		})
	}
}

func TestStaffService_ResetCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := staffMocks.NewMockStaff(ctrl)
	mockDocRepo := staffMocks.NewMockStaffDocument(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockDocRepo, cfg, mockCache, mockOtel, mockS3)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful reset",
			id:   "staff-id-123",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "staff member not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			id:   "staff-id-123",
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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-admin-id")
			result, err := svc.ResetCode(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, result.ID)
				assert.Len(t, result.StaffCode, 8)
			}
		})
	}
}

func TestStaffService_DeleteDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := staffMocks.NewMockStaff(ctrl)
	mockDocRepo := staffMocks.NewMockStaffDocument(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockDocRepo, cfg, mockCache, mockOtel, mockS3)

	document := model.StaffDocument{
		ID:      "document-id-123",
		StaffID: "staff-id-123",
		Name:    "Employment Contract",
		URL:     "https://bucket.example.com/staff_document/file.pdf",
	}

	tests := []struct {
		name       string
		staffID    string
		documentID string
		setupMock  func()
		wantErr    bool
		wantCode   int
	}{
		{
			name:       "successful delete",
			staffID:    "staff-id-123",
			documentID: "document-id-123",
			setupMock: func() {
				mockDocRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(document, nil)

				mockDocRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), document.URL).
					Return("file.pdf")

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), "file.pdf").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "document belongs to another staff member",
			staffID:    "staff-id-456",
			documentID: "document-id-123",
			setupMock: func() {
				mockDocRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(document, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:       "document not found",
			staffID:    "staff-id-123",
			documentID: "nonexistent-id",
			setupMock: func() {
				mockDocRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.StaffDocument{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.DeleteDocument(ctx, tt.staffID, tt.documentID)

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
