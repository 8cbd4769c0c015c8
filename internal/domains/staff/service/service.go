package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"lux/config"
	"lux/infras/otel"
	"lux/infras/s3"
	"lux/internal/domains/staff/model"
	"lux/internal/domains/staff/model/dto"
	"lux/internal/domains/staff/repository"
	"lux/shared"
	"lux/shared/cache"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/failure"
	gModel "lux/shared/model"
	"lux/shared/password"
	"lux/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetStaff    = "staff:get"
	cacheGetAllStaff = "staff:gets"
	cacheCountStaff  = "staff:count"

	staffCodeBytes = 4
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	ResetCode(ctx context.Context, id string) (dto.ResetCodeResponse, error)
	Delete(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, staffID string) (dto.DocumentResponse, error)
	GetDocuments(ctx context.Context, staffID string) (dto.GetDocumentsResponse, error)
	DeleteDocument(ctx context.Context, staffID, documentID string) error
}

type serviceImpl struct {
	repo    repository.Staff
	docRepo repository.StaffDocument
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	s3      s3.S3
}

func New(repo repository.Staff, docRepo repository.StaffDocument, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Staff {
	return &serviceImpl{
		repo:    repo,
		docRepo: docRepo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		s3:      s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	emailTaken, err := s.repo.Exist(ctx, shared.FilterByID(req.Email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check staff email")

		return res, fmt.Errorf("failed to check staff email: %w", err)
	}

	if emailTaken {
		return res, failure.Conflict("staff email already registered") // nolint:wrapcheck
	}

	staffCode, err := generateStaffCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate staff code")

		return res, fmt.Errorf("failed to generate staff code: %w", err)
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash staff password")

		return res, fmt.Errorf("failed to hash staff password: %w", err)
	}

	staff := req.ToModel(user, staffCode, hashedPassword)

	if err = s.repo.Insert(ctx, staff); err != nil {
		log.Error().Err(err).Msg("failed to insert staff member")

		return res, fmt.Errorf("failed to insert staff member: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff members")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff members")

		return res, fmt.Errorf("failed to count staff members: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff members")

		return res, fmt.Errorf("failed to get staff members: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff members to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff members")

		return res, fmt.Errorf("failed to count staff members: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStaff, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff member")

		return res, nil
	}

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return res, fmt.Errorf("failed to get staff member: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	res.FromModel(staff)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff member to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff member exists")

		return fmt.Errorf("failed to check if staff member exists: %w", err)
	}

	if !exist {
		return failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update staff member")

		return fmt.Errorf("failed to update staff member: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// ResetCode replaces the staff code with a fresh token and returns it once.
func (s *serviceImpl) ResetCode(ctx context.Context, id string) (res dto.ResetCodeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff member exists")

		return res, fmt.Errorf("failed to check if staff member exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	staffCode, err := generateStaffCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate staff code")

		return res, fmt.Errorf("failed to generate staff code: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldStaffCode:     staffCode,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to reset staff code")

		return res, fmt.Errorf("failed to reset staff code: %w", err)
	}

	s.invalidate(ctx, id)

	return dto.ResetCodeResponse{ID: id, StaffCode: staffCode}, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff member exists")

		return fmt.Errorf("failed to check if staff member exists: %w", err)
	}

	if !exist {
		return failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete staff member")

		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, staffID string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(staffID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff member exists")

		return res, fmt.Errorf("failed to check if staff member exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("staff member not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	parts := strings.Split(req.File.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, bucketName, model.DocumentEntityName, req.FileData, req.File, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload staff document to S3")

		return res, fmt.Errorf("failed to upload staff document: %w", err)
	}

	document := model.StaffDocument{
		ID:      uuid.NewString(),
		StaffID: staffID,
		Name:    req.Name,
		URL:     url,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.docRepo.Insert(ctx, document); err != nil {
		log.Error().Err(err).Msg("failed to insert staff document")

		if delErr := s.s3.DeleteFile(ctx, bucketName, model.DocumentEntityName, filename); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up staff document from S3")
		}

		return res, fmt.Errorf("failed to insert staff document: %w", err)
	}

	res.FromModel(document)

	return res, nil
}

func (s *serviceImpl) GetDocuments(ctx context.Context, staffID string) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDocuments")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.docRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(staffID, model.DocumentFieldStaffID, model.DocumentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff documents")

		return res, fmt.Errorf("failed to get staff documents: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) DeleteDocument(ctx context.Context, staffID, documentID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteDocument")
	defer scope.End()
	defer scope.TraceIfError(nil)

	document, err := s.docRepo.Get(ctx, shared.FilterByID(documentID, model.DocumentFieldID, model.DocumentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff document")

		return fmt.Errorf("failed to get staff document: %w", err)
	}

	if document.ID == constant.Empty || document.StaffID != staffID {
		return failure.NotFound("staff document not found") // nolint:wrapcheck
	}

	if err := s.docRepo.Delete(ctx, shared.FilterByID(documentID, model.DocumentFieldID, model.DocumentTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete staff document")

		return fmt.Errorf("failed to delete staff document: %w", err)
	}

	bucketName := s.cfg.External.S3.BucketName
	objectName := s.s3.GetObjectNameFromURL(bucketName, document.URL)

	if err := s.s3.DeleteFile(ctx, bucketName, model.DocumentEntityName, objectName); err != nil {
		log.Error().Err(err).Msg("failed to delete staff document from S3")
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStaff, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete staff member from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()
}

func generateStaffCode() (string, error) {
	buf := make([]byte, staffCodeBytes)

	if _, err := rand.Read(buf); err != nil {
		return constant.Empty, fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
