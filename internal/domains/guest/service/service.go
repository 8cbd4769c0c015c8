package service

import (
	"context"
	"fmt"
	"strings"

	"lux/config"
	"lux/infras/otel"
	"lux/infras/s3"
	"lux/internal/domains/guest/model"
	"lux/internal/domains/guest/model/dto"
	"lux/internal/domains/guest/repository"
	"lux/shared"
	"lux/shared/cache"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheCountGuest  = "guest:count"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error
	Delete(ctx context.Context, id string) error
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, guestID string) (dto.ReceiptResponse, error)
	GetReceipts(ctx context.Context, guestID string) (dto.GetReceiptsResponse, error)
}

type serviceImpl struct {
	repo        repository.Guest
	receiptRepo repository.GuestReceipt
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(repo repository.Guest, receiptRepo repository.GuestReceipt, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Guest {
	return &serviceImpl{
		repo:        repo,
		receiptRepo: receiptRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to insert guest profile")

		return fmt.Errorf("failed to insert guest profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest profile")

		return res, fmt.Errorf("failed to get guest profile: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest profile not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest profile exists")

		return fmt.Errorf("failed to check if guest profile exists: %w", err)
	}

	if !exist {
		return failure.NotFound("guest profile not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest profile")

		return fmt.Errorf("failed to update guest profile: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest profile exists")

		return fmt.Errorf("failed to check if guest profile exists: %w", err)
	}

	if !exist {
		return failure.NotFound("guest profile not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete guest profile")

		return fmt.Errorf("failed to delete guest profile: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, guestID string) (res dto.ReceiptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReceipt")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(guestID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest profile exists")

		return res, fmt.Errorf("failed to check if guest profile exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("guest profile not found") // nolint:wrapcheck
	}

	var url *string
	var uploadedObjectName string

	if req.File != nil {
		bucketName := s.cfg.External.S3.BucketName
		filename := uuid.NewString()

		parts := strings.Split(req.File.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		uploaded, uploadErr := s.s3.UploadFile(ctx, bucketName, model.ReceiptEntityName, req.FileData, req.File, filename)
		if uploadErr != nil {
			log.Error().Err(uploadErr).Msg("failed to upload receipt to S3")

			return res, fmt.Errorf("failed to upload receipt: %w", uploadErr)
		}

		url = &uploaded
		uploadedObjectName = filename
	}

	receipt := req.ToModel(user, guestID, url)

	if err = s.receiptRepo.Insert(ctx, receipt); err != nil {
		log.Error().Err(err).Msg("failed to insert guest receipt")

		if uploadedObjectName != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName

			if delErr := s.s3.DeleteFile(ctx, bucketName, model.ReceiptEntityName, uploadedObjectName); delErr != nil {
				log.Error().Err(delErr).Msg("failed to clean up receipt from S3")
			}
		}

		return res, fmt.Errorf("failed to insert guest receipt: %w", err)
	}

	res.FromModel(receipt)

	return res, nil
}

func (s *serviceImpl) GetReceipts(ctx context.Context, guestID string) (res dto.GetReceiptsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReceipts")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.receiptRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(guestID, model.ReceiptFieldGuestID, model.ReceiptTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest receipts")

		return res, fmt.Errorf("failed to get guest receipts: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()
}
