package service

import (
	"context"
	"fmt"

	"lux/config"
	"lux/infras/otel"
	"lux/internal/domains/checkin/model"
	"lux/internal/domains/checkin/model/dto"
	"lux/internal/domains/checkin/repository"
	"lux/shared"
	"lux/shared/cache"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/failure"
	"lux/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCheckIn    = "checkin:get"
	cacheGetAllCheckIn = "checkin:gets"
	cacheCountCheckIn  = "checkin:count"
)

type CheckIn interface {
	Create(ctx context.Context, req dto.CreateCheckInRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCheckInsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CheckInResponse, error)
	Update(ctx context.Context, req dto.UpdateCheckInRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateCheckInStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.CheckIn
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.CheckIn, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) CheckIn {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCheckInRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to insert check-in record")

		return fmt.Errorf("failed to insert check-in record: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCheckIn)
		shared.InvalidateCaches(c, s.cache, cacheCountCheckIn)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCheckInsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCheckIn, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for check-ins")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count check-ins")

		return res, fmt.Errorf("failed to count check-ins: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-ins")

		return res, fmt.Errorf("failed to get check-ins: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save check-ins to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCheckIn, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for check-in count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count check-ins")

		return res, fmt.Errorf("failed to count check-ins: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save check-in count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCheckIn, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for check-in")

		return res, nil
	}

	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-in record")

		return res, fmt.Errorf("failed to get check-in record: %w", err)
	}

	if record.ID == constant.Empty {
		return res, failure.NotFound("check-in record not found") // nolint:wrapcheck
	}

	res.FromModel(record)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save check-in to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCheckInRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if check-in record exists")

		return fmt.Errorf("failed to check if check-in record exists: %w", err)
	}

	if !exist {
		return failure.NotFound("check-in record not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update check-in record")

		return fmt.Errorf("failed to update check-in record: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// UpdateStatus moves a record through the front-desk flow and stamps the
// matching timestamp: checked_in sets checked_in_at, checked_out sets
// checked_out_at.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateCheckInStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if check-in record exists")

		return fmt.Errorf("failed to check if check-in record exists: %w", err)
	}

	if !exist {
		return failure.NotFound("check-in record not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	switch req.Status {
	case constant.CheckInStatusCheckedIn:
		updatedFields[model.FieldCheckedInAt] = timezone.Now()
	case constant.CheckInStatusCheckedOut:
		updatedFields[model.FieldCheckedOutAt] = timezone.Now()
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update check-in status")

		return fmt.Errorf("failed to update check-in status: %w", err)
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
		log.Error().Err(err).Msg("failed to check if check-in record exists")

		return fmt.Errorf("failed to check if check-in record exists: %w", err)
	}

	if !exist {
		return failure.NotFound("check-in record not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete check-in record")

		return fmt.Errorf("failed to delete check-in record: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCheckIn, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete check-in from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCheckIn)
		shared.InvalidateCaches(c, s.cache, cacheCountCheckIn)
	}()
}
