package service

import (
	"context"
	"fmt"

	"lux/config"
	"lux/infras/otel"
	"lux/internal/domains/housekeeping/model"
	"lux/internal/domains/housekeeping/model/dto"
	"lux/internal/domains/housekeeping/repository"
	"lux/shared"
	"lux/shared/cache"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/failure"
	"lux/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTask    = "housekeeping:get"
	cacheGetAllTask = "housekeeping:gets"
	cacheCountTask  = "housekeeping:count"
)

type Housekeeping interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTasksResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateTaskStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Housekeeping
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Housekeeping, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Housekeeping {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to insert housekeeping task")

		return fmt.Errorf("failed to insert housekeeping task: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
		shared.InvalidateCaches(c, s.cache, cacheCountTask)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTask, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping tasks")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count housekeeping tasks")

		return res, fmt.Errorf("failed to count housekeeping tasks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		return res, fmt.Errorf("failed to get housekeeping tasks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping tasks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTask, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count housekeeping tasks")

		return res, fmt.Errorf("failed to count housekeeping tasks: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTask, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping task")

		return res, nil
	}

	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return res, fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return res, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	res.FromModel(task)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping task to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if housekeeping task exists")

		return fmt.Errorf("failed to check if housekeeping task exists: %w", err)
	}

	if !exist {
		return failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update housekeeping task")

		return fmt.Errorf("failed to update housekeeping task: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// UpdateStatus stamps completed_at when a task closes.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateTaskStatusRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if housekeeping task exists")

		return fmt.Errorf("failed to check if housekeeping task exists: %w", err)
	}

	if !exist {
		return failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.Status == constant.TaskStatusCompleted {
		updatedFields[model.FieldCompletedAt] = timezone.Now()
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update housekeeping status")

		return fmt.Errorf("failed to update housekeeping status: %w", err)
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
		log.Error().Err(err).Msg("failed to check if housekeeping task exists")

		return fmt.Errorf("failed to check if housekeeping task exists: %w", err)
	}

	if !exist {
		return failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete housekeeping task")

		return fmt.Errorf("failed to delete housekeeping task: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTask, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete housekeeping task from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
		shared.InvalidateCaches(c, s.cache, cacheCountTask)
	}()
}
