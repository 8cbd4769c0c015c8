package service

import (
	"context"
	"fmt"

	"lux/config"
	"lux/infras/otel"
	"lux/internal/domains/announcement/model"
	"lux/internal/domains/announcement/model/dto"
	"lux/internal/domains/announcement/repository"
	"lux/shared"
	"lux/shared/cache"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/failure"
	"lux/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAnnouncement    = "announcement:get"
	cacheGetAllAnnouncement = "announcement:gets"
	cacheCountAnnouncement  = "announcement:count"
)

type Announcement interface {
	Create(ctx context.Context, req dto.CreateAnnouncementRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAnnouncementsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetActive(ctx context.Context, req gDto.QueryParams, audience string) (dto.GetAnnouncementsResponse, error)
	Get(ctx context.Context, id string) (dto.AnnouncementResponse, error)
	Update(ctx context.Context, req dto.UpdateAnnouncementRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Announcement
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Announcement, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Announcement {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAnnouncementRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	announcement, err := req.ToModel(user)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, announcement); err != nil {
		log.Error().Err(err).Msg("failed to insert announcement")

		return fmt.Errorf("failed to insert announcement: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAnnouncement)
		shared.InvalidateCaches(c, s.cache, cacheCountAnnouncement)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAnnouncementsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAnnouncement, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for announcements")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count announcements")

		return res, fmt.Errorf("failed to count announcements: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get announcements")

		return res, fmt.Errorf("failed to get announcements: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save announcements to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAnnouncement, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for announcement count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count announcements")

		return res, fmt.Errorf("failed to count announcements: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save announcement count to cache")
		}
	}()

	return res, nil
}

// GetActive lists announcements visible to an audience: active, targeted at
// that audience or everyone, and either without expiry or not yet expired.
func (s *serviceImpl) GetActive(ctx context.Context, req gDto.QueryParams, audience string) (res dto.GetAnnouncementsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAudience,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{audience, constant.AudienceAll},
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						Field:    model.FieldExpiresAt,
						Operator: gDto.FilterIsNull,
						Table:    model.TableName,
					},
					gDto.Filter{
						ArgName:  "expires_after",
						Field:    model.FieldExpiresAt,
						Operator: gDto.FilterOperatorGreaterEq,
						Value:    timezone.Now(),
						Table:    model.TableName,
					},
				},
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AnnouncementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAnnouncement, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for announcement")

		return res, nil
	}

	announcement, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get announcement")

		return res, fmt.Errorf("failed to get announcement: %w", err)
	}

	if announcement.ID == constant.Empty {
		return res, failure.NotFound("announcement not found") // nolint:wrapcheck
	}

	res.FromModel(announcement)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save announcement to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAnnouncementRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if announcement exists")

		return fmt.Errorf("failed to check if announcement exists: %w", err)
	}

	if !exist {
		return failure.NotFound("announcement not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update announcement")

		return fmt.Errorf("failed to update announcement: %w", err)
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
		log.Error().Err(err).Msg("failed to check if announcement exists")

		return fmt.Errorf("failed to check if announcement exists: %w", err)
	}

	if !exist {
		return failure.NotFound("announcement not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete announcement")

		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAnnouncement, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete announcement from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAnnouncement)
		shared.InvalidateCaches(c, s.cache, cacheCountAnnouncement)
	}()
}
