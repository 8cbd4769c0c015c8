package service

import (
	"context"
	"fmt"

	"lux/config"
	"lux/infras/otel"
	"lux/internal/domains/payment/model"
	"lux/internal/domains/payment/model/dto"
	"lux/internal/domains/payment/repository"
	"lux/shared"
	"lux/shared/cache"
	"lux/shared/constant"
	gDto "lux/shared/dto"
	"lux/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAccount    = "payment:get"
	cacheGetAllAccount = "payment:gets"
	cacheCountAccount  = "payment:count"
)

type PaymentAccount interface {
	Create(ctx context.Context, req dto.CreatePaymentAccountRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentAccountsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetActive(ctx context.Context, req gDto.QueryParams) (dto.GetPaymentAccountsResponse, error)
	Get(ctx context.Context, id string) (dto.PaymentAccountResponse, error)
	Update(ctx context.Context, req dto.UpdatePaymentAccountRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.PaymentAccount
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.PaymentAccount, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) PaymentAccount {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentAccountRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	numberTaken, err := s.repo.Exist(ctx, shared.FilterByID(req.AccountNumber, model.FieldAccountNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check account number")

		return fmt.Errorf("failed to check account number: %w", err)
	}

	if numberTaken {
		return failure.Conflict("account number already registered") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to insert payment account")

		return fmt.Errorf("failed to insert payment account: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAccount)
		shared.InvalidateCaches(c, s.cache, cacheCountAccount)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentAccountsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAccount, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment accounts")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payment accounts")

		return res, fmt.Errorf("failed to count payment accounts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment accounts")

		return res, fmt.Errorf("failed to get payment accounts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment accounts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAccount, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment account count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payment accounts")

		return res, fmt.Errorf("failed to count payment accounts: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment account count to cache")
		}
	}()

	return res, nil
}

// GetActive lists the transfer destinations shown to guests on the public
// booking page.
func (s *serviceImpl) GetActive(ctx context.Context, req gDto.QueryParams) (dto.GetPaymentAccountsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentAccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAccount, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment account")

		return res, nil
	}

	account, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment account")

		return res, fmt.Errorf("failed to get payment account: %w", err)
	}

	if account.ID == constant.Empty {
		return res, failure.NotFound("payment account not found") // nolint:wrapcheck
	}

	res.FromModel(account)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment account to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePaymentAccountRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment account exists")

		return fmt.Errorf("failed to check if payment account exists: %w", err)
	}

	if !exist {
		return failure.NotFound("payment account not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment account")

		return fmt.Errorf("failed to update payment account: %w", err)
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
		log.Error().Err(err).Msg("failed to check if payment account exists")

		return fmt.Errorf("failed to check if payment account exists: %w", err)
	}

	if !exist {
		return failure.NotFound("payment account not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete payment account")

		return fmt.Errorf("failed to delete payment account: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAccount, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete payment account from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAccount)
		shared.InvalidateCaches(c, s.cache, cacheCountAccount)
	}()
}
