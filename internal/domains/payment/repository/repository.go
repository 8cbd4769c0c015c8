package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lux/infras/otel"
	"lux/infras/postgres"
	"lux/internal/domains/payment/model"
	gDto "lux/shared/dto"
	gRepo "lux/shared/repository"
)

type PaymentAccount interface {
	Insert(ctx context.Context, model model.PaymentAccount) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PaymentAccount, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PaymentAccount, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PaymentAccount]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PaymentAccount {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PaymentAccount](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
