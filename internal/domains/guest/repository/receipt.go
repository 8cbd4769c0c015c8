package repository

//go:generate go run go.uber.org/mock/mockgen -source=./receipt.go -destination=../mocks/receipt_mock.go -package=mocks

import (
	"context"

	"lux/infras/otel"
	"lux/infras/postgres"
	"lux/internal/domains/guest/model"
	gDto "lux/shared/dto"
	gRepo "lux/shared/repository"
)

type GuestReceipt interface {
	Insert(ctx context.Context, model model.GuestReceipt) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GuestReceipt, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GuestReceipt, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type receiptRepositoryImpl struct {
	gRepo.Repository[model.GuestReceipt]
	db   *postgres.Connection
	otel otel.Otel
}

func NewReceipt(db *postgres.Connection, otel otel.Otel) GuestReceipt {
	return &receiptRepositoryImpl{
		Repository: gRepo.NewRepository[model.GuestReceipt](model.ReceiptEntityName, model.ReceiptTableName, model.ReceiptFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
