package repository

//go:generate go run go.uber.org/mock/mockgen -source=./document.go -destination=../mocks/document_mock.go -package=mocks

import (
	"context"

	"lux/infras/otel"
	"lux/infras/postgres"
	"lux/internal/domains/staff/model"
	gDto "lux/shared/dto"
	gRepo "lux/shared/repository"
)

type StaffDocument interface {
	Insert(ctx context.Context, model model.StaffDocument) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.StaffDocument, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StaffDocument, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type documentRepositoryImpl struct {
	gRepo.Repository[model.StaffDocument]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDocument(db *postgres.Connection, otel otel.Otel) StaffDocument {
	return &documentRepositoryImpl{
		Repository: gRepo.NewRepository[model.StaffDocument](model.DocumentEntityName, model.DocumentTableName, model.DocumentFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
