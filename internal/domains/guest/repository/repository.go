package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"campsite/infras/otel"
	"campsite/infras/postgres"
	"campsite/internal/domains/guest/model"
	gDto "campsite/shared/dto"
	gRepo "campsite/shared/repository"
	"context"
)

type Guest interface {
	Insert(ctx context.Context, model model.GuestData) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GuestData, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GuestData, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.GuestData]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GuestData](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
