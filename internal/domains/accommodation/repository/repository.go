package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"campsite/infras/otel"
	"campsite/infras/postgres"
	"campsite/internal/domains/accommodation/model"
	gDto "campsite/shared/dto"
	gRepo "campsite/shared/repository"
	"context"
)

type AccommodationType interface {
	Insert(ctx context.Context, model model.AccommodationType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AccommodationType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AccommodationType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AccommodationType]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AccommodationType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AccommodationType](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
