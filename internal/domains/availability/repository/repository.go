package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"campsite/infras/otel"
	"campsite/infras/postgres"
	"campsite/internal/domains/availability/model"
	gDto "campsite/shared/dto"
	gRepo "campsite/shared/repository"
	"context"
)

type Availability interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AvailabilityCache, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AvailabilityCache]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AvailabilityCache](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
