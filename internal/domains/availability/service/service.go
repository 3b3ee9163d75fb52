package service

import (
	"campsite/infras/otel"
	"campsite/internal/domains/availability/model"
	"campsite/internal/domains/availability/model/dto"
	"campsite/internal/domains/availability/repository"
	"campsite/shared/constant"
	gDto "campsite/shared/dto"
	"campsite/shared/failure"
	"campsite/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	Check(ctx context.Context, accommodationTypeID, date string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo repository.Availability
	otel otel.Otel
}

func New(repo repository.Availability, otel otel.Otel) Availability {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Check(ctx context.Context, accommodationTypeID, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Strict YYYY-MM-DD; rejected before any store access.
	checkDate, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return res, failure.InvalidDateParam // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAccommodationTypeID,
				Operator: gDto.FilterOperatorEq,
				Value:    accommodationTypeID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    checkDate.Format(constant.DateOnlyFormat),
				Table:    model.TableName,
			},
		},
	}

	availability, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability")

		return res, fmt.Errorf("failed to get availability: %w", err)
	}

	if availability.ID == constant.Empty {
		res.NoData(accommodationTypeID, checkDate)

		return res, nil
	}

	res.FromModel(availability)

	return res, nil
}
