package service

import (
	"campsite/config"
	"campsite/infras/otel"
	"campsite/internal/domains/accommodation/model"
	"campsite/internal/domains/accommodation/model/dto"
	"campsite/internal/domains/accommodation/repository"
	"campsite/shared"
	"campsite/shared/cache"
	"campsite/shared/constant"
	gDto "campsite/shared/dto"
	"campsite/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetType     = "accommodation_type:get"
	cacheGetAllTypes = "accommodation_type:gets"
)

type AccommodationType interface {
	Create(ctx context.Context, req dto.CreateAccommodationTypeRequest) (dto.AccommodationTypeResponse, error)
	GetAllActive(ctx context.Context) (dto.GetAccommodationTypesResponse, error)
	Get(ctx context.Context, id string) (dto.AccommodationTypeResponse, error)
}

type serviceImpl struct {
	repo  repository.AccommodationType
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.AccommodationType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) AccommodationType {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAccommodationTypeRequest) (res dto.AccommodationTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	accommodationType := req.ToModel()

	if err = s.repo.Insert(ctx, accommodationType); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflict("Name or code already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create accommodation type")

		return res, fmt.Errorf("failed to create accommodation type: %w", err)
	}

	res.FromModel(accommodationType)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTypes)
	}()

	return res, nil
}

func (s *serviceImpl) GetAllActive(ctx context.Context) (res dto.GetAccommodationTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllTypes, "active")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for accommodation types")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation types")

		return res, fmt.Errorf("failed to get accommodation types: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodation types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AccommodationTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetType, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for accommodation type")

		return res, nil
	}

	accommodationType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation type")

		return res, fmt.Errorf("failed to get accommodation type: %w", err)
	}

	if accommodationType.ID == constant.Empty {
		return res, failure.NotFound("Accommodation type not found") // nolint:wrapcheck
	}

	res.FromModel(accommodationType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodation type to cache")
		}
	}()

	return res, nil
}
