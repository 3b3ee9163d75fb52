package service

import (
	"campsite/config"
	"campsite/infras/otel"
	"campsite/internal/domains/guest/model"
	"campsite/internal/domains/guest/model/dto"
	"campsite/internal/domains/guest/repository"
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
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	GetAll(ctx context.Context) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest := req.ToModel()

	if err = s.repo.Insert(ctx, guest); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflict("Email already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllGuest, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("Guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}
