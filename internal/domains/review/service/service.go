package service

import (
	"campsite/config"
	"campsite/infras/otel"
	"campsite/internal/domains/review/model"
	"campsite/internal/domains/review/model/dto"
	"campsite/internal/domains/review/repository"
	"campsite/shared"
	"campsite/shared/cache"
	"campsite/shared/constant"
	gDto "campsite/shared/dto"
	"campsite/shared/failure"
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllReview = "review:gets"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, approvedOnly bool) (dto.GetReviewsResponse, error)
	SetApproval(ctx context.Context, req dto.UpdateReviewApprovalRequest, id string) (dto.ReviewResponse, error)
}

type serviceImpl struct {
	repo  repository.Review
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Review, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	review, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse review request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid created_at format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, review); err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflict("Review with this external_id already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, approvedOnly bool) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllReview, strconv.FormatBool(approvedOnly))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if approvedOnly {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldIsApproved,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) SetApproval(ctx context.Context, req dto.UpdateReviewApprovalRequest, id string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetApproval")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if review exists")

		return res, fmt.Errorf("failed to check if review exists: %w", err)
	}

	if !exist {
		log.Error().Msg("review not found")

		return res, failure.NotFound("Review not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldIsApproved: *req.IsApproved,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update review approval")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	review, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review after approval update")

		return res, fmt.Errorf("failed to get review: %w", err)
	}

	res.FromModel(review)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
	}()

	return res, nil
}
