package service

import (
	"campsite/config"
	"campsite/infras/otel"
	accommodationModel "campsite/internal/domains/accommodation/model"
	accommodationRepo "campsite/internal/domains/accommodation/repository"
	"campsite/internal/domains/booking/model"
	"campsite/internal/domains/booking/model/dto"
	"campsite/internal/domains/booking/repository"
	guestModel "campsite/internal/domains/guest/model"
	guestRepo "campsite/internal/domains/guest/repository"
	"campsite/shared"
	"campsite/shared/cache"
	"campsite/shared/constant"
	gDto "campsite/shared/dto"
	"campsite/shared/failure"
	"campsite/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, status string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo              repository.Booking
	accommodationRepo accommodationRepo.AccommodationType
	guestRepo         guestRepo.Guest
	cfg               *config.Config
	cache             cache.RedisCache
	otel              otel.Otel
}

func New(
	repo repository.Booking,
	accommodationRepo accommodationRepo.AccommodationType,
	guestRepo guestRepo.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:              repo,
		accommodationRepo: accommodationRepo,
		guestRepo:         guestRepo,
		cfg:               cfg,
		cache:             cache,
		otel:              otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	accommodationExists, err := s.accommodationRepo.Exist(
		ctx,
		shared.FilterByID(req.AccommodationTypeID, accommodationModel.FieldID, accommodationModel.TableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if accommodation type exists")

		return res, fmt.Errorf("failed to check if accommodation type exists: %w", err)
	}

	if !accommodationExists {
		return res, failure.NotFound("Accommodation type not found") // nolint:wrapcheck
	}

	guestExists, err := s.guestRepo.Exist(
		ctx,
		shared.FilterByID(req.GuestDataID, guestModel.FieldID, guestModel.TableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return res, failure.NotFound("Guest not found") // nolint:wrapcheck
	}

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		// The dependency checks above are not atomic with the insert; a row
		// deleted in between lands here as a foreign key violation.
		if shared.IsFkViolation(err) {
			return res, failure.NotFound("Accommodation type or guest not found") // nolint:wrapcheck
		}

		// The store message is surfaced so the caller can tell what went wrong.
		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	statusKey := status
	if statusKey == constant.Empty {
		statusKey = "all"
	}

	cacheKey := shared.BuildCacheKey(cacheGetAllBooking, statusKey)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	// Any status may follow any status; the transition graph is not enforced.
	updatedFields := map[string]any{
		model.FieldStatus:       req.Status,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking after status update")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return res, nil
}
