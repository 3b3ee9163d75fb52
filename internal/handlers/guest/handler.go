package guest

import (
	"campsite/infras/otel"
	"campsite/internal/domains/guest/model/dto"
	"campsite/internal/domains/guest/service"
	"campsite/shared/constant"
	"campsite/shared/validator"
	"campsite/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
	})
}

// CreateGuest handles the creation of a new guest record.
// @Summary Create a new guest
// @Description Create a new guest contact record with the provided details.
// @Tags Guests
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Create Guest Request"
// @Success 201 {object} response.Data[dto.GuestResponse] "Created guest"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /guests [post]
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest created successfully")

	response.WithJSON(w, http.StatusCreated, guest)
}

// GetGuests retrieves all guest records.
// @Summary Get all guests
// @Description Retrieve every guest record, unfiltered.
// @Tags Guests
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetGuestsResponse] "List of guests"
// @Failure 500 {object} response.Error
// @Router /guests [get]
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	guests, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuestByID retrieves a guest by its ID.
// @Summary Get a guest by ID
// @Description Retrieve a guest record by its unique identifier.
// @Tags Guests
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /guests/{id} [get]
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest retrieved successfully")

	response.WithJSON(w, http.StatusOK, guest)
}
