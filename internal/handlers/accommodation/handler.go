package accommodation

import (
	"campsite/infras/otel"
	"campsite/internal/domains/accommodation/model/dto"
	"campsite/internal/domains/accommodation/service"
	"campsite/shared/constant"
	"campsite/shared/validator"
	"campsite/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.AccommodationType
	otel    otel.Otel
}

func New(service service.AccommodationType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/accommodation-types", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAccommodationTypes)
		routerGroup.Post("/", handler.CreateAccommodationType)
		routerGroup.Get("/{id}", handler.GetAccommodationTypeByID)
	})
}

// GetAccommodationTypes retrieves all active accommodation types.
// @Summary Get all active accommodation types
// @Description Retrieve every accommodation type with is_active set to true.
// @Tags Accommodation Types
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetAccommodationTypesResponse] "List of active accommodation types"
// @Failure 500 {object} response.Error
// @Router /accommodation-types [get]
func (handler *Handler) GetAccommodationTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodationTypes")
	defer scope.End()

	accommodationTypes, err := handler.service.GetAllActive(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accommodation types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation types retrieved successfully")

	response.WithJSON(w, http.StatusOK, accommodationTypes)
}

// GetAccommodationTypeByID retrieves an accommodation type by its ID.
// @Summary Get an accommodation type by ID
// @Description Retrieve an accommodation type by its unique identifier.
// @Tags Accommodation Types
// @Accept json
// @Produce json
// @Param id path string true "Accommodation Type ID"
// @Success 200 {object} response.Data[dto.AccommodationTypeResponse] "Accommodation type details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /accommodation-types/{id} [get]
func (handler *Handler) GetAccommodationTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccommodationTypeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	accommodationType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accommodation type by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation type retrieved successfully")

	response.WithJSON(w, http.StatusOK, accommodationType)
}

// CreateAccommodationType handles the creation of a new accommodation type.
// @Summary Create a new accommodation type
// @Description Create a new accommodation type with the provided details.
// @Tags Accommodation Types
// @Accept json
// @Produce json
// @Param request body dto.CreateAccommodationTypeRequest true "Create Accommodation Type Request"
// @Success 201 {object} response.Data[dto.AccommodationTypeResponse] "Created accommodation type"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /accommodation-types [post]
func (handler *Handler) CreateAccommodationType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAccommodationType")
	defer scope.End()

	req := dto.CreateAccommodationTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	accommodationType, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create accommodation type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Accommodation type created successfully")

	response.WithJSON(w, http.StatusCreated, accommodationType)
}
