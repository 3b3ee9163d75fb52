package availability

import (
	"campsite/infras/otel"
	"campsite/internal/domains/availability/service"
	"campsite/shared/constant"
	"campsite/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/{type_id}", handler.CheckAvailability)
	})
}

// CheckAvailability reports the cached availability for an accommodation type on a date.
// @Summary Check availability
// @Description Look up the pre-computed availability of an accommodation type for a specific date.
// @Tags Availability
// @Accept json
// @Produce json
// @Param type_id path string true "Accommodation Type ID"
// @Param date query string true "Date to check (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability for the requested date"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /availability/{type_id} [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	typeID := chi.URLParam(r, constant.RequestParamTypeID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	availability, err := handler.service.Check(ctx, typeID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}
