package system

import (
	"campsite/config"
	"campsite/infras/otel"
	"campsite/internal/domains/system/model/dto"
	"campsite/internal/domains/system/service"
	"campsite/shared/constant"
	"campsite/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.System
	config  *config.Config
	otel    otel.Otel
}

func New(service service.System, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		config:  config,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Banner)
	router.Get("/health", handler.HealthCheck)
}

// Banner identifies the running service.
// @Summary Service banner
// @Description Return the service name and version.
// @Tags System
// @Produce json
// @Success 200 {object} response.Data[dto.BannerResponse] "Service identification"
// @Router / [get]
func (handler *Handler) Banner(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Banner")
	defer scope.End()

	banner := dto.BannerResponse{
		Message: handler.config.App.Name,
		Version: handler.config.App.Version,
	}

	response.WithJSON(w, http.StatusOK, banner)
}

// HealthCheck reports service and database health.
// @Summary Health check
// @Description Verify the service can reach its database.
// @Tags System
// @Produce json
// @Success 200 {object} response.Data[dto.HealthResponse] "Service is healthy"
// @Failure 500 {object} response.Error
// @Router /health [get]
func (handler *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HealthCheck")
	defer scope.End()

	health, err := handler.service.Health(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("health check failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, health)
}
