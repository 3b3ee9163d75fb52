package review

import (
	"campsite/infras/otel"
	"campsite/internal/domains/review/model/dto"
	"campsite/internal/domains/review/service"
	"campsite/shared"
	"campsite/shared/constant"
	"campsite/shared/validator"
	"campsite/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Patch("/{id}/approval", handler.UpdateReviewApproval)
	})
}

// CreateReview ingests an externally sourced review.
// @Summary Create a new review
// @Description Store a review scraped from an external platform. New reviews are approved by default.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Data[dto.ReviewResponse] "Created review"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reviews [post]
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review created successfully")

	response.WithJSON(w, http.StatusCreated, review)
}

// GetReviews retrieves reviews, newest first.
// @Summary Get reviews
// @Description Retrieve reviews ordered by original creation time descending. By default only approved reviews are returned; pass approved_only=false to include all.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param approved_only query boolean false "Only return approved reviews (default true)"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 500 {object} response.Error
// @Router /reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	// Unset or malformed values fall back to approved-only.
	approvedOnly := true
	if value := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamApproved)); value != nil {
		approvedOnly = *value
	}

	reviews, err := handler.service.GetAll(ctx, approvedOnly)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// UpdateReviewApproval moderates a review.
// @Summary Update review approval
// @Description Approve or reject a review by its identifier.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body dto.UpdateReviewApprovalRequest true "Update Review Approval Request"
// @Success 200 {object} response.Data[dto.ReviewResponse] "Updated review"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reviews/{id}/approval [patch]
func (handler *Handler) UpdateReviewApproval(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReviewApproval")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReviewApprovalRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.SetApproval(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update review approval")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review approval updated successfully")

	response.WithJSON(w, http.StatusOK, review)
}
