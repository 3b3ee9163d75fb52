package router

import (
	"campsite/internal/handlers/accommodation"
	"campsite/internal/handlers/availability"
	"campsite/internal/handlers/booking"
	"campsite/internal/handlers/guest"
	"campsite/internal/handlers/review"
	"campsite/internal/handlers/system"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	System        system.Handler
	Accommodation accommodation.Handler
	Guest         guest.Handler
	Booking       booking.Handler
	Review        review.Handler
	Availability  availability.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts all domain routers at the root. The API is served
// without a version prefix.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.System.Router(router)
	r.DomainHandlers.Accommodation.Router(router)
	r.DomainHandlers.Guest.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Review.Router(router)
	r.DomainHandlers.Availability.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
