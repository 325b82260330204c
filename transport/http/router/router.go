package router

import (
	"repnowait/internal/handlers/booking"
	"repnowait/internal/handlers/catalog"
	"repnowait/internal/handlers/heatmap"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog catalog.Handler
	Booking booking.Handler
	Heatmap heatmap.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain route on router. The caller decides the base path.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Catalog.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Heatmap.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
