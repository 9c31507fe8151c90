package router

import (
	"wander/internal/handlers/booking"
	"wander/internal/handlers/experience"
	"wander/internal/handlers/health"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Experience experience.Handler
	Booking    booking.Handler
	Health     health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Experience.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
