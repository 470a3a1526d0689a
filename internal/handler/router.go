package handler

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the chi router with the full middleware stack and all
// API routes.
func NewRouter(events *EventHandler, users *UserHandler, registrations *RegistrationHandler) chi.Router {
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger)                  // access log
	r.Use(CORS)                    // permissive CORS

	r.Get("/", Root)
	r.Get("/health", HealthCheck)

	r.Route("/events", func(r chi.Router) {
		r.Post("/", events.CreateEvent)
		r.Get("/", events.ListEvents)
		r.Get("/{id}", events.GetEvent)
		r.Put("/{id}", events.UpdateEvent)
		r.Delete("/{id}", events.DeleteEvent)
		r.Post("/{id}/registrations", registrations.Register)
		r.Delete("/{id}/registrations/{userId}", registrations.Unregister)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", users.CreateUser)
		r.Get("/{id}", users.GetUser)
		r.Get("/{id}/events", registrations.ListUserEvents)
	})

	return r
}
