package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/parky-api/internal/api"
	apiMiddleware "github.com/phrazzld/parky-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Ids are constrained to digits, so other values match no route and answer 404.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	parkHandler := api.NewParkHandler(app.parkStore, app.logger)
	trailHandler := api.NewTrailHandler(app.trailStore, app.parkStore, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/parks", func(r chi.Router) {
			r.Get("/", parkHandler.ListParks)
			r.Post("/", parkHandler.CreatePark)
			r.Get("/{id:[0-9]+}", parkHandler.GetPark)
			r.Patch("/{id:[0-9]+}", parkHandler.UpdatePark)
			r.Delete("/{id:[0-9]+}", parkHandler.DeletePark)
		})

		r.Route("/trails", func(r chi.Router) {
			r.Get("/", trailHandler.ListTrails)
			r.Post("/", trailHandler.CreateTrail)
			r.Get("/by-park/{parkId:[0-9]+}", trailHandler.ListTrailsInPark)
			r.Get("/{id:[0-9]+}", trailHandler.GetTrail)
			r.Patch("/{id:[0-9]+}", trailHandler.UpdateTrail)
			r.Delete("/{id:[0-9]+}", trailHandler.DeleteTrail)
		})
	})

	// v2 narrows the park listing to its first entry.
	r.Route("/api/v2", func(r chi.Router) {
		r.Get("/parks", parkHandler.FirstPark)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
