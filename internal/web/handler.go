package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/parky-api/internal/dto"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/redact"
	"github.com/phrazzld/parky-api/internal/webclient"
)

// Resource is the remote repository contract the pages depend on.
// *webclient.Repository[T] implements it.
type Resource[T any] interface {
	GetOne(ctx context.Context, url string, id int64) (*T, error)
	GetAll(ctx context.Context, url string) ([]T, error)
	Create(ctx context.Context, url string, body any) (bool, error)
	Update(ctx context.Context, url string, body any) (bool, error)
	Delete(ctx context.Context, url string, id int64) (bool, error)
}

// Handler serves the web client pages.
type Handler struct {
	parks     Resource[dto.Park]
	trails    Resource[dto.Trail]
	api       webclient.Endpoint
	templates *Templates
	logger    *slog.Logger
}

// NewHandler creates a Handler that talks to the API at api.
func NewHandler(
	parks Resource[dto.Park],
	trails Resource[dto.Trail],
	api webclient.Endpoint,
	templates *Templates,
	logger *slog.Logger,
) *Handler {
	if parks == nil || trails == nil || templates == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("parks, trails and templates cannot be nil for web Handler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		parks:     parks,
		trails:    trails,
		api:       api,
		templates: templates,
		logger:    logger.With(slog.String("component", "web_handler")),
	}
}

// Routes registers the page routes on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Dashboard)

	r.Route("/parks", func(r chi.Router) {
		r.Get("/", h.ListParks)
		r.Get("/upsert", h.ParkForm)
		r.Post("/upsert", h.UpsertPark)
		r.Post("/{id:[0-9]+}/delete", h.DeletePark)
	})

	r.Route("/trails", func(r chi.Router) {
		r.Get("/", h.ListTrails)
		r.Get("/upsert", h.TrailForm)
		r.Post("/upsert", h.UpsertTrail)
		r.Post("/{id:[0-9]+}/delete", h.DeleteTrail)
	})
}

// page carries the fields the shared layout reads.
type page struct {
	Flash string
}

type errorPage struct {
	page
	Message string
}

var flashMessages = map[string]string{
	"saved":         "Saved.",
	"deleted":       "Deleted.",
	"delete_failed": "The record could not be deleted.",
	"not_found":     "The record no longer exists.",
	"load_failed":   "The list could not be loaded from the API.",
}

func flashFrom(r *http.Request) string {
	return flashMessages[r.URL.Query().Get("flash")]
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := h.templates.Render(w, status, name, data); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to render page",
			slog.String("template", name),
			slog.String("error", redact.Error(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// apiUnavailable renders the 502 page after a failed API call.
func (h *Handler) apiUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContextOrDefault(r.Context(), h.logger).Error("api call failed",
		slog.String("path", r.URL.Path),
		slog.String("error", redact.Error(err)))
	h.render(w, r, http.StatusBadGateway, pageError, errorPage{
		Message: "The Parky API could not be reached. Please try again later.",
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, what string) {
	h.render(w, r, http.StatusNotFound, pageError, errorPage{Message: what + " not found."})
}

func redirect(w http.ResponseWriter, r *http.Request, path, flash string) {
	if flash != "" {
		path += "?flash=" + flash
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
