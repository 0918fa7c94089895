package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/dto"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/store"
)

// TrailHandler handles trail-related HTTP requests.
type TrailHandler struct {
	trails store.TrailStore
	parks  store.ParkStore
	logger *slog.Logger
	now    func() time.Time
}

// NewTrailHandler creates a new TrailHandler. The park store is used to
// tell a missing park apart from a park without trails.
func NewTrailHandler(trails store.TrailStore, parks store.ParkStore, logger *slog.Logger) *TrailHandler {
	if trails == nil || parks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("trails and parks cannot be nil for TrailHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TrailHandler{
		trails: trails,
		parks:  parks,
		logger: logger.With(slog.String("component", "trail_handler")),
		now:    time.Now,
	}
}

// ListTrails handles GET /api/v1/trails requests.
func (h *TrailHandler) ListTrails(w http.ResponseWriter, r *http.Request) {
	trails, err := h.trails.List(r.Context())
	if err != nil {
		respondStoreError(w, r, "Failed to list trails", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dto.NewTrails(trails))
}

// ListTrailsInPark handles GET /api/v1/trails/by-park/{parkId} requests.
// It answers 404 only when the park itself does not exist.
func (h *TrailHandler) ListTrailsInPark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	parkID, ok := handlePathID(w, r, "parkId", log)
	if !ok {
		return
	}

	exists, err := h.parks.Exists(r.Context(), parkID)
	if err != nil {
		respondStoreError(w, r, "Failed to list trails", err)
		return
	}
	if !exists {
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(store.ErrParkNotFound))
		return
	}

	trails, err := h.trails.ListByPark(r.Context(), parkID)
	if err != nil {
		respondStoreError(w, r, "Failed to list trails", err)
		return
	}

	log.Debug("listed trails in park",
		slog.Int64("park_id", parkID),
		slog.Int("count", len(trails)))
	shared.RespondWithJSON(w, r, http.StatusOK, dto.NewTrails(trails))
}

// GetTrail handles GET /api/v1/trails/{id} requests.
func (h *TrailHandler) GetTrail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	trail, err := h.trails.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, "Failed to get trail", err)
		return
	}
	if trail == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(store.ErrTrailNotFound))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dto.NewTrail(trail))
}

// CreateTrail handles POST /api/v1/trails requests.
// A trail whose name matches an existing one, ignoring case and surrounding
// whitespace, is rejected with 404.
func (h *TrailHandler) CreateTrail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req dto.TrailCreate
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	exists, err := h.trails.ExistsByName(r.Context(), req.Name)
	if err != nil {
		respondStoreError(w, r, "Failed to create trail", err)
		return
	}
	if exists {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, "Trail already exists",
			fmt.Errorf("trail %q: %w", req.Name, store.ErrDuplicate), shared.WithElevatedLogLevel())
		return
	}

	trail := req.ToDomain(h.now())
	if err := trail.Validate(); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	if !h.trails.Create(r.Context(), trail) {
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Something went wrong while saving "+trail.Name)
		return
	}

	// Reload so the response embeds the owning park.
	created, err := h.trails.Get(r.Context(), trail.ID)
	if err != nil || created == nil {
		log.Warn("created trail could not be reloaded", slog.Int64("trail_id", trail.ID))
		created = trail
	}

	w.Header().Set("Location", locationFor(r, trail.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, dto.NewTrail(created))
}

// UpdateTrail handles PATCH /api/v1/trails/{id} requests.
func (h *TrailHandler) UpdateTrail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req dto.TrailUpdate
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	if req.ID != id {
		log.Debug("path and body ids differ",
			slog.Int64("path_id", id),
			slog.Int64("body_id", req.ID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Trail ID in path does not match body")
		return
	}

	trail := req.ToDomain()
	if err := trail.Validate(); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	if !h.trails.Update(r.Context(), trail) {
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Something went wrong while updating the record: "+trail.Name)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTrail handles DELETE /api/v1/trails/{id} requests.
func (h *TrailHandler) DeleteTrail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	exists, err := h.trails.Exists(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, "Failed to delete trail", err)
		return
	}
	if !exists {
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(store.ErrTrailNotFound))
		return
	}

	trail, err := h.trails.Get(r.Context(), id)
	if err != nil || trail == nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to delete trail", err)
		return
	}

	if !h.trails.Delete(r.Context(), trail) {
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Something went wrong while deleting the record: "+trail.Name)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
