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

// ParkHandler handles park-related HTTP requests.
type ParkHandler struct {
	parks  store.ParkStore
	logger *slog.Logger
	now    func() time.Time
}

// NewParkHandler creates a new ParkHandler.
func NewParkHandler(parks store.ParkStore, logger *slog.Logger) *ParkHandler {
	if parks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("parks cannot be nil for ParkHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ParkHandler{
		parks:  parks,
		logger: logger.With(slog.String("component", "park_handler")),
		now:    time.Now,
	}
}

// ListParks handles GET /api/v1/parks requests.
func (h *ParkHandler) ListParks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	parks, err := h.parks.List(r.Context())
	if err != nil {
		respondStoreError(w, r, "Failed to list parks", err)
		return
	}

	log.Debug("listed parks", slog.Int("count", len(parks)))
	shared.RespondWithJSON(w, r, http.StatusOK, dto.NewParks(parks))
}

// FirstPark handles GET /api/v2/parks requests: only the first park in name
// order is returned, or 204 when there are none.
func (h *ParkHandler) FirstPark(w http.ResponseWriter, r *http.Request) {
	park, err := h.parks.First(r.Context())
	if err != nil {
		respondStoreError(w, r, "Failed to get park", err)
		return
	}

	if park == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dto.NewPark(park))
}

// GetPark handles GET /api/v1/parks/{id} requests.
func (h *ParkHandler) GetPark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	park, err := h.parks.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, "Failed to get park", err)
		return
	}
	if park == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(store.ErrParkNotFound))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dto.NewPark(park))
}

// CreatePark handles POST /api/v1/parks requests.
// A park whose name matches an existing one, ignoring case and surrounding
// whitespace, is rejected with 404.
func (h *ParkHandler) CreatePark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req dto.ParkCreate
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	exists, err := h.parks.ExistsByName(r.Context(), req.Name)
	if err != nil {
		respondStoreError(w, r, "Failed to create park", err)
		return
	}
	if exists {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, "Park already exists",
			fmt.Errorf("park %q: %w", req.Name, store.ErrDuplicate), shared.WithElevatedLogLevel())
		return
	}

	park := req.ToDomain(h.now())
	if err := park.Validate(); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	if !h.parks.Create(r.Context(), park) {
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Something went wrong while saving "+park.Name)
		return
	}

	w.Header().Set("Location", locationFor(r, park.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, dto.NewPark(park))
}

// UpdatePark handles PATCH /api/v1/parks/{id} requests.
func (h *ParkHandler) UpdatePark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req dto.ParkUpdate
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	if req.ID != id {
		log.Debug("path and body ids differ",
			slog.Int64("path_id", id),
			slog.Int64("body_id", req.ID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Park ID in path does not match body")
		return
	}

	park := req.ToDomain()
	if err := park.Validate(); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	if !h.parks.Update(r.Context(), park) {
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Something went wrong while updating the record: "+park.Name)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeletePark handles DELETE /api/v1/parks/{id} requests.
func (h *ParkHandler) DeletePark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	exists, err := h.parks.Exists(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, "Failed to delete park", err)
		return
	}
	if !exists {
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(store.ErrParkNotFound))
		return
	}

	park, err := h.parks.Get(r.Context(), id)
	if err != nil || park == nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to delete park", err)
		return
	}

	if !h.parks.Delete(r.Context(), park) {
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Something went wrong while deleting the record: "+park.Name)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
