package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/dto"
	"github.com/phrazzld/parky-api/internal/platform/logger"
)

type trailsPage struct {
	page
	Trails []dto.Trail
}

type trailFormPage struct {
	page
	Trail        dto.Trail
	Parks        []dto.Park
	Difficulties []string
	Error        string
}

func difficultyOptions() []string {
	out := make([]string, 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		out = append(out, string(d))
	}
	return out
}

// ListTrails renders GET /trails.
func (h *Handler) ListTrails(w http.ResponseWriter, r *http.Request) {
	trails, err := h.trails.GetAll(r.Context(), h.api.Trails())
	if err != nil {
		h.apiUnavailable(w, r, err)
		return
	}

	data := trailsPage{page: page{Flash: flashFrom(r)}, Trails: trails}
	if trails == nil {
		data.Flash = flashMessages["load_failed"]
	}
	h.render(w, r, http.StatusOK, pageTrails, data)
}

// TrailForm renders GET /trails/upsert with the parks to choose from.
func (h *Handler) TrailForm(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "id")
	if err != nil {
		h.render(w, r, http.StatusBadRequest, pageError, errorPage{Message: err.Error()})
		return
	}

	data, err := h.trailForm(r, dto.Trail{Difficulty: string(domain.DifficultyEasy)}, "")
	if err != nil {
		h.apiUnavailable(w, r, err)
		return
	}

	if id != 0 {
		trail, err := h.trails.GetOne(r.Context(), h.api.Trails(), id)
		if err != nil {
			h.apiUnavailable(w, r, err)
			return
		}
		if trail == nil {
			h.notFound(w, r, "Trail")
			return
		}
		data.Trail = *trail
	}

	h.render(w, r, http.StatusOK, pageTrailUpsert, data)
}

// UpsertTrail handles POST /trails/upsert.
func (h *Handler) UpsertTrail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	trail, formErr := trailFromForm(r)
	if formErr != nil {
		data, err := h.trailForm(r, trail, formErr.Error())
		if err != nil {
			h.apiUnavailable(w, r, err)
			return
		}
		h.render(w, r, http.StatusBadRequest, pageTrailUpsert, data)
		return
	}

	var (
		ok  bool
		err error
	)
	if trail.ID == 0 {
		ok, err = h.trails.Create(r.Context(), h.api.Trails(), dto.CreateFromTrail(trail))
	} else {
		ok, err = h.trails.Update(r.Context(), fmt.Sprintf("%s/%d", h.api.Trails(), trail.ID), dto.UpdateFromTrail(trail))
	}
	if err != nil {
		h.apiUnavailable(w, r, err)
		return
	}
	if !ok {
		log.Warn("api rejected trail", slog.Int64("trail_id", trail.ID), slog.String("name", trail.Name))
		data, err := h.trailForm(r, trail,
			"The trail could not be saved. Check that its name is unique and its park exists.")
		if err != nil {
			h.apiUnavailable(w, r, err)
			return
		}
		h.render(w, r, http.StatusUnprocessableEntity, pageTrailUpsert, data)
		return
	}

	redirect(w, r, "/trails", "saved")
}

// DeleteTrail handles POST /trails/{id}/delete.
func (h *Handler) DeleteTrail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w, r, "Trail")
		return
	}

	deleted, err := h.trails.Delete(r.Context(), h.api.Trails(), id)
	if err != nil {
		h.apiUnavailable(w, r, err)
		return
	}
	if !deleted {
		redirect(w, r, "/trails", "delete_failed")
		return
	}
	redirect(w, r, "/trails", "deleted")
}

// trailForm assembles the form page, loading the park choices.
func (h *Handler) trailForm(r *http.Request, trail dto.Trail, formErr string) (trailFormPage, error) {
	parks, err := h.parks.GetAll(r.Context(), h.api.Parks())
	if err != nil {
		return trailFormPage{}, err
	}
	return trailFormPage{
		Trail:        trail,
		Parks:        parks,
		Difficulties: difficultyOptions(),
		Error:        formErr,
	}, nil
}

func trailFromForm(r *http.Request) (dto.Trail, error) {
	var trail dto.Trail
	if err := parseForm(r); err != nil {
		return trail, fmt.Errorf("invalid form: %w", err)
	}

	trail.Name = strings.TrimSpace(r.FormValue("name"))
	trail.Difficulty = strings.TrimSpace(r.FormValue("difficulty"))

	var err error
	if trail.ID, err = formID(r, "id"); err != nil {
		return trail, err
	}
	if trail.ParkID, err = formID(r, "park_id"); err != nil {
		return trail, err
	}
	if trail.Distance, err = formFloat(r, "distance"); err != nil {
		return trail, err
	}
	if trail.Elevation, err = formFloat(r, "elevation"); err != nil {
		return trail, err
	}

	if trail.Name == "" {
		return trail, fmt.Errorf("name is required")
	}
	if trail.ParkID == 0 {
		return trail, fmt.Errorf("park is required")
	}
	difficulty, err := domain.ParseDifficulty(trail.Difficulty)
	if err != nil {
		return trail, fmt.Errorf("difficulty must be one of easy, moderate, difficult, expert")
	}
	trail.Difficulty = string(difficulty)
	return trail, nil
}
