package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/parky-api/internal/dto"
	"github.com/phrazzld/parky-api/internal/platform/logger"
)

type parksPage struct {
	page
	Parks []dto.Park
}

type parkFormPage struct {
	page
	Park  dto.Park
	Error string
}

// ListParks renders GET /parks.
func (h *Handler) ListParks(w http.ResponseWriter, r *http.Request) {
	parks, err := h.parks.GetAll(r.Context(), h.api.Parks())
	if err != nil {
		h.apiUnavailable(w, r, err)
		return
	}

	data := parksPage{page: page{Flash: flashFrom(r)}, Parks: parks}
	if parks == nil {
		data.Flash = flashMessages["load_failed"]
	}
	h.render(w, r, http.StatusOK, pageParks, data)
}

// ParkForm renders GET /parks/upsert. Without an id the form creates a
// park; with one it edits the existing park.
func (h *Handler) ParkForm(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r, "id")
	if err != nil {
		h.render(w, r, http.StatusBadRequest, pageError, errorPage{Message: err.Error()})
		return
	}

	data := parkFormPage{}
	if id != 0 {
		park, err := h.parks.GetOne(r.Context(), h.api.Parks(), id)
		if err != nil {
			h.apiUnavailable(w, r, err)
			return
		}
		if park == nil {
			h.notFound(w, r, "Park")
			return
		}
		data.Park = *park
	}

	h.render(w, r, http.StatusOK, pageParkUpsert, data)
}

// UpsertPark handles POST /parks/upsert. A new picture replaces the old
// one; when none is uploaded an edited park keeps its current picture.
func (h *Handler) UpsertPark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	park, err := parkFromForm(r)
	if err != nil {
		h.render(w, r, http.StatusBadRequest, pageParkUpsert, parkFormPage{Park: park, Error: err.Error()})
		return
	}

	if park.ID != 0 && park.Picture == nil {
		existing, err := h.parks.GetOne(r.Context(), h.api.Parks(), park.ID)
		if err != nil {
			h.apiUnavailable(w, r, err)
			return
		}
		if existing == nil {
			h.notFound(w, r, "Park")
			return
		}
		park.Picture = existing.Picture
	}

	var ok bool
	if park.ID == 0 {
		ok, err = h.parks.Create(r.Context(), h.api.Parks(), dto.CreateFromPark(park))
	} else {
		ok, err = h.parks.Update(r.Context(), fmt.Sprintf("%s/%d", h.api.Parks(), park.ID), dto.UpdateFromPark(park))
	}
	if err != nil {
		h.apiUnavailable(w, r, err)
		return
	}
	if !ok {
		log.Warn("api rejected park", slog.Int64("park_id", park.ID), slog.String("name", park.Name))
		h.render(w, r, http.StatusUnprocessableEntity, pageParkUpsert, parkFormPage{
			Park:  park,
			Error: "The park could not be saved. Check that its name is unique and all fields are filled in.",
		})
		return
	}

	redirect(w, r, "/parks", "saved")
}

// DeletePark handles POST /parks/{id}/delete.
func (h *Handler) DeletePark(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w, r, "Park")
		return
	}

	deleted, err := h.parks.Delete(r.Context(), h.api.Parks(), id)
	if err != nil {
		h.apiUnavailable(w, r, err)
		return
	}
	if !deleted {
		redirect(w, r, "/parks", "delete_failed")
		return
	}
	redirect(w, r, "/parks", "deleted")
}

func parkFromForm(r *http.Request) (dto.Park, error) {
	var park dto.Park
	if err := parseForm(r); err != nil {
		return park, fmt.Errorf("invalid form: %w", err)
	}

	park.Name = strings.TrimSpace(r.FormValue("name"))
	park.State = strings.TrimSpace(r.FormValue("state"))

	var err error
	if park.ID, err = formID(r, "id"); err != nil {
		return park, err
	}
	if park.Established, err = formDate(r, "established"); err != nil {
		return park, err
	}
	if park.Picture, err = formFile(r, "picture"); err != nil {
		return park, err
	}
	if park.Name == "" || park.State == "" {
		return park, fmt.Errorf("name and state are required")
	}
	return park, nil
}
