package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/mocks"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func seedPark(id int64, name string) *domain.Park {
	return &domain.Park{
		ID:          id,
		Name:        name,
		State:       "UT",
		Picture:     []byte{1, 2, 3},
		CreatedAt:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Established: time.Date(1919, 11, 19, 0, 0, 0, 0, time.UTC),
	}
}

func seedTrail(id int64, name string, parkID int64) *domain.Trail {
	return &domain.Trail{
		ID:         id,
		Name:       name,
		Distance:   5.4,
		Elevation:  1488,
		Difficulty: domain.DifficultyDifficult,
		CreatedAt:  time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
		ParkID:     parkID,
	}
}

// newTestRouter mounts the park and trail handlers the way the server does.
func newTestRouter(parks *mocks.MockParkStore, trails *mocks.MockTrailStore) http.Handler {
	ph := NewParkHandler(parks, nil)
	ph.now = func() time.Time { return fixedNow }
	th := NewTrailHandler(trails, parks, nil)
	th.now = func() time.Time { return fixedNow }

	r := chi.NewRouter()
	r.Route("/api/v1/parks", func(r chi.Router) {
		r.Get("/", ph.ListParks)
		r.Post("/", ph.CreatePark)
		r.Get("/{id}", ph.GetPark)
		r.Patch("/{id}", ph.UpdatePark)
		r.Delete("/{id}", ph.DeletePark)
	})
	r.Get("/api/v2/parks", ph.FirstPark)
	r.Route("/api/v1/trails", func(r chi.Router) {
		r.Get("/", th.ListTrails)
		r.Post("/", th.CreateTrail)
		r.Get("/by-park/{parkId}", th.ListTrailsInPark)
		r.Get("/{id}", th.GetTrail)
		r.Patch("/{id}", th.UpdateTrail)
		r.Delete("/{id}", th.DeleteTrail)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}
