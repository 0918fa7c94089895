package webclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/parky-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the fake API received.
type recordedRequest struct {
	Method    string
	Path      string
	Body      string
	RequestID string
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newFakeAPI(t *testing.T, status int, body string) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{status: status, body: body}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		api.mu.Lock()
		api.requests = append(api.requests, recordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      string(data),
			RequestID: r.Header.Get(RequestIDHeader),
		})
		api.mu.Unlock()

		if api.body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(api.status)
		_, _ = io.WriteString(w, api.body)
	}))
	t.Cleanup(srv.Close)
	return api, srv
}

func (f *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func TestGetOne(t *testing.T) {
	t.Run("200 decodes the body", func(t *testing.T) {
		api, srv := newFakeAPI(t, http.StatusOK, `{"id":3,"name":"Zion","state":"UT","created":"2020-01-01T00:00:00Z","established":"1919-11-19T00:00:00Z"}`)
		repo := NewParkRepository(srv.Client(), nil)

		park, err := repo.GetOne(context.Background(), Endpoint(srv.URL).Parks(), 3)

		require.NoError(t, err)
		require.NotNil(t, park)
		assert.Equal(t, int64(3), park.ID)
		assert.Equal(t, "Zion", park.Name)

		req := api.last(t)
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/api/v1/parks/3", req.Path)
		_, err = uuid.Parse(req.RequestID)
		assert.NoError(t, err, "request id should be a uuid")
	})

	t.Run("404 yields nil", func(t *testing.T) {
		_, srv := newFakeAPI(t, http.StatusNotFound, `{"error":"Park not found"}`)
		repo := NewParkRepository(srv.Client(), nil)

		park, err := repo.GetOne(context.Background(), Endpoint(srv.URL).Parks(), 3)

		require.NoError(t, err)
		assert.Nil(t, park)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		_, srv := newFakeAPI(t, http.StatusOK, `{"id":`)
		repo := NewParkRepository(srv.Client(), nil)

		_, err := repo.GetOne(context.Background(), Endpoint(srv.URL).Parks(), 3)

		assert.Error(t, err)
	})
}

func TestGetAll(t *testing.T) {
	t.Run("200 decodes the list", func(t *testing.T) {
		_, srv := newFakeAPI(t, http.StatusOK, `[{"id":1,"name":"Angels Landing","difficulty":"difficult","park_id":2,"park":{"id":2,"name":"Zion"}}]`)
		repo := NewTrailRepository(srv.Client(), nil)

		trails, err := repo.GetAll(context.Background(), Endpoint(srv.URL).Trails())

		require.NoError(t, err)
		require.Len(t, trails, 1)
		assert.Equal(t, "Angels Landing", trails[0].Name)
		require.NotNil(t, trails[0].Park)
		assert.Equal(t, "Zion", trails[0].Park.Name)
	})

	t.Run("empty array is not nil", func(t *testing.T) {
		_, srv := newFakeAPI(t, http.StatusOK, `[]`)
		repo := NewTrailRepository(srv.Client(), nil)

		trails, err := repo.GetAll(context.Background(), Endpoint(srv.URL).Trails())

		require.NoError(t, err)
		assert.NotNil(t, trails)
		assert.Empty(t, trails)
	})

	t.Run("non 200 yields nil", func(t *testing.T) {
		_, srv := newFakeAPI(t, http.StatusInternalServerError, `{"error":"boom"}`)
		repo := NewTrailRepository(srv.Client(), nil)

		trails, err := repo.GetAll(context.Background(), Endpoint(srv.URL).Trails())

		require.NoError(t, err)
		assert.Nil(t, trails)
	})
}

func TestCreate(t *testing.T) {
	park := dto.Park{Name: "Arches", State: "UT", Established: time.Date(1971, 11, 12, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"201 is success", http.StatusCreated, true},
		{"200 is not success", http.StatusOK, false},
		{"404 duplicate", http.StatusNotFound, false},
		{"400 invalid", http.StatusBadRequest, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api, srv := newFakeAPI(t, tc.status, "")
			repo := NewParkRepository(srv.Client(), nil)

			ok, err := repo.Create(context.Background(), Endpoint(srv.URL).Parks(), dto.CreateFromPark(park))

			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)

			req := api.last(t)
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/api/v1/parks", req.Path)
			var sent map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(req.Body), &sent))
			assert.Equal(t, "Arches", sent["name"])
			assert.NotContains(t, sent, "id", "create payload carries no id")
			assert.NotContains(t, sent, "created", "unset creation time is omitted")
		})
	}
}

func TestUpdate(t *testing.T) {
	trail := dto.Trail{ID: 4, Name: "Delicate Arch", Difficulty: "moderate", ParkID: 1}

	t.Run("204 is success and uses PATCH", func(t *testing.T) {
		api, srv := newFakeAPI(t, http.StatusNoContent, "")
		repo := NewTrailRepository(srv.Client(), nil)

		ok, err := repo.Update(context.Background(), Endpoint(srv.URL).Trails()+"/4", dto.UpdateFromTrail(trail))

		require.NoError(t, err)
		assert.True(t, ok)
		req := api.last(t)
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/api/v1/trails/4", req.Path)
		var sent dto.TrailUpdate
		require.NoError(t, json.Unmarshal([]byte(req.Body), &sent))
		assert.Equal(t, int64(4), sent.ID)
		assert.Equal(t, int64(1), sent.ParkID)
	})

	t.Run("200 is not success", func(t *testing.T) {
		_, srv := newFakeAPI(t, http.StatusOK, "")
		repo := NewTrailRepository(srv.Client(), nil)

		ok, err := repo.Update(context.Background(), Endpoint(srv.URL).Trails()+"/4", trail)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestDelete(t *testing.T) {
	t.Run("204 is success", func(t *testing.T) {
		api, srv := newFakeAPI(t, http.StatusNoContent, "")
		repo := NewParkRepository(srv.Client(), nil)

		ok, err := repo.Delete(context.Background(), Endpoint(srv.URL).Parks(), 9)

		require.NoError(t, err)
		assert.True(t, ok)
		req := api.last(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/api/v1/parks/9", req.Path)
	})

	t.Run("404 is not success", func(t *testing.T) {
		_, srv := newFakeAPI(t, http.StatusNotFound, `{"error":"Park not found"}`)
		repo := NewParkRepository(srv.Client(), nil)

		ok, err := repo.Delete(context.Background(), Endpoint(srv.URL).Parks(), 9)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestTransportErrors(t *testing.T) {
	_, srv := newFakeAPI(t, http.StatusOK, `[]`)
	url := Endpoint(srv.URL).Parks()
	srv.Close()

	repo := NewParkRepository(srv.Client(), nil)
	ctx := context.Background()

	_, err := repo.GetAll(ctx, url)
	assert.Error(t, err)

	_, err = repo.GetOne(ctx, url, 1)
	assert.Error(t, err)

	ok, err := repo.Create(ctx, url, dto.Park{Name: "x"})
	assert.Error(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, url, 1)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCanceledContext(t *testing.T) {
	_, srv := newFakeAPI(t, http.StatusOK, `[]`)
	repo := NewParkRepository(srv.Client(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetAll(ctx, Endpoint(srv.URL).Parks())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEndpoint(t *testing.T) {
	e := Endpoint("http://api.local:8080/")
	assert.Equal(t, "http://api.local:8080/api/v1/parks", e.Parks())
	assert.Equal(t, "http://api.local:8080/api/v1/trails", e.Trails())
	assert.Equal(t, "http://api.local:8080/api/v1/trails/by-park", e.TrailsByPark())
}
