package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/dto"
	"github.com/phrazzld/parky-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrailFixture() (*mocks.MockParkStore, *mocks.MockTrailStore) {
	parks := mocks.NewMockParkStore(seedPark(1, "Zion"), seedPark(2, "Arches"))
	trails := mocks.NewMockTrailStore(parks,
		seedTrail(10, "The Narrows", 1),
		seedTrail(11, "Angels Landing", 1),
		seedTrail(12, "Delicate Arch", 2),
	)
	return parks, trails
}

func TestNewTrailHandler_NilStoresPanic(t *testing.T) {
	parks := mocks.NewMockParkStore()
	assert.Panics(t, func() { NewTrailHandler(nil, parks, nil) })
	assert.Panics(t, func() { NewTrailHandler(mocks.NewMockTrailStore(parks), nil, nil) })
}

func TestListTrails(t *testing.T) {
	parks, trails := newTrailFixture()
	router := newTestRouter(parks, trails)

	rr := doRequest(t, router, http.MethodGet, "/api/v1/trails", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []dto.Trail
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Len(t, got, 3)
	assert.Equal(t, "Angels Landing", got[0].Name)
	require.NotNil(t, got[0].Park)
	assert.Equal(t, "Zion", got[0].Park.Name)
	assert.Equal(t, "difficult", got[0].Difficulty)
}

func TestListTrailsInPark(t *testing.T) {
	t.Run("trails of one park", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		rr := doRequest(t, router, http.MethodGet, "/api/v1/trails/by-park/1", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []dto.Trail
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got, 2)
		for _, trail := range got {
			assert.Equal(t, int64(1), trail.ParkID)
		}
	})

	t.Run("park without trails returns empty array", func(t *testing.T) {
		parks, trails := newTrailFixture()
		require.True(t, parks.Create(context.Background(), seedPark(0, "Bryce Canyon")))
		router := newTestRouter(parks, trails)

		rr := doRequest(t, router, http.MethodGet, "/api/v1/trails/by-park/3", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("unknown park returns 404", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		rr := doRequest(t, router, http.MethodGet, "/api/v1/trails/by-park/42", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Park not found", decodeError(t, rr).Error)
		assert.Equal(t, 0, trails.Calls("ListByPark"))
	})
}

func TestGetTrail(t *testing.T) {
	parks, trails := newTrailFixture()
	router := newTestRouter(parks, trails)

	t.Run("existing trail embeds its park", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/v1/trails/12", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		var got dto.Trail
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "Delicate Arch", got.Name)
		require.NotNil(t, got.Park)
		assert.Equal(t, int64(2), got.Park.ID)
	})

	t.Run("missing trail returns 404", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodGet, "/api/v1/trails/99", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Trail not found", decodeError(t, rr).Error)
	})

	t.Run("store error returns 500", func(t *testing.T) {
		parks, trails := newTrailFixture()
		trails.GetFn = func(ctx context.Context, id int64) (*domain.Trail, error) {
			return nil, errors.New("timeout")
		}
		rr := doRequest(t, newTestRouter(parks, trails), http.MethodGet, "/api/v1/trails/10", nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestCreateTrail(t *testing.T) {
	valid := dto.TrailCreate{
		Name:       "Observation Point",
		Distance:   8,
		Elevation:  2148,
		Difficulty: "expert",
		ParkID:     1,
	}

	t.Run("created with embedded park", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		rr := doRequest(t, router, http.MethodPost, "/api/v1/trails", valid)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "/api/v1/trails/13", rr.Header().Get("Location"))
		var got dto.Trail
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(13), got.ID)
		assert.True(t, got.Created.Equal(fixedNow))
		require.NotNil(t, got.Park)
		assert.Equal(t, "Zion", got.Park.Name)
	})

	t.Run("duplicate name returns 404", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		dup := valid
		dup.Name = "THE NARROWS"
		rr := doRequest(t, router, http.MethodPost, "/api/v1/trails", dup)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Trail already exists", decodeError(t, rr).Error)
		assert.Equal(t, 3, trails.Len())
	})

	t.Run("invalid difficulty returns 400", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		bad := valid
		bad.Difficulty = "impossible"
		rr := doRequest(t, router, http.MethodPost, "/api/v1/trails", bad)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid Difficulty: invalid value", decodeError(t, rr).Error)
	})

	t.Run("negative distance returns 400", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		bad := valid
		bad.Distance = -1
		rr := doRequest(t, router, http.MethodPost, "/api/v1/trails", bad)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown park fails to save", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		orphan := valid
		orphan.ParkID = 42
		rr := doRequest(t, router, http.MethodPost, "/api/v1/trails", orphan)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Something went wrong while saving Observation Point", decodeError(t, rr).Error)
	})
}

func TestUpdateTrail(t *testing.T) {
	update := dto.TrailUpdate{
		ID:         10,
		Name:       "The Narrows Top-Down",
		Distance:   26,
		Elevation:  100,
		Difficulty: "expert",
		ParkID:     1,
	}

	t.Run("updates and returns 204", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		rr := doRequest(t, router, http.MethodPatch, "/api/v1/trails/10", update)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		got, err := trails.Get(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, "The Narrows Top-Down", got.Name)
		assert.Equal(t, domain.DifficultyExpert, got.Difficulty)
	})

	t.Run("id mismatch returns 400", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		rr := doRequest(t, router, http.MethodPatch, "/api/v1/trails/11", update)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Trail ID in path does not match body", decodeError(t, rr).Error)
	})

	t.Run("failed update returns 500", func(t *testing.T) {
		parks, trails := newTrailFixture()
		trails.UpdateFn = func(ctx context.Context, trail *domain.Trail) bool { return false }
		router := newTestRouter(parks, trails)

		rr := doRequest(t, router, http.MethodPatch, "/api/v1/trails/10", update)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestDeleteTrail(t *testing.T) {
	t.Run("deletes and returns 204", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		rr := doRequest(t, router, http.MethodDelete, "/api/v1/trails/11", nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, 2, trails.Len())
	})

	t.Run("missing trail returns 404", func(t *testing.T) {
		parks, trails := newTrailFixture()
		router := newTestRouter(parks, trails)

		rr := doRequest(t, router, http.MethodDelete, "/api/v1/trails/99", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, 0, trails.Calls("Delete"))
	})

	t.Run("failed delete returns 500", func(t *testing.T) {
		parks, trails := newTrailFixture()
		trails.DeleteFn = func(ctx context.Context, trail *domain.Trail) bool { return false }
		router := newTestRouter(parks, trails)

		rr := doRequest(t, router, http.MethodDelete, "/api/v1/trails/11", nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Something went wrong while deleting the record: Angels Landing", decodeError(t, rr).Error)
	})
}
