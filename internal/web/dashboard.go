package web

import (
	"net/http"

	"github.com/phrazzld/parky-api/internal/dto"
	"golang.org/x/sync/errgroup"
)

type dashboardPage struct {
	page
	ParkCount  int
	TrailCount int
}

// Dashboard renders GET /. Both lists are fetched concurrently.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var (
		parks  []dto.Park
		trails []dto.Trail
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		parks, err = h.parks.GetAll(ctx, h.api.Parks())
		return err
	})
	g.Go(func() error {
		var err error
		trails, err = h.trails.GetAll(ctx, h.api.Trails())
		return err
	})
	if err := g.Wait(); err != nil {
		h.apiUnavailable(w, r, err)
		return
	}

	data := dashboardPage{
		page:       page{Flash: flashFrom(r)},
		ParkCount:  len(parks),
		TrailCount: len(trails),
	}
	if parks == nil || trails == nil {
		data.Flash = flashMessages["load_failed"]
	}
	h.render(w, r, http.StatusOK, pageDashboard, data)
}
