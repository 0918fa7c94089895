package webclient

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/parky-api/internal/dto"
)

// API paths of the resources the web client manages.
const (
	ParksPath        = "/api/v1/parks"
	TrailsPath       = "/api/v1/trails"
	TrailsByParkPath = "/api/v1/trails/by-park"
)

// ParkRepository is the remote repository of parks.
type ParkRepository = Repository[dto.Park]

// TrailRepository is the remote repository of trails.
type TrailRepository = Repository[dto.Trail]

// NewParkRepository creates the remote park repository.
func NewParkRepository(client *http.Client, logger *slog.Logger) *ParkRepository {
	return NewRepository[dto.Park](client, logger)
}

// NewTrailRepository creates the remote trail repository.
func NewTrailRepository(client *http.Client, logger *slog.Logger) *TrailRepository {
	return NewRepository[dto.Trail](client, logger)
}

// Endpoint builds absolute API URLs from a base URL such as
// "http://localhost:8080".
type Endpoint string

// URL joins the base and path.
func (e Endpoint) URL(path string) string {
	return strings.TrimSuffix(string(e), "/") + path
}

// Parks is the park collection URL.
func (e Endpoint) Parks() string { return e.URL(ParksPath) }

// Trails is the trail collection URL.
func (e Endpoint) Trails() string { return e.URL(TrailsPath) }

// TrailsByPark is the collection URL of the trails of one park, for use with
// GetOne-style id joins.
func (e Endpoint) TrailsByPark() string { return e.URL(TrailsByParkPath) }
