package webclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/phrazzld/parky-api/internal/redact"
)

// RequestIDHeader carries a per-call correlation id to the API.
const RequestIDHeader = "X-Request-ID"

// Repository performs CRUD calls against one API resource whose read shape
// is T. Writes send whatever payload shape the endpoint expects.
type Repository[T any] struct {
	client *http.Client
	logger *slog.Logger
}

// NewRepository creates a Repository using client. A nil client falls back
// to http.DefaultClient.
func NewRepository[T any](client *http.Client, logger *slog.Logger) *Repository[T] {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository[T]{
		client: client,
		logger: logger.With(slog.String("component", "webclient")),
	}
}

// GetOne fetches the resource at url/id. It returns nil without error when
// the API answers anything other than 200.
func (r *Repository[T]) GetOne(ctx context.Context, url string, id int64) (*T, error) {
	resp, err := r.do(ctx, http.MethodGet, resourceURL(url, id), nil)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return &out, nil
}

// GetAll fetches every resource at url. It returns nil without error when
// the API answers anything other than 200.
func (r *Repository[T]) GetAll(ctx context.Context, url string) ([]T, error) {
	resp, err := r.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	out := []T{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return out, nil
}

// Create POSTs body to url and reports whether the API answered 201.
func (r *Repository[T]) Create(ctx context.Context, url string, body any) (bool, error) {
	return r.send(ctx, http.MethodPost, url, body, http.StatusCreated)
}

// Update PATCHes body to url and reports whether the API answered 204.
// url must already name the resource.
func (r *Repository[T]) Update(ctx context.Context, url string, body any) (bool, error) {
	return r.send(ctx, http.MethodPatch, url, body, http.StatusNoContent)
}

// Delete removes the resource at url/id and reports whether the API
// answered 204.
func (r *Repository[T]) Delete(ctx context.Context, url string, id int64) (bool, error) {
	resp, err := r.do(ctx, http.MethodDelete, resourceURL(url, id), nil)
	if err != nil {
		return false, err
	}
	defer drain(resp)

	return resp.StatusCode == http.StatusNoContent, nil
}

func (r *Repository[T]) send(ctx context.Context, method, url string, body any, want int) (bool, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return false, fmt.Errorf("failed to encode request body: %w", err)
	}

	resp, err := r.do(ctx, method, url, payload)
	if err != nil {
		return false, err
	}
	defer drain(resp)

	return resp.StatusCode == want, nil
}

func (r *Repository[T]) do(ctx context.Context, method, url string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request for %s: %w", method, url, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.New().String()
	req.Header.Set(RequestIDHeader, requestID)

	log := logger.FromContextOrDefault(ctx, r.logger).With(
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("url", url),
	)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Error("api request failed", slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}

	log.Debug("api request completed", slog.Int("status", resp.StatusCode))
	return resp, nil
}

// resourceURL joins a collection url and an id.
func resourceURL(url string, id int64) string {
	return fmt.Sprintf("%s/%d", strings.TrimSuffix(url, "/"), id)
}

// drain lets the transport reuse the connection.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
