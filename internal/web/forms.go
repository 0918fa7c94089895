package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// dateLayout is the format of HTML date inputs.
const dateLayout = "2006-01-02"

// maxPictureBytes bounds uploaded park pictures.
const maxPictureBytes = 5 << 20

// parseForm accepts both multipart and urlencoded bodies.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxPictureBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// formID returns the optional id field; zero means create.
func formID(r *http.Request, field string) (int64, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s %q", field, raw)
	}
	return id, nil
}

func formFloat(r *http.Request, field string) (float64, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, raw)
	}
	return v, nil
}

func formDate(r *http.Request, field string) (time.Time, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q", field, raw)
	}
	return t, nil
}

// pathID returns the positive {id} route parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// formFile returns the uploaded file content, or nil when no file was sent.
func formFile(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxPictureBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}
	if len(data) > maxPictureBytes {
		return nil, fmt.Errorf("%s is larger than %d bytes", field, maxPictureBytes)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}
