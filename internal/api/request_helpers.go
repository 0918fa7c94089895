package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/redact"
)

// getPathID extracts a positive integer identifier from the URL path
// parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathID is getPathID that writes a 400 response on failure.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string, log *slog.Logger) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		log.Debug("invalid path identifier",
			slog.String("param", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return 0, false
	}
	return id, true
}

// decodeAndValidate parses the JSON body into req and validates it,
// writing a 400 response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		log.Debug("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}

// locationFor returns the get-by-id URL of a resource created by a POST to
// the collection path of r.
func locationFor(r *http.Request, id int64) string {
	return fmt.Sprintf("%s/%d", strings.TrimSuffix(r.URL.Path, "/"), id)
}
