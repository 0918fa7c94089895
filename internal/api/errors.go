package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/domain"
	"github.com/phrazzld/parky-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Duplicate names answer 404, matching the established API contract.
	case store.IsNotFoundError(err), store.IsDuplicateError(err):
		return http.StatusNotFound

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidDifficulty):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// respondStoreError answers a failed store read with the status its error
// maps to. message is what the client sees.
func respondStoreError(w http.ResponseWriter, r *http.Request, message string, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), message, err)
}

// GetSafeErrorMessage returns a user-facing message for err that reveals no
// internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrParkNotFound):
		return "Park not found"
	case errors.Is(err, store.ErrTrailNotFound):
		return "Trail not found"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"
	case errors.Is(err, store.ErrDuplicate):
		return "Name already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("Invalid %s: %s", verr.Field, verr.Message)
	}

	return "An unexpected error occurred"
}

// SanitizeValidationError turns a validator error into a short message
// naming the first failing field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	var derr *domain.ValidationError
	if errors.As(err, &derr) {
		return fmt.Sprintf("Invalid %s: %s", derr.Field, derr.Message)
	}

	// Fall back to parsing the validator text format:
	// "Key: 'ParkCreate.Name' Error:Field validation for 'Name' failed on the 'required' tag"
	errMsg := err.Error()
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 5 {
				return fmt.Sprintf("Invalid %s: %s", fieldParts[1], getValidationTagMessage(fieldParts[3]))
			}
			if len(fieldParts) >= 3 {
				return fmt.Sprintf("Invalid %s", fieldParts[1])
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gt", "gte":
		return "too small"
	case "max", "lt", "lte":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
