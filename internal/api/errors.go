package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/citecheck/internal/api/shared"
)

// Request-level errors.
var (
	// ErrBatchTooLarge is returned when a batch exceeds the configured size.
	ErrBatchTooLarge = errors.New("batch too large")

	// ErrInvalidDetailParam is returned for an unparseable detail query parameter.
	ErrInvalidDetailParam = errors.New("invalid detail parameter")
)

// MapErrorToStatusCode maps request errors to HTTP status codes. Anything
// unrecognized is an internal fault.
func MapErrorToStatusCode(err error) int {
	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		maxBytesErr *http.MaxBytesError
		validation  validator.ValidationErrors
	)

	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.As(err, &validation),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, shared.ErrTrailingData),
		errors.Is(err, ErrBatchTooLarge),
		errors.Is(err, ErrInvalidDetailParam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that does not
// leak internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var (
		maxBytesErr *http.MaxBytesError
		validation  validator.ValidationErrors
	)

	switch {
	case errors.As(err, &maxBytesErr):
		return fmt.Sprintf("Request body exceeds %d bytes", maxBytesErr.Limit)
	case errors.As(err, &validation):
		return SanitizeValidationError(err)
	case errors.Is(err, ErrBatchTooLarge):
		return "Too many citations in batch"
	case errors.Is(err, ErrInvalidDetailParam):
		return "Invalid detail parameter"
	case MapErrorToStatusCode(err) == http.StatusBadRequest:
		return "Invalid request format"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a short message
// naming the first offending field.
func SanitizeValidationError(err error) string {
	var validation validator.ValidationErrors
	if !errors.As(err, &validation) || len(validation) == 0 {
		return "Validation error"
	}

	fe := validation[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// respondWithRequestError writes the status and safe message for err.
func respondWithRequestError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
