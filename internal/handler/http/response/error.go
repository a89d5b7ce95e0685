package response

import (
	"errors"
	"net/http"

	"github.com/attendly/attendance-gateway-go/internal/domain/auth"
	"github.com/attendly/attendance-gateway-go/internal/domain/history"
	"github.com/attendly/attendance-gateway-go/internal/domain/note"
	"github.com/attendly/attendance-gateway-go/internal/domain/profile"
	"github.com/attendly/attendance-gateway-go/internal/pkg/upstream"
	"github.com/attendly/attendance-gateway-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Backend-reported errors keep their message; the original status code
	// is collapsed into a 502 because the client only talks to the gateway.
	var upstreamErr *upstream.Error
	if errors.As(err, &upstreamErr) {
		if upstreamErr.Status == http.StatusUnauthorized {
			Unauthorized(w, upstreamErr.Msg)
			return
		}
		BadGateway(w, upstreamErr.Msg)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPIN):
		Unauthorized(w, "PIN did not match any registered user")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAlreadyRegistered):
		Conflict(w, "Employee is already registered on this device")
	case errors.Is(err, auth.ErrUserNotRegistered):
		NotFound(w, "Employee is not registered on this device")
	case errors.Is(err, auth.ErrNoRegisteredUsers):
		NotFound(w, "No registered users on this device")

	// History domain errors
	case errors.Is(err, history.ErrDayNotFound):
		NotFound(w, "No record for this date")

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Employee profile not found")
	case errors.Is(err, profile.ErrPhotoNotFound):
		NotFound(w, "No photo for this employee")

	// Note domain errors
	case errors.Is(err, note.ErrNoteNotFound):
		NotFound(w, "No note for this date")

	// Transport failures talking to the backend
	case errors.Is(err, upstream.ErrConnectionFailed):
		ServiceUnavailable(w, "Could not reach the attendance backend")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
