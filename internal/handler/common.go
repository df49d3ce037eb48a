// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/tracehq/trace/internal/auth"
	"github.com/tracehq/trace/internal/domain"
	"github.com/tracehq/trace/internal/middleware"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// caller pulls the authenticated identity or writes a 401.
func caller(w http.ResponseWriter, r *http.Request) (auth.Context, bool) {
	c, ok := middleware.Caller(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
	}
	return c, ok
}

// pathUUID parses a chi URL parameter as a UUID or writes a 400.
func pathUUID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id in path")
		return uuid.Nil, false
	}
	return id, true
}

// respondWithServiceError maps domain sentinels to HTTP statuses. Every
// handler funnels service errors through here so the taxonomy stays in
// one place.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidRole):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrLastAdmin):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNoMembership):
		respondWithError(w, http.StatusForbidden, "You are not in an organization")
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrMembershipNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrColumnNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrSprintNotFound),
		errors.Is(err, domain.ErrInvitationNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyInvited):
		respondWithError(w, http.StatusConflict, "User already invited.")
	case errors.Is(err, domain.ErrActiveSprintExists),
		errors.Is(err, domain.ErrInvalidSprintState),
		errors.Is(err, domain.ErrColumnMismatch),
		errors.Is(err, domain.ErrSprintMismatch),
		errors.Is(err, domain.ErrSlugTaken):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
