package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/greenpatch/sprout/internal/domain"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SessionResponse is the envelope for both session endpoints. A
// rejected action comes back with OK false and Error carrying the
// player-facing reason; the HTTP status stays 200 because a rejection
// is a normal game outcome.
type SessionResponse struct {
	OK       bool              `json:"ok"`
	UserID   string            `json:"userId,omitempty"`
	Data     *domain.SaveState `json:"data,omitempty"`
	Error    string            `json:"error,omitempty"`
	RemainMs int64             `json:"remainMs,omitempty"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgNoSaveFound        = "No save found. Call /api/v1/me first."
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and
// a message safe to show the player. Verification failures and
// malformed requests keep their exact wire messages; anything
// unexpected collapses to a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingInitData),
		errors.Is(err, domain.ErrMissingSignature),
		errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrMissingUser),
		errors.Is(err, domain.ErrBadUserPayload),
		errors.Is(err, domain.ErrMissingUserID):
		return http.StatusUnauthorized, unwrapMessage(err)
	case errors.Is(err, domain.ErrUnknownCrop):
		return http.StatusBadRequest, domain.ErrMsgUnknownCrop
	case errors.Is(err, domain.ErrUnknownAction):
		return http.StatusBadRequest, domain.ErrMsgUnknownAction
	case errors.Is(err, domain.ErrInvalidSave):
		return http.StatusBadRequest, domain.ErrMsgInvalidSave
	case errors.Is(err, domain.ErrSaveNotFound):
		return http.StatusNotFound, ErrMsgNoSaveFound
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// unwrapMessage returns the innermost sentinel's message so wrapped
// context never leaks to the client.
func unwrapMessage(err error) string {
	for errors.Unwrap(err) != nil {
		err = errors.Unwrap(err)
	}
	return err.Error()
}
