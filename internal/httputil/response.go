package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/bookreview/review-server-go/internal/errors"
)

// WriteJSON encodes data as UTF-8 JSON. HTML escaping is off so review and
// book text round-trips byte for byte.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by updates.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned by inserts.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// WriteError writes err in the error envelope. AppErrors map to their status;
// anything else is a 500 carrying the raw error text.
func WriteError(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		log.Error().Err(err).Msg("unhandled error")
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	WriteJSON(w, statusFromCode(appErr.Code), ErrorResponse{Error: appErr.Message})
}

// statusFromCode maps ErrorCode to HTTP status code
func statusFromCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeValidation,
		apperrors.ErrCodeInvalidInput:
		return http.StatusBadRequest

	case apperrors.ErrCodeUnauthorized,
		apperrors.ErrCodeSessionExpired:
		return http.StatusUnauthorized

	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound

	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed

	default:
		return http.StatusInternalServerError
	}
}
