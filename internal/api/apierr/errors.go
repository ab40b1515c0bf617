package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gspiers/buzzbingo/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidPosition = "INVALID_POSITION"
	CodeSessionNotFound = "SESSION_NOT_FOUND"
	CodePoolTooSmall    = "POOL_TOO_SMALL"
	CodePoolNotLoaded   = "POOL_NOT_LOADED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrPoolTooSmall):
		return &httpError{http.StatusConflict, APIError{CodePoolTooSmall, "Phrase pool needs at least 24 unique phrases"}}
	case errors.Is(err, model.ErrPoolNotLoaded):
		return &httpError{http.StatusConflict, APIError{CodePoolNotLoaded, "Phrase pool not loaded"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Position must be within the 5x5 grid"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInvalidPositionError creates an invalid position error
func NewInvalidPositionError() error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Position must be within the 5x5 grid"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
