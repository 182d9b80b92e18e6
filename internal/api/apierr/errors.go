package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/palabras/internal/model"
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
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeNotInDictionary  = "NOT_IN_DICTIONARY"
	CodeInvalidPlacement = "INVALID_PLACEMENT"
	CodeMissingTile      = "MISSING_TILE"
	CodeTileNotInRack    = "TILE_NOT_IN_RACK"
	CodeGameOver         = "GAME_OVER"
	CodeGameNotFound     = "GAME_NOT_FOUND"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternalError    = "INTERNAL_ERROR"
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

	var missing *model.MissingTileError
	if errors.As(err, &missing) {
		return &httpError{http.StatusBadRequest, APIError{CodeMissingTile, "Missing tile: " + string(missing.Tile)}}
	}

	// Placement and exchange errors carry their reason in the message
	switch {
	case errors.Is(err, model.ErrNotInDictionary):
		return &httpError{http.StatusBadRequest, APIError{CodeNotInDictionary, "Word not in dictionary"}}
	case errors.Is(err, model.ErrInvalidPlacement):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlacement, err.Error()}}
	case errors.Is(err, model.ErrInvalidDirection):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Direction must be H or V"}}
	case errors.Is(err, model.ErrMissingTile):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingTile, err.Error()}}
	case errors.Is(err, model.ErrTileNotInRack):
		return &httpError{http.StatusBadRequest, APIError{CodeTileNotInRack, err.Error()}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is over"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// NotFoundHandler answers unknown routes with the error envelope
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, &httpError{http.StatusNotFound, APIError{CodeNotFound, "Route not found"}})
}

// MethodNotAllowedHandler answers known routes called with the wrong method
func MethodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, "Method not allowed"}})
}

// PanicHandler answers a recovered panic with the internal error envelope
func PanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	WriteError(w, NewInternalError())
}
