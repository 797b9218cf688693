package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maxgeorg99/vibe-multiplayer-server/internal/model"
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
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeRoomAlreadyExists      = "ROOM_ALREADY_EXISTS"
	CodeRoomNotFound           = "ROOM_NOT_FOUND"
	CodeRoomFull               = "ROOM_FULL"
	CodeWrongPassword          = "WRONG_PASSWORD"
	CodeNotOwner               = "NOT_OWNER"
	CodeCapacityBelowOccupancy = "CAPACITY_BELOW_OCCUPANCY"
	CodeNotRegistered          = "NOT_REGISTERED"
	CodePlayerNotFound         = "PLAYER_NOT_FOUND"
	CodeInvalidVote            = "INVALID_VOTE"
	CodeInternalError          = "INTERNAL_ERROR"
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
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrRoomAlreadyExists):
		return &httpError{http.StatusConflict, APIError{CodeRoomAlreadyExists, "Room already exists"}}
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrRoomFull):
		return &httpError{http.StatusConflict, APIError{CodeRoomFull, "Room is full"}}
	case errors.Is(err, model.ErrWrongPassword):
		return &httpError{http.StatusForbidden, APIError{CodeWrongPassword, "Incorrect password"}}
	case errors.Is(err, model.ErrNotOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotOwner, "Only the room owner can modify room settings"}}
	case errors.Is(err, model.ErrCapacityBelowOccupancy):
		return &httpError{http.StatusConflict, APIError{CodeCapacityBelowOccupancy, "Cannot set max players lower than current player count"}}
	case errors.Is(err, model.ErrPlayerNotRegistered):
		return &httpError{http.StatusConflict, APIError{CodeNotRegistered, "Register before joining a room"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrInvalidVote):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidVote, "Invalid vote: must be one of S, M, L, XL"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Missing or invalid identity"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
