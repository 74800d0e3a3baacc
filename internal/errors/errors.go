package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials is returned on login failure. An unknown username
	// and a wrong password produce the same error.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Response is the failure body. Every API response carries the success flag.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToResponse converts an HTTPError to a failure Response.
func (e *HTTPError) ToResponse() Response {
	return Response{
		Success: false,
		Message: e.Message,
	}
}

// MapError maps domain errors to HTTP errors. Anything unrecognized is a
// generic server error carrying the error's own text.
func MapError(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
