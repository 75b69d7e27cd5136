package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailExists is returned when registering or updating to an email that is taken.
	ErrEmailExists = errors.New("email already exists")
	// ErrUserNotFound is returned when no user row matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned when the password does not match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrTokenInvalid is returned when a token is malformed or its signature fails.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned when a token's expiry has elapsed.
	ErrTokenExpired = errors.New("token expired")
	// ErrForbidden is returned on role or ownership violations.
	ErrForbidden = errors.New("forbidden")
	// ErrHashing is returned on internal hashing failures, including corrupt stored hashes.
	ErrHashing = errors.New("password hashing failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. This is the single place
// where error kinds become status codes; handlers never match on message text.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_EXISTS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_PASSWORD")
	case errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "TOKEN_EXPIRED")
	case errors.Is(err, ErrTokenInvalid):
		return NewHTTPError(http.StatusForbidden, err.Error(), "TOKEN_INVALID")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrHashing):
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "HASHING_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
