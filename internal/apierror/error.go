// Package apierror defines the typed failures raised by the services.
// Only the HTTP error handler translates them into the response envelope,
// the services never format a transport response themselves.
package apierror

import "net/http"

// An Error carries the outward status and message of a failed operation.
type Error struct {
	Code    int
	Message string
}

// Error implements error interface.
func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code of err.
func StatusCode(err error) int {
	if apierr, ok := err.(*Error); ok && apierr.Code > 0 {
		return apierr.Code
	}
	return http.StatusInternalServerError
}

// Unauthenticated is raised when no credential is presented or when the
// presented credentials do not match a user. Wrong email and wrong
// password are deliberately indistinguishable.
func Unauthenticated(message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: message}
}

// InvalidToken is raised when a token is presented but cannot be resolved,
// whether expired, revoked or malformed. Same status as Unauthenticated,
// distinct message.
func InvalidToken() *Error {
	return &Error{Code: http.StatusUnauthorized, Message: "Invalid token"}
}

// NotFound is raised when a resource is missing or owned by someone else.
// Both cases present identically so existence never leaks to non-owners.
func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message}
}

// Conflict is raised when a uniqueness constraint is violated.
func Conflict(message string) *Error {
	return &Error{Code: http.StatusConflict, Message: message}
}

// Validation is raised on malformed input.
func Validation(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}
