// Package common defines the shared error taxonomy used across the console
// layers. Failures from the backend and from local state are classified into
// a closed set of tagged error types so callers can branch with errors.As
// instead of inspecting raw status codes.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// NetworkError means the request never produced a usable server response:
// the server was unreachable or the call timed out.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error: %v", e.Err)
	}
	return "network error"
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError means the server responded but the payload violates the
// expected shape (e.g. a login response without a token).
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s", e.Message)
}

// AuthenticationError corresponds to HTTP 401: the session is invalid or
// expired. It is handled centrally by the request authorizer and still
// surfaced to the originating caller.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unauthenticated: %s", e.Message)
	}
	return "unauthenticated"
}

// AuthorizationError corresponds to HTTP 403: authenticated but the role is
// insufficient for the requested resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("forbidden: %s", e.Message)
	}
	return "forbidden"
}

// ValidationError means locally held data is malformed or incomplete
// (corrupt stored session, user object missing required fields). It is never
// shown to the operator as a failure; the owning component heals itself.
type ValidationError struct {
	Missing []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("validation error: missing %s", strings.Join(e.Missing, ", "))
	}
	if e.Message != "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return "validation error"
}

// StatusError carries any other non-2xx status together with the server's
// message, when one could be extracted.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// IsAuthError reports whether err is an authentication or authorization
// failure.
func IsAuthError(err error) bool {
	var authn *AuthenticationError
	var authz *AuthorizationError
	return errors.As(err, &authn) || errors.As(err, &authz)
}
