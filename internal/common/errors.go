// Sentinel errors shared between the session, service and view layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository/backend-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors caught before any network call.
	ErrorValidation = errors.New("validation error")

	// Transport-level errors.
	ErrorUnavailable = errors.New("server unavailable")
)
