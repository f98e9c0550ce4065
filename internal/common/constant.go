// Package common contains shared constants and sentinel errors used across
// the console components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// TenantHeaderName carries the identifier routing a request to the
	// authenticated user's data partition on the backend.
	TenantHeaderName = "User-ID"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"
)
