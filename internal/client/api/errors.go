package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/adminsuite/tenantconsole/internal/common"
)

// FallbackMessage is used when a failed response carries no decodable
// server message.
const FallbackMessage = "An unexpected error occurred"

// TLSHintMessage replaces raw TLS handshake noise with an actionable hint.
const TLSHintMessage = "SSL connection error. Use HTTP instead of HTTPS for development."

// Error is the uniform error shape produced by the gateway. Status is the
// HTTP status of the failed response, or 0 for transport-level failures.
// It is the only error type that crosses the service boundary.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Unwrap maps well-known statuses to the shared sentinels so callers can
// match with errors.Is without depending on HTTP status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case 0:
		return common.ErrorUnavailable
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	}
	return nil
}

// IsStatus reports whether err is a gateway *Error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}
