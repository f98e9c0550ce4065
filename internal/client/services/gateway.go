// Package services contains the per-resource services of the console: thin
// mappers between the backend's wire shapes and the view-models the screens
// consume. Every service is built on the same gateway and returns the
// gateway's uniform error on failure.
package services

import (
	"context"

	"github.com/adminsuite/tenantconsole/internal/client/api"
)

// Gateway is the slice of the HTTP client the services use. api.Client
// satisfies it; tests substitute fakes.
type Gateway interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
	PostForm(ctx context.Context, path string, fields []api.Field, out any) error
	PutForm(ctx context.Context, path string, fields []api.Field, out any) error
}
