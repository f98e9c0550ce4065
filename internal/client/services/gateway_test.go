package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adminsuite/tenantconsole/internal/client/api"
)

// call records one gateway invocation for assertions.
type call struct {
	Method string
	Path   string
	Body   any
	Fields []api.Field
}

// fakeGateway implements Gateway with canned per-route responses keyed by
// "METHOD path".
type fakeGateway struct {
	t         *testing.T
	responses map[string]string
	errs      map[string]error
	calls     []call
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()
	return &fakeGateway{
		t:         t,
		responses: map[string]string{},
		errs:      map[string]error{},
	}
}

func (f *fakeGateway) respond(method, path, body string) {
	f.responses[method+" "+path] = body
}

func (f *fakeGateway) fail(method, path string, err error) {
	f.errs[method+" "+path] = err
}

func (f *fakeGateway) dispatch(method, path string, body any, fields []api.Field, out any) error {
	f.calls = append(f.calls, call{Method: method, Path: path, Body: body, Fields: fields})
	key := method + " " + path
	if err, ok := f.errs[key]; ok {
		return err
	}
	if out == nil {
		return nil
	}
	raw, ok := f.responses[key]
	if !ok {
		f.t.Fatalf("no canned response for %s", key)
	}
	require.NoError(f.t, json.Unmarshal([]byte(raw), out))
	return nil
}

func (f *fakeGateway) Get(_ context.Context, path string, out any) error {
	return f.dispatch("GET", path, nil, nil, out)
}

func (f *fakeGateway) Post(_ context.Context, path string, body, out any) error {
	return f.dispatch("POST", path, body, nil, out)
}

func (f *fakeGateway) Put(_ context.Context, path string, body, out any) error {
	return f.dispatch("PUT", path, body, nil, out)
}

func (f *fakeGateway) Patch(_ context.Context, path string, body, out any) error {
	return f.dispatch("PATCH", path, body, nil, out)
}

func (f *fakeGateway) Delete(_ context.Context, path string) error {
	return f.dispatch("DELETE", path, nil, nil, nil)
}

func (f *fakeGateway) PostForm(_ context.Context, path string, fields []api.Field, out any) error {
	return f.dispatch("POST-FORM", path, nil, fields, out)
}

func (f *fakeGateway) PutForm(_ context.Context, path string, fields []api.Field, out any) error {
	return f.dispatch("PUT-FORM", path, nil, fields, out)
}
