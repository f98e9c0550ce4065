package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminsuite/tenantconsole/internal/client/api"
	"github.com/adminsuite/tenantconsole/internal/client/config"
	"github.com/adminsuite/tenantconsole/internal/client/models"
	"github.com/adminsuite/tenantconsole/internal/client/services"
	"github.com/adminsuite/tenantconsole/internal/client/session"
	"github.com/adminsuite/tenantconsole/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// A rejected login must only report invalid credentials: the gateway's 401
// teardown runs, but the hook stays quiet while the login screen is active.
func TestLogin_Rejected401DoesNotAnnounceSessionExpiry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Unauthorized"}`))
	}))
	defer srv.Close()

	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	gw := api.New(srv.URL, 2*time.Second, store, testLogger())
	sess := session.New(store, services.NewAuthService(gw))

	out := &bytes.Buffer{}
	a := &App{session: sess, out: out, reader: rdr("")}
	gw.SetUnauthorizedHook(a.onUnauthorized)

	restore := stubInputs(t, "alice", "42", []byte("wrong"))
	defer restore()

	require.NoError(t, a.Login(context.Background()))

	assert.Contains(t, out.String(), invalidCredentialsMessage)
	assert.NotContains(t, out.String(), "Session expired")
	assert.False(t, sess.IsAuthenticated())
}

func TestOnUnauthorized_OutsideLoginTearsDownAndAnnounces(t *testing.T) {
	sess := &fakeSession{loggedIn: true}
	a, out := newTestApp(sess)

	a.onUnauthorized()

	assert.True(t, sess.logoutCalled)
	assert.Contains(t, out.String(), "Session expired. Please log in again.")
}

type fakeHealth struct {
	deadlines chan time.Duration
	err       error
}

func (f *fakeHealth) Ping(ctx context.Context) error {
	if deadline, ok := ctx.Deadline(); ok {
		select {
		case f.deadlines <- time.Until(deadline):
		default:
		}
	}
	return f.err
}

func (f *fakeHealth) Stats(context.Context) (*models.DashboardStats, error) {
	return &models.DashboardStats{}, nil
}

func TestStartOnlineStatusWatcher_UsesConfiguredTimeout(t *testing.T) {
	health := &fakeHealth{deadlines: make(chan time.Duration, 1)}
	a := &App{
		config: &config.Config{RequestTimeout: 5 * time.Second},
		log:    testLogger(),
		health: health,
		Mode:   ModeOnline,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)

	select {
	case d := <-health.deadlines:
		assert.Greater(t, d, 4*time.Second)
		assert.LessOrEqual(t, d, 5*time.Second)
	case <-time.After(time.Second):
		t.Fatal("health ping never ran")
	}
}
