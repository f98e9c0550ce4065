package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/adminsuite/tenantconsole/internal/client/api"
	"github.com/adminsuite/tenantconsole/internal/client/config"
	"github.com/adminsuite/tenantconsole/internal/client/models"
	"github.com/adminsuite/tenantconsole/internal/client/services"
	"github.com/adminsuite/tenantconsole/internal/client/session"
	"github.com/adminsuite/tenantconsole/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// sessionManager is the slice of the session the screens need. The concrete
// *session.Session satisfies it; tests substitute a fake.
type sessionManager interface {
	Login(ctx context.Context, creds models.Credentials) error
	Logout()
	IsAuthenticated() bool
	User() *models.Profile
}

type App struct {
	config  *config.Config
	log     logging.Logger
	session sessionManager

	clients   services.ClientService
	users     services.UserService
	databases services.DatabaseService
	logo      services.LogoService
	health    services.HealthService

	Mode   Mode
	reader *bufio.Reader
	out    io.Writer

	// loginActive marks the login prompt as the current screen, so a 401
	// from the login endpoint itself does not announce a session teardown.
	loginActive atomic.Bool
}

func NewApp(c *config.Config, log logging.Logger) *App {
	store := session.NewFileStore(c.SessionFile)
	gw := api.New(c.APIBaseURL, c.RequestTimeout, store, log)

	auth := services.NewAuthService(gw)
	sess := session.New(store, auth)
	sess.Hydrate()

	app := &App{
		config:    c,
		log:       log,
		session:   sess,
		clients:   services.NewClientService(gw),
		users:     services.NewUserService(gw),
		databases: services.NewDatabaseService(gw),
		logo:      services.NewLogoService(gw),
		health:    services.NewHealthService(gw),
		Mode:      ModeOnline,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}

	// A 401 clears the persisted token inside the gateway; the hook drops
	// the in-memory state so the prompt falls back to the login screen.
	gw.SetUnauthorizedHook(app.onUnauthorized)

	return app
}

// onUnauthorized runs after the gateway's 401 teardown. The in-memory state
// is always dropped; the message is skipped while the login screen is
// active, since that screen reports its own failure.
func (a *App) onUnauthorized() {
	a.session.Logout()
	if a.loginActive.Load() {
		return
	}
	fmt.Fprintln(a.out, "Session expired. Please log in again.")
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// StartOnlineStatusWatcher periodically probes the backend health endpoint
// and flips Mode between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), a.config.RequestTimeout)
			err := a.health.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
