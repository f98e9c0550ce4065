package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adminsuite/tenantconsole/internal/client/models"
)

// farFutureExpiry is used when neither the login response nor the token
// itself carries an expiry.
var farFutureExpiry = time.Date(2099, 12, 31, 23, 59, 59, 0, time.UTC)

// loginAPI is the slice of the auth service the session needs.
type loginAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error)
}

// Session holds the current authenticated user and token in memory, backed
// by a Store for persistence across restarts. Login and Logout swap the
// whole state under one lock, so no partial-login state is observable.
type Session struct {
	store Store
	auth  loginAPI

	mu    sync.Mutex
	token string
	user  *models.Profile
}

func New(store Store, auth loginAPI) *Session {
	return &Session{store: store, auth: auth}
}

// Hydrate loads persisted state on startup. An expired or missing stored
// token leaves the session unauthenticated with no error raised.
func (s *Session) Hydrate() {
	token := s.store.Token()
	if token == "" {
		return
	}
	user, ok := s.store.User()
	if !ok {
		return
	}
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
}

// Login authenticates against the backend and persists token, profile and
// expiry before publishing the in-memory state. On failure the session is
// left untouched and the gateway's uniform error is returned.
func (s *Session) Login(ctx context.Context, creds models.Credentials) error {
	result, err := s.auth.Login(ctx, creds)
	if err != nil {
		return err
	}

	expiresAt := result.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = tokenExpiry(result.Token)
	}

	if err := s.store.SetToken(result.Token, expiresAt); err != nil {
		return err
	}
	user := result.User
	if err := s.store.SetUser(&user); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = result.Token
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Logout clears persisted and in-memory state unconditionally and
// synchronously. No server round-trip is involved.
func (s *Session) Logout() {
	s.store.ClearAuth()
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// IsAuthenticated reports whether both a token and a user are present.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// User returns the authenticated profile, or nil when logged out.
func (s *Session) User() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// tokenExpiry extracts the exp claim from a JWT without verifying the
// signature (the backend owns validation). Tokens without a readable exp
// claim get the far-future fallback, matching the backend variant that
// reports no expiry at all.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return farFutureExpiry
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return farFutureExpiry
	}
	return exp.Time
}
