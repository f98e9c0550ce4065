package session

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminsuite/tenantconsole/internal/client/api"
	"github.com/adminsuite/tenantconsole/internal/client/models"
)

// fakeAuth implements loginAPI.
type fakeAuth struct {
	result *models.LoginResult
	err    error

	lastCreds models.Credentials
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials) (*models.LoginResult, error) {
	f.lastCreds = creds
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSession_LoginPersistsAndPublishesAtomically(t *testing.T) {
	store := NewFileStore(tempStorePath(t))
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	auth := &fakeAuth{result: &models.LoginResult{
		Token:     "tok-1",
		User:      models.Profile{ID: 5, Username: "admin"},
		ExpiresAt: exp,
	}}

	s := New(store, auth)
	require.NoError(t, s.Login(context.Background(), models.Credentials{UserName: "admin", Password: "pw", CompanyCode: "12"}))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "admin", s.User().Username)
	assert.Equal(t, "admin", auth.lastCreds.UserName)

	// persisted too
	assert.Equal(t, "tok-1", store.Token())
	storedExp, ok := store.Expiry()
	require.True(t, ok)
	assert.WithinDuration(t, exp, storedExp, time.Second)
}

func TestSession_LoginFailurePersistsNothing(t *testing.T) {
	store := NewFileStore(tempStorePath(t))
	auth := &fakeAuth{err: &api.Error{Message: "unauthorized", Status: http.StatusUnauthorized}}

	s := New(store, auth)
	err := s.Login(context.Background(), models.Credentials{UserName: "admin", Password: "bad"})

	require.Error(t, err)
	assert.True(t, api.IsStatus(err, http.StatusUnauthorized))
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Empty(t, store.Token())
}

func TestSession_LoginWithoutServerExpiryUsesTokenClaim(t *testing.T) {
	store := NewFileStore(tempStorePath(t))
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	auth := &fakeAuth{result: &models.LoginResult{
		Token: signedToken(t, exp),
		User:  models.Profile{ID: 1},
	}}

	s := New(store, auth)
	require.NoError(t, s.Login(context.Background(), models.Credentials{UserName: "a", Password: "b"}))

	storedExp, ok := store.Expiry()
	require.True(t, ok)
	assert.WithinDuration(t, exp, storedExp, time.Second)
}

func TestSession_OpaqueTokenFallsBackToFarFuture(t *testing.T) {
	assert.Equal(t, farFutureExpiry, tokenExpiry("not-a-jwt"))
}

func TestSession_LogoutClearsEverything(t *testing.T) {
	store := NewFileStore(tempStorePath(t))
	auth := &fakeAuth{result: &models.LoginResult{
		Token:     "tok",
		User:      models.Profile{ID: 2},
		ExpiresAt: time.Now().Add(time.Hour),
	}}

	s := New(store, auth)
	require.NoError(t, s.Login(context.Background(), models.Credentials{UserName: "a", Password: "b"}))
	require.True(t, s.IsAuthenticated())

	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Empty(t, store.Token())
}

func TestSession_HydrateExpiredStoreStaysUnauthenticated(t *testing.T) {
	path := tempStorePath(t)
	store := NewFileStore(path)
	require.NoError(t, store.SetToken("tok", time.Now().Add(time.Hour)))
	require.NoError(t, store.SetUser(&models.Profile{ID: 3}))
	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	s := New(store, &fakeAuth{})
	s.Hydrate()

	assert.False(t, s.IsAuthenticated())
}

func TestSession_HydrateValidStoreIsAuthenticated(t *testing.T) {
	path := tempStorePath(t)
	store := NewFileStore(path)
	require.NoError(t, store.SetToken("tok", time.Now().Add(time.Hour)))
	require.NoError(t, store.SetUser(&models.Profile{ID: 3, Username: "ops"}))

	s := New(store, &fakeAuth{})
	s.Hydrate()

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "ops", s.User().Username)
}
