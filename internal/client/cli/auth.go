package cli

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/adminsuite/tenantconsole/internal/client/api"
	"github.com/adminsuite/tenantconsole/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const (
	invalidCredentialsMessage = "Invalid email or password. Please try again."
	rateLimitMessage          = "Too many login attempts. Please try again later."
)

// Login prompts for username, password and company code and authenticates.
//
// All three fields are validated before any network call: username and
// password must be non-empty and the company code must be numeric. A 401 is
// rendered as an invalid-credentials message, a 429 as a rate-limit message;
// any other failure surfaces the server's message unchanged.
func (a *App) Login(ctx context.Context) error {
	a.loginActive.Store(true)
	defer a.loginActive.Store(false)

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	if userName == "" {
		fmt.Fprintln(a.out, "Username is required.")
		return nil
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if len(password) == 0 {
		fmt.Fprintln(a.out, "Password is required.")
		return nil
	}

	companyCode, err := getSimpleText(a.reader, "Enter company code", a.out)
	if err != nil {
		return err
	}
	if companyCode == "" {
		fmt.Fprintln(a.out, "Company code is required.")
		return nil
	}
	if _, err := strconv.Atoi(companyCode); err != nil {
		fmt.Fprintln(a.out, "Company code must be numeric.")
		return nil
	}

	creds := models.Credentials{
		UserName:    userName,
		Password:    string(password),
		CompanyCode: companyCode,
	}

	if err := a.session.Login(ctx, creds); err != nil {
		fmt.Fprintln(a.out, loginErrorMessage(err))
		return nil
	}

	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Welcome, %s!\n", u.FullName)
	}
	return nil
}

func loginErrorMessage(err error) string {
	switch {
	case api.IsStatus(err, http.StatusUnauthorized):
		return invalidCredentialsMessage
	case api.IsStatus(err, http.StatusTooManyRequests):
		return rateLimitMessage
	default:
		return err.Error()
	}
}

// Logout clears the persisted and in-memory session. No server round-trip
// is involved; the stored token is simply discarded.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
