package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/adminsuite/tenantconsole/internal/common"
	"github.com/adminsuite/tenantconsole/internal/logging"
)

// CredentialSource supplies the bearer token and tenant identity attached to
// outbound requests. ClearAuth is invoked when a response comes back 401.
type CredentialSource interface {
	// Token returns the current bearer token, or "" when unauthenticated.
	Token() string
	// UserID returns the authenticated user's id for the tenant header.
	UserID() (int64, bool)
	// ClearAuth wipes the persisted session.
	ClearAuth()
}

// Client is the HTTP gateway. One instance is constructed at process start
// and shared by every resource service.
type Client struct {
	baseURL        string
	http           *http.Client
	creds          CredentialSource
	onUnauthorized func()
	log            logging.Logger
}

// New builds a Client over a pooled cleanhttp transport with a fixed request
// timeout. baseURL must not end with a slash.
func New(baseURL string, timeout time.Duration, creds CredentialSource, log logging.Logger) *Client {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = timeout
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		creds:   creds,
		log:     log,
	}
}

// SetUnauthorizedHook registers the callback run after a 401 teardown,
// typically dropping the console back to the login screen. The hook itself
// decides whether it is already there.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// PostForm submits fields as multipart/form-data. The multipart writer owns
// the content type (it carries the boundary), so no JSON content type is set.
func (c *Client) PostForm(ctx context.Context, path string, fields []Field, out any) error {
	contentType, body, err := encodeForm(fields)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	return c.do(ctx, http.MethodPost, path, contentType, body, out)
}

// PutForm is PostForm with PUT semantics, used by replace-style endpoints.
func (c *Client) PutForm(ctx context.Context, path string, fields []Field, out any) error {
	contentType, body, err := encodeForm(fields)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	return c.do(ctx, http.MethodPut, path, contentType, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var (
		r           io.Reader
		contentType string
	)
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: err.Error()}
		}
		r = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, contentType, r, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Message: err.Error()}
	}

	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if token := c.creds.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	if id, ok := c.creds.UserID(); ok {
		req.Header.Set(common.TenantHeaderName, strconv.FormatInt(id, 10))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.log.Debug(ctx, "request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn(ctx, "unauthorized response, clearing session", "path", path)
		c.creds.ClearAuth()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &Error{Message: serverMessage(resp.Body), Status: http.StatusUnauthorized}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{Message: serverMessage(resp.Body), Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Message: "malformed server response", Status: resp.StatusCode}
		}
	}
	return nil
}

// serverMessage extracts the backend's message field from an error body,
// falling back to the generic message. The decoder matches both "message"
// and "Message" casings.
func serverMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return FallbackMessage
}

// transportError normalizes network-level failures to Status 0. TLS-class
// failures get a connection-specific hint instead of the raw handshake error.
func transportError(err error) *Error {
	var recordErr tls.RecordHeaderError
	var certErr *tls.CertificateVerificationError
	msg := err.Error()
	if errors.As(err, &recordErr) || errors.As(err, &certErr) ||
		strings.Contains(msg, "tls:") || strings.Contains(strings.ToUpper(msg), "SSL") {
		return &Error{Message: TLSHintMessage, Status: 0}
	}
	return &Error{Message: msg, Status: 0}
}
