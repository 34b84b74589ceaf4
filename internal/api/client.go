// Package api is the typed client for the restaurant backend's REST API.
//
// Every response is parsed into an app/models type at this boundary; nothing
// above it touches raw JSON. Requests carry a bearer token whenever the
// TokenSource yields one.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/chriskampolis/tably/config"
	httpx "github.com/chriskampolis/tably/pkg/http"
)

// TokenSource yields the current access token, or "" when logged out.
// The session store implements it.
type TokenSource interface {
	Token() string
}

// Client talks to one backend at a fixed base address.
type Client struct {
	base    string
	tokens  TokenSource
	timeout time.Duration
}

// New returns a Client for the backend at base (e.g. "http://localhost:8000").
// tokens may be nil for an unauthenticated client.
func New(base string, tokens TokenSource) *Client {
	return &Client{
		base:    strings.TrimRight(base, "/"),
		tokens:  tokens,
		timeout: config.HTTPTimeout(),
	}
}

func (c *Client) url(path string) string {
	return c.base + path
}

// send finishes req: attaches the bearer token when present, executes, maps
// non-2xx statuses to *Error and decodes the body into dest (nil to skip).
func (c *Client) send(ctx context.Context, req *httpx.Request, dest any) error {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Bearer(token)
		}
	}

	resp, err := req.WithContext(ctx).Timeout(c.timeout).Send()
	if err != nil {
		return err
	}
	if !resp.OK() {
		return &Error{Status: resp.StatusCode, Body: resp.Text()}
	}
	if dest == nil {
		return nil
	}
	return resp.JSON(dest)
}

// Error is a non-2xx backend response.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: backend returned %d: %s", e.Status, e.Body)
}

// IsUnauthorized reports whether err is a 401 from the backend, so callers
// can resolve it to "not authenticated" instead of surfacing it raw.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
