package api

import (
	"context"

	"github.com/chriskampolis/tably/app/models"
	httpx "github.com/chriskampolis/tably/pkg/http"
)

// TokenPair is the backend's response to a credential exchange.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login exchanges a username and password for a token pair.
func (c *Client) Login(ctx context.Context, username, password string) (TokenPair, error) {
	var pair TokenPair
	req := httpx.Post(c.url("/api/token/")).Body(map[string]string{
		"username": username,
		"password": password,
	})
	err := c.send(ctx, req, &pair)
	return pair, err
}

// RefreshToken exchanges a refresh token for a fresh access token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	var out struct {
		Access string `json:"access"`
	}
	req := httpx.Post(c.url("/api/token/refresh/")).Body(map[string]string{
		"refresh": refreshToken,
	})
	err := c.send(ctx, req, &out)
	return out.Access, err
}

// Me fetches the logged-in user's username and role.
func (c *Client) Me(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	err := c.send(ctx, httpx.Get(c.url("/api/users/me/")), &profile)
	return profile, err
}
