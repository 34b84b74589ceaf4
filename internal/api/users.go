package api

import (
	"context"
	"fmt"

	"github.com/chriskampolis/tably/app/models"
	httpx "github.com/chriskampolis/tably/pkg/http"
)

// UserInput is the payload for creating a staff account.
type UserInput struct {
	Username  string          `json:"username"   validate:"required,alpha_dash,min=3,max=150"`
	Email     string          `json:"email"      validate:"required,email"`
	FirstName string          `json:"first_name" validate:"nullable,max=150"`
	LastName  string          `json:"last_name"  validate:"nullable,max=150"`
	Role      models.UserRole `json:"role"       validate:"required,in=manager,employee"`
	Password  string          `json:"password"   validate:"required,min=8"`
}

// UserPatch carries only the fields being changed.
type UserPatch struct {
	Email     *string          `json:"email,omitempty"`
	FirstName *string          `json:"first_name,omitempty"`
	LastName  *string          `json:"last_name,omitempty"`
	Role      *models.UserRole `json:"role,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

// ListUsers fetches all staff accounts.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.send(ctx, httpx.Get(c.url("/api/users/")), &users)
	return users, err
}

// CreateUser adds a staff account.
func (c *Client) CreateUser(ctx context.Context, input UserInput) (models.User, error) {
	var user models.User
	err := c.send(ctx, httpx.Post(c.url("/api/users/")).Body(input), &user)
	return user, err
}

// UpdateUser applies a partial update and returns the updated account.
func (c *Client) UpdateUser(ctx context.Context, id int, patch UserPatch) (models.User, error) {
	var user models.User
	req := httpx.Patch(c.url(fmt.Sprintf("/api/users/%d/", id))).Body(patch)
	err := c.send(ctx, req, &user)
	return user, err
}

// ReplaceUser overwrites every field of a staff account.
func (c *Client) ReplaceUser(ctx context.Context, id int, input UserInput) (models.User, error) {
	var user models.User
	req := httpx.Put(c.url(fmt.Sprintf("/api/users/%d/", id))).Body(input)
	err := c.send(ctx, req, &user)
	return user, err
}

// DeleteUser removes a staff account.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.send(ctx, httpx.Delete(c.url(fmt.Sprintf("/api/users/%d/", id))), nil)
}
