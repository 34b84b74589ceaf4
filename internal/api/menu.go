package api

import (
	"context"
	"fmt"

	"github.com/chriskampolis/tably/app/models"
	httpx "github.com/chriskampolis/tably/pkg/http"
)

// MenuItemInput is the payload for creating a menu item. Price is a decimal
// string, matching what the backend serves back.
type MenuItemInput struct {
	Name         string          `json:"name"         validate:"required,min=1,max=255"`
	Price        string          `json:"price"        validate:"required,numeric,gte=0"`
	Availability int             `json:"availability" validate:"gte=0"`
	Category     models.Category `json:"category"     validate:"required,in=APPETIZER,MAIN,DESSERT,DRINK"`
}

// MenuItemPatch carries only the fields being changed; nil fields are
// omitted from the PATCH body.
type MenuItemPatch struct {
	Name         *string          `json:"name,omitempty"`
	Price        *string          `json:"price,omitempty"`
	Availability *int             `json:"availability,omitempty"`
	Category     *models.Category `json:"category,omitempty"`
}

// ListMenuItems fetches the whole menu.
func (c *Client) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := c.send(ctx, httpx.Get(c.url("/api/menu-items/")), &items)
	return items, err
}

// CreateMenuItem adds a new item to the menu.
func (c *Client) CreateMenuItem(ctx context.Context, input MenuItemInput) (models.MenuItem, error) {
	var item models.MenuItem
	err := c.send(ctx, httpx.Post(c.url("/api/menu-items/")).Body(input), &item)
	return item, err
}

// UpdateMenuItem applies a partial update and returns the updated item.
func (c *Client) UpdateMenuItem(ctx context.Context, id int, patch MenuItemPatch) (models.MenuItem, error) {
	var item models.MenuItem
	req := httpx.Patch(c.url(fmt.Sprintf("/api/menu-items/%d/", id))).Body(patch)
	err := c.send(ctx, req, &item)
	return item, err
}

// ReplaceMenuItem overwrites every field of a menu item.
func (c *Client) ReplaceMenuItem(ctx context.Context, id int, input MenuItemInput) (models.MenuItem, error) {
	var item models.MenuItem
	req := httpx.Put(c.url(fmt.Sprintf("/api/menu-items/%d/", id))).Body(input)
	err := c.send(ctx, req, &item)
	return item, err
}

// DeleteMenuItem removes a menu item.
func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	return c.send(ctx, httpx.Delete(c.url(fmt.Sprintf("/api/menu-items/%d/", id))), nil)
}
