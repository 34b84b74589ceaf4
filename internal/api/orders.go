package api

import (
	"context"
	"fmt"

	"github.com/chriskampolis/tably/app/models"
	httpx "github.com/chriskampolis/tably/pkg/http"
)

// OrderEntry is one line of an order submission.
type OrderEntry struct {
	MenuItem int `json:"menu_item"`
	Quantity int `json:"quantity"`
}

// OrdersForTable lists the orders recorded for one table.
func (c *Client) OrdersForTable(ctx context.Context, table int) ([]models.Order, error) {
	var orders []models.Order
	err := c.send(ctx, httpx.Get(c.url(fmt.Sprintf("/api/orders/?table=%d", table))), &orders)
	return orders, err
}

// SubmitOrder creates an order for a table and returns it as the backend
// recorded it.
func (c *Client) SubmitOrder(ctx context.Context, table int, items []OrderEntry) (models.Order, error) {
	var order models.Order
	req := httpx.Post(c.url("/api/orders/submit/")).Body(map[string]any{
		"table_number": table,
		"items":        items,
	})
	err := c.send(ctx, req, &order)
	return order, err
}

// CompleteOrder transitions an order to completed. The transition is
// terminal; the backend rejects repeats.
func (c *Client) CompleteOrder(ctx context.Context, id int) error {
	return c.send(ctx, httpx.Patch(c.url(fmt.Sprintf("/api/orders/%d/complete/", id))), nil)
}

// CompletedOrders lists every completed order.
func (c *Client) CompletedOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := c.send(ctx, httpx.Get(c.url("/api/completed-orders/")), &orders)
	return orders, err
}
