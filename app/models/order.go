package models

// OrderStatus is the lifecycle state of an order. The only transition is
// in_progress → completed, exactly once.
type OrderStatus string

const (
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
)

// OrderItem is one line of a placed order. Price is a snapshot of the menu
// price at order time; rows are immutable once the order exists.
type OrderItem struct {
	ID           int    `json:"id"`
	MenuItem     int    `json:"menu_item"`
	MenuItemName string `json:"menu_item_name"`
	Price        string `json:"price"`
	Quantity     int    `json:"quantity"`
}

// Order is a table's order as the backend reports it.
type Order struct {
	ID          int         `json:"id"`
	TableNumber int         `json:"table_number"`
	PlacedBy    string      `json:"placed_by"`
	Status      OrderStatus `json:"status"`
	CreatedAt   string      `json:"created_at"`
	TotalPrice  float64     `json:"total_price"`
	Items       []OrderItem `json:"items"`
}

// InProgress reports whether the order can still be changed or completed.
func (o Order) InProgress() bool {
	return o.Status == OrderInProgress
}
