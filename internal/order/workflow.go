// Package order implements the table-order workflow: load the menu, adopt a
// table's in-progress order, edit a local quantity draft, submit, complete.
package order

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/chriskampolis/tably/app/models"
	"github.com/chriskampolis/tably/internal/api"
	"github.com/chriskampolis/tably/pkg/collection"
	"github.com/chriskampolis/tably/pkg/logger"
)

var (
	// ErrEmptyOrder blocks a submit whose draft has no positive quantity.
	// Checked before any network call.
	ErrEmptyOrder = errors.New("order: select at least one item before submitting")
	// ErrNoOrder means complete was called with no current order.
	ErrNoOrder = errors.New("order: no order to complete")
	// ErrAlreadyCompleted means the current order's terminal transition
	// already happened.
	ErrAlreadyCompleted = errors.New("order: order is already completed")
	// ErrNegativeQuantity rejects a draft edit below zero.
	ErrNegativeQuantity = errors.New("order: quantity cannot be negative")
)

// Backend is the slice of the API client the workflow needs.
type Backend interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	OrdersForTable(ctx context.Context, table int) ([]models.Order, error)
	SubmitOrder(ctx context.Context, table int, items []api.OrderEntry) (models.Order, error)
	CompleteOrder(ctx context.Context, id int) error
}

// Workflow holds the state of one ordering session: the menu, the selected
// table, the table's current order (if any) and the local quantity draft.
// Draft edits are purely local until Submit.
type Workflow struct {
	backend Backend

	table   int
	menu    []models.MenuItem
	draft   map[int]int
	current *models.Order

	// tableGen sequences table loads so a superseded fetch can never
	// overwrite newer state with stale data.
	tableGen atomic.Uint64
}

// New returns a workflow with an empty draft and no table selected.
func New(backend Backend) *Workflow {
	return &Workflow{
		backend: backend,
		draft:   make(map[int]int),
	}
}

// LoadMenu fetches the menu. Called on entry and again after every
// successful submit, since submission changes availability counts.
func (w *Workflow) LoadMenu(ctx context.Context) error {
	menu, err := w.backend.ListMenuItems(ctx)
	if err != nil {
		return err
	}
	w.menu = menu
	return nil
}

// SelectTable switches to table n: it fetches the table's orders, adopts
// the in-progress one if present and seeds the draft from its line items,
// otherwise clears both. Selecting the same table twice is idempotent.
//
// A fetch error also clears the current order and draft, so the screen
// never shows another table's state.
func (w *Workflow) SelectTable(ctx context.Context, n int) error {
	w.table = n
	gen := w.tableGen.Add(1)

	orders, err := w.backend.OrdersForTable(ctx, n)
	if gen != w.tableGen.Load() {
		// A later table selection already happened; drop this result.
		return nil
	}
	if err != nil {
		logger.Warn("order: failed to fetch table orders", "table", n, "error", err)
		w.current = nil
		w.draft = make(map[int]int)
		return err
	}

	active := collection.Filter(orders, models.Order.InProgress)
	if len(active) == 0 {
		w.current = nil
		w.draft = make(map[int]int)
		return nil
	}
	if len(active) > 1 {
		// The backend is expected to keep at most one in-progress order
		// per table; adopt the first and flag the rest.
		logger.Warn("order: multiple in-progress orders for table", "table", n, "count", len(active))
	}

	adopted := active[0]
	w.current = &adopted
	w.draft = make(map[int]int, len(adopted.Items))
	for _, item := range adopted.Items {
		w.draft[item.MenuItem] = item.Quantity
	}
	return nil
}

// Table returns the currently selected table number.
func (w *Workflow) Table() int { return w.table }

// Menu returns the last loaded menu.
func (w *Workflow) Menu() []models.MenuItem { return w.menu }

// Current returns the table's adopted order, or nil.
func (w *Workflow) Current() *models.Order { return w.current }

// Quantity returns the draft quantity for a menu item id.
func (w *Workflow) Quantity(itemID int) int { return w.draft[itemID] }

// SetQuantity overwrites one draft entry. Local only; no network call.
func (w *Workflow) SetQuantity(itemID, qty int) error {
	if qty < 0 {
		return ErrNegativeQuantity
	}
	w.draft[itemID] = qty
	return nil
}

// Entries returns the draft as submission lines, excluding zero quantities,
// in stable menu order.
func (w *Workflow) Entries() []api.OrderEntry {
	var entries []api.OrderEntry
	for _, item := range w.menu {
		if qty := w.draft[item.ID]; qty > 0 {
			entries = append(entries, api.OrderEntry{MenuItem: item.ID, Quantity: qty})
		}
	}
	// Draft ids no longer on the menu still count; append them after.
	for id, qty := range w.draft {
		if qty > 0 && !collection.Contains(w.menu, func(m models.MenuItem) bool { return m.ID == id }) {
			entries = append(entries, api.OrderEntry{MenuItem: id, Quantity: qty})
		}
	}
	return entries
}

// Submit posts the draft as an order for the selected table. An empty draft
// fails with ErrEmptyOrder before any network call. On success the returned
// order becomes current and the menu is re-fetched; on failure all local
// state is left untouched.
func (w *Workflow) Submit(ctx context.Context) (models.Order, error) {
	entries := w.Entries()
	if len(entries) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	placed, err := w.backend.SubmitOrder(ctx, w.table, entries)
	if err != nil {
		return models.Order{}, err
	}

	w.current = &placed
	if err := w.LoadMenu(ctx); err != nil {
		// The order went through; a stale menu only affects availability
		// display until the next load.
		logger.Warn("order: menu refresh after submit failed", "error", err)
	}
	return placed, nil
}

// Complete marks the current order completed. Terminal and irreversible;
// callers must confirm with the user first. On failure the local status is
// left untouched.
func (w *Workflow) Complete(ctx context.Context) error {
	if w.current == nil {
		return ErrNoOrder
	}
	if !w.current.InProgress() {
		return ErrAlreadyCompleted
	}

	if err := w.backend.CompleteOrder(ctx, w.current.ID); err != nil {
		return err
	}
	w.current.Status = models.OrderCompleted
	return nil
}

// Total derives the draft's price: Σ price×quantity over every draft entry,
// looking prices up in the current menu. A draft id missing from the menu
// contributes zero. Recomputed on every call; nothing is cached.
func (w *Workflow) Total() float64 {
	var total float64
	for id, qty := range w.draft {
		item, ok := collection.Find(w.menu, func(m models.MenuItem) bool { return m.ID == id })
		if !ok {
			continue
		}
		total += item.PriceValue() * float64(qty)
	}
	return total
}
