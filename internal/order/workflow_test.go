package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriskampolis/tably/app/models"
	"github.com/chriskampolis/tably/internal/api"
)

type fakeBackend struct {
	menu   []models.MenuItem
	orders map[int][]models.Order
	placed models.Order

	submitErr   error
	completeErr error

	menuCalls     int
	tableCalls    int
	submitCalls   int
	completeCalls int

	lastSubmitTable int
	lastSubmitItems []api.OrderEntry

	// onTableFetch runs inside OrdersForTable, before it returns. Used to
	// simulate a fetch that is superseded while in flight.
	onTableFetch func(table int)
}

func (b *fakeBackend) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	b.menuCalls++
	return b.menu, nil
}

func (b *fakeBackend) OrdersForTable(ctx context.Context, table int) ([]models.Order, error) {
	b.tableCalls++
	if b.onTableFetch != nil {
		fn := b.onTableFetch
		b.onTableFetch = nil
		fn(table)
	}
	return b.orders[table], nil
}

func (b *fakeBackend) SubmitOrder(ctx context.Context, table int, items []api.OrderEntry) (models.Order, error) {
	b.submitCalls++
	if b.submitErr != nil {
		return models.Order{}, b.submitErr
	}
	b.lastSubmitTable = table
	b.lastSubmitItems = items
	return b.placed, nil
}

func (b *fakeBackend) CompleteOrder(ctx context.Context, id int) error {
	b.completeCalls++
	return b.completeErr
}

func testMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: 7, Name: "Moussaka", Price: "9.50", Availability: 5, Category: models.CategoryMain},
		{ID: 9, Name: "Baklava", Price: "4.00", Availability: 8, Category: models.CategoryDessert},
		{ID: 11, Name: "Tzatziki", Price: "3.20", Availability: 12, Category: models.CategoryAppetizer},
	}
}

func TestSelectTableAdoptsInProgressOrder(t *testing.T) {
	backend := &fakeBackend{
		menu: testMenu(),
		orders: map[int][]models.Order{
			3: {{
				ID: 42, TableNumber: 3, Status: models.OrderInProgress,
				Items: []models.OrderItem{{MenuItem: 7, Quantity: 2}},
			}},
		},
	}
	wf := New(backend)
	require.NoError(t, wf.LoadMenu(context.Background()))

	require.NoError(t, wf.SelectTable(context.Background(), 3))

	require.NotNil(t, wf.Current())
	assert.Equal(t, 42, wf.Current().ID)
	assert.Equal(t, 2, wf.Quantity(7))
	assert.Equal(t, 0, wf.Quantity(9))
}

func TestSelectTableWithoutOrderClearsState(t *testing.T) {
	backend := &fakeBackend{
		menu: testMenu(),
		orders: map[int][]models.Order{
			3: {{ID: 42, Status: models.OrderInProgress, Items: []models.OrderItem{{MenuItem: 7, Quantity: 2}}}},
			4: {{ID: 40, Status: models.OrderCompleted}},
		},
	}
	wf := New(backend)
	require.NoError(t, wf.LoadMenu(context.Background()))
	require.NoError(t, wf.SelectTable(context.Background(), 3))

	require.NoError(t, wf.SelectTable(context.Background(), 4))

	assert.Nil(t, wf.Current())
	assert.Zero(t, wf.Quantity(7))
}

func TestSelectTableDiscardsSupersededResponse(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{
		menu: testMenu(),
		orders: map[int][]models.Order{
			1: {{ID: 1, TableNumber: 1, Status: models.OrderInProgress, Items: []models.OrderItem{{MenuItem: 7, Quantity: 1}}}},
			2: {{ID: 2, TableNumber: 2, Status: models.OrderInProgress, Items: []models.OrderItem{{MenuItem: 9, Quantity: 3}}}},
		},
	}
	wf := New(backend)
	require.NoError(t, wf.LoadMenu(ctx))

	// While table 1's fetch is in flight the user switches to table 2; the
	// older response must not overwrite the newer state when it lands.
	backend.onTableFetch = func(table int) {
		require.NoError(t, wf.SelectTable(ctx, 2))
	}
	require.NoError(t, wf.SelectTable(ctx, 1))

	require.NotNil(t, wf.Current())
	assert.Equal(t, 2, wf.Current().ID)
	assert.Equal(t, 3, wf.Quantity(9))
	assert.Zero(t, wf.Quantity(7))
}

func TestSetQuantityRejectsNegative(t *testing.T) {
	wf := New(&fakeBackend{})
	assert.ErrorIs(t, wf.SetQuantity(7, -1), ErrNegativeQuantity)
	require.NoError(t, wf.SetQuantity(7, 3))
	assert.Equal(t, 3, wf.Quantity(7))
}

func TestEntriesExcludeZeroQuantities(t *testing.T) {
	wf := New(&fakeBackend{menu: testMenu()})
	require.NoError(t, wf.LoadMenu(context.Background()))
	require.NoError(t, wf.SetQuantity(7, 2))
	require.NoError(t, wf.SetQuantity(9, 0))

	entries := wf.Entries()
	assert.Equal(t, []api.OrderEntry{{MenuItem: 7, Quantity: 2}}, entries)
}

func TestSubmitEmptyDraftMakesNoNetworkCall(t *testing.T) {
	backend := &fakeBackend{menu: testMenu()}
	wf := New(backend)
	require.NoError(t, wf.LoadMenu(context.Background()))
	require.NoError(t, wf.SetQuantity(7, 0))

	_, err := wf.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Zero(t, backend.submitCalls)
}

func TestSubmitAdoptsResponseAndRefreshesMenu(t *testing.T) {
	backend := &fakeBackend{
		menu: testMenu(),
		placed: models.Order{
			ID: 77, TableNumber: 5, Status: models.OrderInProgress,
			Items: []models.OrderItem{{MenuItem: 7, Quantity: 2}},
		},
	}
	wf := New(backend)
	require.NoError(t, wf.LoadMenu(context.Background()))
	require.NoError(t, wf.SelectTable(context.Background(), 5))
	require.NoError(t, wf.SetQuantity(7, 2))

	placed, err := wf.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 77, placed.ID)
	require.NotNil(t, wf.Current())
	assert.Equal(t, models.OrderInProgress, wf.Current().Status)
	assert.Equal(t, 5, backend.lastSubmitTable)
	assert.Equal(t, []api.OrderEntry{{MenuItem: 7, Quantity: 2}}, backend.lastSubmitItems)
	// Availability changed server-side; the menu must be re-fetched.
	assert.Equal(t, 2, backend.menuCalls)
}

func TestSubmitFailureLeavesStateUntouched(t *testing.T) {
	backend := &fakeBackend{menu: testMenu(), submitErr: errors.New("boom")}
	wf := New(backend)
	require.NoError(t, wf.LoadMenu(context.Background()))
	require.NoError(t, wf.SetQuantity(7, 2))

	_, err := wf.Submit(context.Background())
	require.Error(t, err)

	assert.Nil(t, wf.Current())
	assert.Equal(t, 2, wf.Quantity(7))
	assert.Equal(t, 1, backend.menuCalls)
}

func TestCompleteTransitionsOnce(t *testing.T) {
	backend := &fakeBackend{
		menu: testMenu(),
		orders: map[int][]models.Order{
			3: {{ID: 42, Status: models.OrderInProgress, Items: []models.OrderItem{{MenuItem: 7, Quantity: 2}}}},
		},
	}
	wf := New(backend)
	require.NoError(t, wf.LoadMenu(context.Background()))
	require.NoError(t, wf.SelectTable(context.Background(), 3))

	require.NoError(t, wf.Complete(context.Background()))
	assert.Equal(t, models.OrderCompleted, wf.Current().Status)

	assert.ErrorIs(t, wf.Complete(context.Background()), ErrAlreadyCompleted)
	assert.Equal(t, 1, backend.completeCalls)
}

func TestCompleteWithoutOrder(t *testing.T) {
	wf := New(&fakeBackend{})
	assert.ErrorIs(t, wf.Complete(context.Background()), ErrNoOrder)
}

func TestCompleteFailureKeepsStatus(t *testing.T) {
	backend := &fakeBackend{
		menu: testMenu(),
		orders: map[int][]models.Order{
			3: {{ID: 42, Status: models.OrderInProgress}},
		},
		completeErr: errors.New("boom"),
	}
	wf := New(backend)
	require.NoError(t, wf.SelectTable(context.Background(), 3))

	require.Error(t, wf.Complete(context.Background()))
	assert.Equal(t, models.OrderInProgress, wf.Current().Status)
}

func TestTotalDerivesFromDraftAndMenu(t *testing.T) {
	wf := New(&fakeBackend{menu: testMenu()})
	require.NoError(t, wf.LoadMenu(context.Background()))

	require.NoError(t, wf.SetQuantity(7, 3)) // 9.50 × 3 = 28.50
	assert.InDelta(t, 28.50, wf.Total(), 1e-9)

	require.NoError(t, wf.SetQuantity(9, 2)) // + 4.00 × 2
	assert.InDelta(t, 36.50, wf.Total(), 1e-9)

	// A draft id missing from the menu contributes zero.
	require.NoError(t, wf.SetQuantity(999, 4))
	assert.InDelta(t, 36.50, wf.Total(), 1e-9)

	// Changing one entry recomputes deterministically.
	require.NoError(t, wf.SetQuantity(7, 1))
	assert.InDelta(t, 17.50, wf.Total(), 1e-9)
}
