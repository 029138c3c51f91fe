package order

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/afrofeast/internal/catalog"
)

type testClock struct {
	value time.Time
}

func (c *testClock) Now() time.Time { return c.value }

func (c *testClock) Advance(d time.Duration) { c.value = c.value.Add(d) }

func newTestStore(clock *testClock) *Store {
	n := 0
	return NewStore(
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("ord_%03d", n)
		}),
	)
}

func samplePlacement(t *testing.T, opt catalog.DiningOption) Placement {
	t.Helper()
	jollof, _ := seedItem(t, "1")
	return Placement{
		CustomerName: "Kwame",
		ChefName:     "Chef Kofi",
		Items:        []OrderItem{Compose(jollof, nil, "line-1")},
		DiningOption: opt,
		GuestCount:   1,
		EventType:    EventStandard,
	}
}

func TestPlaceOrderPrependsNewest(t *testing.T) {
	clock := &testClock{value: time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)

	first := store.PlaceOrder(samplePlacement(t, catalog.EatIn))
	clock.Advance(time.Minute)
	second := store.PlaceOrder(samplePlacement(t, catalog.Takeaway))

	assert.Equal(t, "ord_001", first.ID)
	assert.Equal(t, "08", first.TableNumber)
	recent := store.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, second.ID, recent[0].ID)
	assert.Equal(t, first.ID, recent[1].ID)
	assert.Equal(t, clock.Now(), recent[0].CreatedAt)
}

func TestPlaceOrderUsesConfiguredTable(t *testing.T) {
	store := NewStore(WithTableNumber(" 11 "))
	o := store.PlaceOrder(samplePlacement(t, catalog.EatIn))
	assert.Equal(t, "11", o.TableNumber)
	assert.Regexp(t, `^ord_[0-9a-f]{9}$`, o.ID)

	d := store.PlaceOrder(samplePlacement(t, catalog.Delivery))
	assert.Equal(t, DeliveryTable, d.TableNumber)
}

func TestInsertRejectsDuplicateIDs(t *testing.T) {
	store := NewStore()
	demo := DemoOrder(time.Now())
	require.NoError(t, store.Insert(demo))
	assert.ErrorIs(t, store.Insert(demo), ErrDuplicateOrder)
	assert.Equal(t, 1, store.Len())
}

func TestUpdateStatusFollowsKitchenLifecycle(t *testing.T) {
	clock := &testClock{value: time.Now()}
	store := newTestStore(clock)
	o := store.PlaceOrder(samplePlacement(t, catalog.EatIn))

	require.NoError(t, store.UpdateStatus(o.ID, StatusPreparing))
	require.NoError(t, store.UpdateStatus(o.ID, StatusReady))

	got, ok := store.Get(o.ID)
	require.True(t, ok)
	assert.Equal(t, StatusReady, got.Status)
	assert.Equal(t, o.TotalAmount, got.TotalAmount)
	assert.Equal(t, o.Items, got.Items)
}

func TestUpdateStatusRejectsSkipsAndReversals(t *testing.T) {
	clock := &testClock{value: time.Now()}
	store := newTestStore(clock)
	o := store.PlaceOrder(samplePlacement(t, catalog.EatIn))
	before := store.Recent()

	assert.ErrorIs(t, store.UpdateStatus(o.ID, StatusReady), ErrInvalidTransition)
	assert.ErrorIs(t, store.UpdateStatus(o.ID, StatusPickedUp), ErrInvalidTransition)
	assert.ErrorIs(t, store.UpdateStatus(o.ID, StatusPending), ErrInvalidTransition)
	assert.Equal(t, before, store.Recent())

	require.NoError(t, store.UpdateStatus(o.ID, StatusPreparing))
	assert.ErrorIs(t, store.UpdateStatus(o.ID, StatusPending), ErrInvalidTransition)
}

func TestUpdateStatusUnknownIDIsNoop(t *testing.T) {
	clock := &testClock{value: time.Now()}
	store := newTestStore(clock)
	store.PlaceOrder(samplePlacement(t, catalog.EatIn))
	before := store.Recent()

	assert.NoError(t, store.UpdateStatus("ord_missing", StatusPreparing))
	assert.Equal(t, before, store.Recent())
}

func TestAdvanceWalksForwardOnly(t *testing.T) {
	clock := &testClock{value: time.Now()}
	store := newTestStore(clock)
	o := store.PlaceOrder(samplePlacement(t, catalog.EatIn))

	next, err := store.Advance(o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, next)
	next, err = store.Advance(o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusReady, next)

	_, err = store.Advance(o.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	got, _ := store.Get(o.ID)
	assert.Equal(t, StatusReady, got.Status)

}

func TestAdvanceUnknownIDIsNoop(t *testing.T) {
	clock := &testClock{value: time.Now()}
	store := newTestStore(clock)
	store.PlaceOrder(samplePlacement(t, catalog.EatIn))
	before := store.Recent()

	next, err := store.Advance("ord_missing")
	assert.NoError(t, err)
	assert.Empty(t, next)
	assert.Equal(t, before, store.Recent())
}

func TestActiveAndWithStatusAreOldestFirst(t *testing.T) {
	clock := &testClock{value: time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)}
	store := newTestStore(clock)
	a := store.PlaceOrder(samplePlacement(t, catalog.EatIn))
	clock.Advance(time.Minute)
	b := store.PlaceOrder(samplePlacement(t, catalog.EatIn))
	clock.Advance(time.Minute)
	c := store.PlaceOrder(samplePlacement(t, catalog.EatIn))

	_, _ = store.Advance(b.ID)
	_, _ = store.Advance(c.ID)
	_, _ = store.Advance(c.ID)

	active := store.Active()
	require.Len(t, active, 2)
	assert.Equal(t, a.ID, active[0].ID)
	assert.Equal(t, b.ID, active[1].ID)

	ready := store.WithStatus(StatusReady)
	require.Len(t, ready, 1)
	assert.Equal(t, c.ID, ready[0].ID)
	assert.Empty(t, store.WithStatus(StatusPickedUp))
}

func TestReturnedOrdersAreCopies(t *testing.T) {
	store := NewStore()
	o := store.PlaceOrder(samplePlacement(t, catalog.EatIn))
	o.Items[0].TotalPrice = 1
	got, _ := store.Get(o.ID)
	assert.EqualValues(t, 8500, got.Items[0].TotalPrice)
}
