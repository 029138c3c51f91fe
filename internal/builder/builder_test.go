package builder

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/afrofeast/internal/catalog"
	"github.com/kingrea/afrofeast/internal/order"
)

type fixture struct {
	catalog *catalog.Catalog
	store   *order.Store
	builder *Builder
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()
	cat := catalog.New(catalog.Default())
	n := 0
	store := order.NewStore(order.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("ord_%03d", n)
	}))
	line := 0
	base := []Option{
		WithProcessingDelay(0),
		WithPicker(func(int) int { return 0 }),
		WithLineIDGenerator(func() string {
			line++
			return fmt.Sprintf("line-%d", line)
		}),
	}
	return fixture{
		catalog: cat,
		store:   store,
		builder: New(cat, store, append(base, opts...)...),
	}
}

// walkTo advances with Next until the builder reaches step.
func walkTo(t *testing.T, b *Builder, step Step) {
	t.Helper()
	for b.State().Step != step {
		require.True(t, b.Next(), "blocked at %s on the way to %s", b.State().Step, step)
	}
}

func TestChooseDiningOptionRoutesScheduling(t *testing.T) {
	for _, opt := range catalog.DiningOptions {
		t.Run(string(opt), func(t *testing.T) {
			f := newFixture(t)
			require.True(t, f.builder.ChooseDiningOption(opt))
			want := StepStarters
			if opt.RequiresScheduling() {
				want = StepScheduling
			}
			assert.Equal(t, want, f.builder.State().Step)
			assert.False(t, f.builder.ChooseDiningOption(opt), "only valid from mode selection")
		})
	}
}

func TestSchedulingRequiresDateTimeAndDeliveryAddress(t *testing.T) {
	f := newFixture(t)
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.Delivery))

	assert.False(t, b.CanAdvance())
	assert.False(t, b.Next())

	require.True(t, b.SetSchedule(Schedule{Date: "2026-03-07", Time: "19:30"}))
	assert.False(t, b.Next(), "delivery needs an address")
	assert.Equal(t, StepScheduling, b.State().Step)

	require.True(t, b.SetSchedule(Schedule{Date: "2026-03-07", Time: "19:30", Address: "Rue 1.750, Bastos"}))
	assert.True(t, b.CanAdvance())
	require.True(t, b.Next())
	assert.Equal(t, StepStarters, b.State().Step)

	state := b.State()
	assert.Equal(t, 1, state.Schedule.GuestCount)
	assert.Equal(t, order.EventStandard, state.Schedule.EventType)
}

func TestBackFromStartersDependsOnScheduling(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.builder.ChooseDiningOption(catalog.EatIn))
	require.True(t, f.builder.Back())
	assert.Equal(t, StepModeSelection, f.builder.State().Step)
	assert.False(t, f.builder.Back())

	g := newFixture(t)
	require.True(t, g.builder.ChooseDiningOption(catalog.Pickup))
	require.True(t, g.builder.SetSchedule(Schedule{Date: "2026-03-07", Time: "12:00"}))
	require.True(t, g.builder.Next())
	require.True(t, g.builder.Back())
	assert.Equal(t, StepScheduling, g.builder.State().Step)
	require.True(t, g.builder.Back())
	assert.Equal(t, StepModeSelection, g.builder.State().Step)
}

func TestCourseStepsWalkForwardAndBack(t *testing.T) {
	f := newFixture(t)
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.EatIn))
	for _, want := range []Step{StepMains, StepDrinks, StepSides, StepConfirmation} {
		require.True(t, b.Next())
		assert.Equal(t, want, b.State().Step)
	}
	for _, want := range []Step{StepSides, StepDrinks, StepMains, StepStarters} {
		require.True(t, b.Back())
		assert.Equal(t, want, b.State().Step)
	}
}

func TestVisibleItemsFilterByCourseAndOption(t *testing.T) {
	f := newFixture(t)
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.Takeaway))
	starters := b.VisibleItems()
	require.Len(t, starters, 1)
	assert.Equal(t, "5", starters[0].ID)

	require.True(t, b.Next())
	for _, item := range b.VisibleItems() {
		assert.NotEqual(t, "r1", item.ID)
	}
	require.True(t, b.Next())
	drinks := b.VisibleItems()
	require.Len(t, drinks, 1)
	assert.Equal(t, "7", drinks[0].ID, "the fizz is not offered for takeaway")

	_, ok := b.AddItem("16", nil)
	assert.False(t, ok)
}

func TestScenarioEatInSingleDish(t *testing.T) {
	for _, method := range []order.PaymentMethod{order.PaymentMobileMoney, order.PaymentBanknotes} {
		t.Run(string(method), func(t *testing.T) {
			f := newFixture(t)
			b := f.builder
			require.True(t, b.ChooseDiningOption(catalog.EatIn))
			walkTo(t, b, StepMains)
			_, ok := b.AddItem("1", nil)
			require.True(t, ok)
			walkTo(t, b, StepConfirmation)
			require.True(t, b.SetCustomerName("Ama"))
			require.True(t, b.Next())
			assert.Equal(t, order.PaymentNone, b.State().PaymentMethod, "eat-in offers a choice")
			assert.False(t, b.CanFinalize())
			require.True(t, b.SetPaymentMethod(method))

			placed, err := b.Finalize(context.Background())
			require.NoError(t, err)
			assert.EqualValues(t, 8500, placed.TotalAmount)
			assert.EqualValues(t, 0, placed.DepositAmount)
			assert.Equal(t, 25, placed.MaxEstimatedTime)
			assert.False(t, placed.IsPaid)
			assert.Equal(t, "08", placed.TableNumber)
			assert.Equal(t, DefaultGifts[0], placed.Gift)
			assert.Equal(t, "Chef Amara", placed.ChefName)
			assert.Equal(t, order.StatusPending, placed.Status)
		})
	}
}

func TestScenarioReservationDepositAndMobileMoney(t *testing.T) {
	f := newFixture(t)
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.Reservation))
	require.True(t, b.SetSchedule(Schedule{
		Date: "2026-03-14", Time: "20:00", GuestCount: 4, EventType: order.EventAnniversary,
	}))
	require.True(t, b.Next())
	walkTo(t, b, StepMains)
	_, ok := b.AddItem("1", nil) // 8500
	require.True(t, ok)
	_, ok = b.AddItem("2", nil) // 12500
	require.True(t, ok)
	walkTo(t, b, StepConfirmation)
	require.True(t, b.RemoveItem("line-2"))
	_, ok = b.AddItem("1", nil)
	assert.False(t, ok, "confirmation is not a course step")
	require.True(t, b.Back())
	_, ok = b.AddItem("7", nil)
	assert.False(t, ok, "drinks are picked on the drinks course")
	require.True(t, b.Back())
	_, ok = b.AddItem("7", nil) // 3500
	require.True(t, ok)
	_, ok = b.AddItem("16", []string{}) // 5500
	require.True(t, ok)
	_, ok = b.AddItem("7", nil) // 3500
	require.True(t, ok)
	walkTo(t, b, StepConfirmation)
	require.True(t, b.SelectChef("c3"))
	require.True(t, b.SetCustomerName("Madame Ekwueme"))
	require.True(t, b.SetInstructions("  Window table please "))

	state := b.State()
	assert.EqualValues(t, 21000, state.Total)
	assert.EqualValues(t, 10500, state.Deposit)

	require.True(t, b.Next())
	assert.Equal(t, []order.PaymentMethod{order.PaymentMobileMoney}, b.PaymentMethods())
	assert.Equal(t, order.PaymentMobileMoney, b.State().PaymentMethod, "sole method is preselected")
	assert.False(t, b.SetPaymentMethod(order.PaymentBanknotes))

	placed, err := b.Finalize(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 21000, placed.TotalAmount)
	assert.EqualValues(t, 10500, placed.DepositAmount)
	assert.True(t, placed.IsPaid)
	assert.Equal(t, 4, placed.GuestCount)
	assert.Equal(t, order.EventAnniversary, placed.EventType)
	assert.Equal(t, "2026-03-14", placed.ReservationDate)
	assert.Equal(t, "20:00", placed.ReservationTime)
	assert.Equal(t, "Chef Fatou", placed.ChefName)
	assert.Equal(t, "Window table please", placed.SpecialInstructions)
	assert.Empty(t, placed.DeliveryAddress)
}

func TestScenarioRepeatedDishStaysSeparateLines(t *testing.T) {
	f := newFixture(t)
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.EatIn))
	require.True(t, b.Next())

	plain, ok := b.AddItem("1", nil)
	require.True(t, ok)
	dressed, ok := b.AddItem("1", []string{"m1", "m4", "m2"})
	require.True(t, ok)

	cart := b.State().Cart
	require.Len(t, cart, 2)
	assert.NotEqual(t, plain.ID, dressed.ID)
	assert.EqualValues(t, 8500, cart[0].TotalPrice)
	assert.EqualValues(t, 9300, cart[1].TotalPrice)
	require.Len(t, cart[1].Modifiers, 2, "m2 is not offered on jollof")
	assert.Equal(t, "m1", cart[1].Modifiers[0].ID)
	assert.Equal(t, "m4", cart[1].Modifiers[1].ID)
}

func TestScenarioConfirmationNeedsCustomerName(t *testing.T) {
	f := newFixture(t)
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.EatIn))
	_, ok := b.AddItem("5", nil)
	require.True(t, ok)
	walkTo(t, b, StepConfirmation)

	require.True(t, b.SetCustomerName("   "))
	assert.False(t, b.Next())
	assert.Equal(t, StepConfirmation, b.State().Step)

	require.True(t, b.SetCustomerName("Yaw"))
	require.True(t, b.RemoveItem("line-1"))
	assert.False(t, b.Next(), "empty cart is blocked")
	assert.Equal(t, StepConfirmation, b.State().Step)
}

func TestStateCartIsACopy(t *testing.T) {
	f := newFixture(t)
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.EatIn))
	walkTo(t, b, StepMains)
	_, ok := b.AddItem("1", []string{"m1"})
	require.True(t, ok)

	st := b.State()
	st.Cart[0].Modifiers[0].Price = 1
	st.Cart[0].Modifiers[0].Name = "tampered"

	line := b.State().Cart[0]
	assert.EqualValues(t, 800, line.Modifiers[0].Price)
	assert.Equal(t, "Signature Alloco Garnish", line.Modifiers[0].Name)
	assert.EqualValues(t, 9300, line.TotalPrice)
}

func TestDeliveryOrderCarriesAddress(t *testing.T) {
	f := newFixture(t)
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.Delivery))
	require.True(t, b.SetSchedule(Schedule{Date: "2026-03-07", Time: "13:00", Address: "Bonapriso"}))
	walkTo(t, b, StepMains)
	_, ok := b.AddItem("2", []string{"m5"})
	require.True(t, ok)
	walkTo(t, b, StepConfirmation)
	require.True(t, b.SetCustomerName("Eto'o"))
	require.True(t, b.Next())

	placed, err := b.Finalize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, order.DeliveryTable, placed.TableNumber)
	assert.Equal(t, "Bonapriso", placed.DeliveryAddress)
	assert.True(t, placed.IsPaid)
	assert.EqualValues(t, 0, placed.DepositAmount)
}

func TestFinalizeBlockedWithoutPaymentStep(t *testing.T) {
	f := newFixture(t)
	_, err := f.builder.Finalize(context.Background())
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, 0, f.store.Len())
}

func readyEatIn(t *testing.T, f fixture) {
	t.Helper()
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.EatIn))
	_, ok := b.AddItem("5", nil)
	require.True(t, ok)
	walkTo(t, b, StepConfirmation)
	require.True(t, b.SetCustomerName("Abena"))
	require.True(t, b.Next())
	require.True(t, b.SetPaymentMethod(order.PaymentBanknotes))
}

func TestFinalizeResetsSession(t *testing.T) {
	f := newFixture(t)
	readyEatIn(t, f)
	_, err := f.builder.Finalize(context.Background())
	require.NoError(t, err)

	state := f.builder.State()
	assert.Equal(t, StepModeSelection, state.Step)
	assert.Empty(t, state.Cart)
	assert.Empty(t, state.CustomerName)
	assert.Equal(t, order.PaymentNone, state.PaymentMethod)
	assert.False(t, state.Processing)
	assert.Equal(t, 1, f.store.Len())
}

func TestFinalizeRejectsSecondRequestAndFreezesCart(t *testing.T) {
	f := newFixture(t, WithProcessingDelay(200*time.Millisecond))
	readyEatIn(t, f)

	type result struct {
		placed order.Order
		err    error
	}
	done := make(chan result, 1)
	go func() {
		placed, err := f.builder.Finalize(context.Background())
		done <- result{placed, err}
	}()
	require.Eventually(t, f.builder.Processing, time.Second, 5*time.Millisecond)

	_, err := f.builder.Finalize(context.Background())
	assert.ErrorIs(t, err, ErrFinalizeInFlight)
	assert.False(t, f.builder.RemoveItem("line-1"))
	assert.False(t, f.builder.SetCustomerName("Someone else"))
	assert.False(t, f.builder.Back())
	assert.False(t, f.builder.Reset())
	assert.Equal(t, 0, f.store.Len(), "order is not visible while processing")

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "Abena", res.placed.CustomerName)
	assert.Equal(t, 1, f.store.Len())
}

func TestFinalizeCancellationKeepsSession(t *testing.T) {
	f := newFixture(t, WithProcessingDelay(time.Hour))
	readyEatIn(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := f.builder.Finalize(ctx)
		done <- err
	}()
	require.Eventually(t, f.builder.Processing, time.Second, 5*time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	state := f.builder.State()
	assert.False(t, state.Processing)
	assert.Equal(t, StepPayment, state.Step)
	assert.Len(t, state.Cart, 1)
	assert.Equal(t, 0, f.store.Len())
}

func TestGiftPickedFromConfiguredList(t *testing.T) {
	gifts := []string{"Palm Nectar", "Petit Fours", "Kitchen Tour"}
	f := newFixture(t, WithGifts(gifts), WithPicker(func(n int) int { return n - 1 }))
	readyEatIn(t, f)
	placed, err := f.builder.Finalize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Tour", placed.Gift)
}

func TestSessionKeepsSnapshotUntilReset(t *testing.T) {
	f := newFixture(t)
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.EatIn))

	item, _ := f.catalog.Snapshot().Item("5")
	item.Price = 7000
	_, err := f.catalog.UpsertMenuItem(item)
	require.NoError(t, err)

	line, ok := b.AddItem("5", nil)
	require.True(t, ok)
	assert.EqualValues(t, 6500, line.TotalPrice, "mid-session edits are not observed")

	require.True(t, b.Reset())
	require.True(t, b.ChooseDiningOption(catalog.EatIn))
	line, ok = b.AddItem("5", nil)
	require.True(t, ok)
	assert.EqualValues(t, 7000, line.TotalPrice)
}

func TestDailyOffersUseSessionSnapshot(t *testing.T) {
	cat := catalog.New(catalog.Default())
	_, err := cat.AddSpecialOffer(catalog.SpecialOffer{Title: "Jollof Tuesday", Day: "Tuesday", IsActive: true})
	require.NoError(t, err)
	b := New(cat, order.NewStore(), WithProcessingDelay(0))

	tuesday := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	offers := b.DailyOffers(tuesday)
	require.Len(t, offers, 1)
	assert.Equal(t, "Jollof Tuesday", offers[0].Title)
	assert.Empty(t, b.DailyOffers(tuesday.AddDate(0, 0, 1)))
}

func TestChangingDiningOptionClearsCart(t *testing.T) {
	f := newFixture(t)
	b := f.builder
	require.True(t, b.ChooseDiningOption(catalog.EatIn))
	_, ok := b.AddItem("5", nil)
	require.True(t, ok)
	require.True(t, b.Back())
	require.True(t, b.ChooseDiningOption(catalog.EatIn))
	assert.Len(t, b.State().Cart, 1, "same option keeps the cart")
	require.True(t, b.Back())
	require.True(t, b.ChooseDiningOption(catalog.Takeaway))
	assert.Empty(t, b.State().Cart)
}

func TestStepLabels(t *testing.T) {
	labels := make([]string, 0, len(Steps))
	for _, s := range Steps {
		labels = append(labels, s.Label())
	}
	assert.Equal(t, []string{
		"Experience", "Logistics", "Beginnings", "Signatures",
		"Elixirs", "Accompaniments", "Review", "Checkout",
	}, labels)
	cat, ok := StepDrinks.Category()
	assert.True(t, ok)
	assert.Equal(t, catalog.Drinks, cat)
	_, ok = StepPayment.Category()
	assert.False(t, ok)
}
