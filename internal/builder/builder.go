// Package builder drives a guest through the ordering flow, from choosing how
// to dine through payment, and hands the finished order to the order store.
package builder

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kingrea/afrofeast/internal/catalog"
	"github.com/kingrea/afrofeast/internal/order"
)

const (
	// DefaultProcessingDelay is how long payment processing is simulated.
	DefaultProcessingDelay = 2500 * time.Millisecond
)

var (
	// ErrNotReady is returned by Finalize outside the payment step or without
	// a payment method.
	ErrNotReady = errors.New("builder: order is not ready to finalize")
	// ErrFinalizeInFlight is returned when a finalize is already processing.
	ErrFinalizeInFlight = errors.New("builder: finalize already in progress")
)

// DefaultGifts are the rewards a guest may receive with an order.
var DefaultGifts = []string{
	"Complimentary House-made Petit Fours",
	"Voucher: 15% off your next Suite Dining",
	"Signature Glass of Reserve Palm Nectar",
	"Artisanal Coffee & Truffle Selection",
	"Private Kitchen Tour Invitation",
}

// CatalogSource provides the catalog snapshot a session orders from.
type CatalogSource interface {
	Snapshot() catalog.Snapshot
}

// OrderSink accepts finished orders.
type OrderSink interface {
	PlaceOrder(p order.Placement) order.Order
}

// Schedule holds the logistics captured for reservations, pickups and
// deliveries.
type Schedule struct {
	Date       string
	Time       string
	Address    string
	GuestCount int
	EventType  order.EventType
}

// State is a read-only view of the session for rendering.
type State struct {
	Step          Step
	DiningOption  catalog.DiningOption
	Schedule      Schedule
	Cart          []order.OrderItem
	CustomerName  string
	Instructions  string
	Chef          catalog.Chef
	PaymentMethod order.PaymentMethod
	Total         int64
	Deposit       int64
	Processing    bool
}

// Builder is the per-terminal ordering session.
type Builder struct {
	mu sync.Mutex

	source CatalogSource
	sink   OrderSink
	snap   catalog.Snapshot

	delay     time.Duration
	gifts     []string
	pick      func(n int) int
	newLineID func() string

	step         Step
	option       catalog.DiningOption
	schedule     Schedule
	cart         []order.OrderItem
	customerName string
	instructions string
	chefID       string
	payment      order.PaymentMethod
	processing   bool
}

// Option customizes the builder instance.
type Option func(*Builder)

// WithProcessingDelay sets the simulated payment processing time.
func WithProcessingDelay(d time.Duration) Option {
	return func(b *Builder) {
		if d >= 0 {
			b.delay = d
		}
	}
}

// WithGifts replaces the reward list.
func WithGifts(gifts []string) Option {
	return func(b *Builder) {
		if len(gifts) > 0 {
			b.gifts = append([]string(nil), gifts...)
		}
	}
}

// WithPicker injects the random index source used to pick a gift. It must
// return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(b *Builder) {
		if pick != nil {
			b.pick = pick
		}
	}
}

// WithLineIDGenerator overrides how cart line IDs are minted.
func WithLineIDGenerator(fn func() string) Option {
	return func(b *Builder) {
		if fn != nil {
			b.newLineID = fn
		}
	}
}

// New starts a session against the given catalog and order sink.
func New(source CatalogSource, sink OrderSink, opts ...Option) *Builder {
	b := &Builder{
		source:    source,
		sink:      sink,
		delay:     DefaultProcessingDelay,
		gifts:     append([]string(nil), DefaultGifts...),
		pick:      rand.IntN,
		newLineID: func() string { return "item_" + uuid.NewString() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	b.resetLocked()
	return b
}

// Reset abandons the session and starts a fresh one.
func (b *Builder) Reset() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing {
		return false
	}
	b.resetLocked()
	return true
}

func (b *Builder) resetLocked() {
	b.snap = b.source.Snapshot()
	b.step = StepModeSelection
	b.option = ""
	b.schedule = Schedule{GuestCount: 1, EventType: order.EventStandard}
	b.cart = nil
	b.customerName = ""
	b.instructions = ""
	b.payment = order.PaymentNone
	b.processing = false
	b.chefID = ""
	if len(b.snap.Chefs) > 0 {
		b.chefID = b.snap.Chefs[0].ID
	}
}

// State returns a copy of the session.
func (b *Builder) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := order.Total(b.cart)
	chef, _ := b.snap.Chef(b.chefID)
	cart := make([]order.OrderItem, len(b.cart))
	for i, line := range b.cart {
		line.Modifiers = append([]catalog.Modifier(nil), line.Modifiers...)
		cart[i] = line
	}
	return State{
		Step:          b.step,
		DiningOption:  b.option,
		Schedule:      b.schedule,
		Cart:          cart,
		CustomerName:  b.customerName,
		Instructions:  b.instructions,
		Chef:          chef,
		PaymentMethod: b.payment,
		Total:         total,
		Deposit:       order.DepositFor(b.option, total),
		Processing:    b.processing,
	}
}

// Catalog returns the snapshot the session was started with.
func (b *Builder) Catalog() catalog.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap
}

// ChooseDiningOption leaves MODE_SELECTION. Options that need logistics go to
// SCHEDULING, the rest straight to STARTERS.
func (b *Builder) ChooseDiningOption(opt catalog.DiningOption) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing || b.step != StepModeSelection || !opt.Valid() {
		return false
	}
	if b.option != opt {
		b.cart = nil
	}
	b.option = opt
	if opt.RequiresScheduling() {
		b.step = StepScheduling
	} else {
		b.step = StepStarters
	}
	return true
}

// SetSchedule records the logistics form.
func (b *Builder) SetSchedule(s Schedule) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing || b.step != StepScheduling {
		return false
	}
	s.Date = strings.TrimSpace(s.Date)
	s.Time = strings.TrimSpace(s.Time)
	s.Address = strings.TrimSpace(s.Address)
	if s.GuestCount < 1 {
		s.GuestCount = 1
	}
	if s.EventType == "" {
		s.EventType = order.EventStandard
	}
	b.schedule = s
	return true
}

// CanAdvance reports whether Next would move forward.
func (b *Builder) CanAdvance() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.nextLocked()
	return ok
}

// Next moves one step forward when the current step's requirements are met.
// A blocked transition returns false and changes nothing.
func (b *Builder) Next() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	next, ok := b.nextLocked()
	if !ok {
		return false
	}
	b.step = next
	if next == StepPayment {
		methods := order.PaymentMethodsFor(b.option)
		if !slices.Contains(methods, b.payment) {
			b.payment = order.PaymentNone
		}
		if len(methods) == 1 {
			b.payment = methods[0]
		}
	}
	return true
}

func (b *Builder) nextLocked() (Step, bool) {
	if b.processing {
		return b.step, false
	}
	switch b.step {
	case StepScheduling:
		if b.schedule.Date == "" || b.schedule.Time == "" {
			return b.step, false
		}
		if b.option == catalog.Delivery && b.schedule.Address == "" {
			return b.step, false
		}
		return StepStarters, true
	case StepStarters, StepMains, StepDrinks, StepSides:
		return b.step + 1, true
	case StepConfirmation:
		if len(b.cart) == 0 || strings.TrimSpace(b.customerName) == "" {
			return b.step, false
		}
		return StepPayment, true
	}
	return b.step, false
}

// Back retreats one step. From STARTERS it returns to SCHEDULING or
// MODE_SELECTION depending on the dining option.
func (b *Builder) Back() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing {
		return false
	}
	switch b.step {
	case StepModeSelection:
		return false
	case StepScheduling:
		b.step = StepModeSelection
	case StepStarters:
		if b.option.RequiresScheduling() {
			b.step = StepScheduling
		} else {
			b.step = StepModeSelection
		}
	default:
		b.step--
	}
	return true
}

// VisibleItems lists the current course's dishes that allow the dining option.
func (b *Builder) VisibleItems() []catalog.MenuItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	cat, ok := b.step.Category()
	if !ok {
		return nil
	}
	return b.snap.InCategory(cat, b.option)
}

// ModifiersFor lists the modifiers a dish offers.
func (b *Builder) ModifiersFor(menuItemID string) []catalog.Modifier {
	b.mu.Lock()
	defer b.mu.Unlock()
	item, ok := b.snap.Item(menuItemID)
	if !ok {
		return nil
	}
	return b.snap.ModifiersFor(item)
}

// AddItem composes a line for a dish of the current course with the chosen
// modifiers and appends it to the cart. Modifiers the dish does not offer are ignored. Every call
// adds a new line, even for a dish already in the cart.
func (b *Builder) AddItem(menuItemID string, modifierIDs []string) (order.OrderItem, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing {
		return order.OrderItem{}, false
	}
	cat, ok := b.step.Category()
	if !ok {
		return order.OrderItem{}, false
	}
	item, ok := b.snap.Item(menuItemID)
	if !ok || item.Category != cat || !item.Allows(b.option) {
		return order.OrderItem{}, false
	}
	var chosen []catalog.Modifier
	for _, mod := range b.snap.ModifiersFor(item) {
		if slices.Contains(modifierIDs, mod.ID) {
			chosen = append(chosen, mod)
		}
	}
	line := order.Compose(item, chosen, b.newLineID())
	b.cart = append(b.cart, line)
	return line, true
}

// RemoveItem drops a cart line.
func (b *Builder) RemoveItem(lineID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing {
		return false
	}
	for i := range b.cart {
		if b.cart[i].ID == lineID {
			b.cart = slices.Delete(b.cart, i, i+1)
			return true
		}
	}
	return false
}

func (b *Builder) SetCustomerName(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing {
		return false
	}
	b.customerName = name
	return true
}

func (b *Builder) SetInstructions(text string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing {
		return false
	}
	b.instructions = text
	return true
}

// SelectChef records the guest's chef preference.
func (b *Builder) SelectChef(chefID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing {
		return false
	}
	if _, ok := b.snap.Chef(chefID); !ok {
		return false
	}
	b.chefID = chefID
	return true
}

// PaymentMethods lists what the guest may pay with.
func (b *Builder) PaymentMethods() []order.PaymentMethod {
	b.mu.Lock()
	defer b.mu.Unlock()
	return order.PaymentMethodsFor(b.option)
}

// SetPaymentMethod picks a payment method during checkout.
func (b *Builder) SetPaymentMethod(m order.PaymentMethod) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing || b.step != StepPayment || !order.AcceptsPayment(b.option, m) {
		return false
	}
	b.payment = m
	return true
}

// CanFinalize reports whether Finalize would start processing.
func (b *Builder) CanFinalize() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.processing && b.readyLocked()
}

func (b *Builder) readyLocked() bool {
	return b.step == StepPayment &&
		b.payment != order.PaymentNone &&
		len(b.cart) > 0 &&
		strings.TrimSpace(b.customerName) != ""
}

// Processing reports whether a finalize is waiting on payment.
func (b *Builder) Processing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.processing
}

// Finalize simulates payment processing, then places the order and starts a
// fresh session. The session is frozen while processing. Cancelling ctx
// during the wait unfreezes the session unchanged and returns ctx.Err().
func (b *Builder) Finalize(ctx context.Context) (order.Order, error) {
	b.mu.Lock()
	if b.processing {
		b.mu.Unlock()
		return order.Order{}, ErrFinalizeInFlight
	}
	if !b.readyLocked() {
		b.mu.Unlock()
		return order.Order{}, ErrNotReady
	}
	b.processing = true
	delay := b.delay
	b.mu.Unlock()

	if err := wait(ctx, delay); err != nil {
		b.mu.Lock()
		b.processing = false
		b.mu.Unlock()
		return order.Order{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	placed := b.sink.PlaceOrder(b.placementLocked())
	b.resetLocked()
	return placed, nil
}

func (b *Builder) placementLocked() order.Placement {
	total := order.Total(b.cart)
	chef, _ := b.snap.Chef(b.chefID)
	p := order.Placement{
		CustomerName:        strings.TrimSpace(b.customerName),
		ChefName:            chef.Name,
		Items:               b.cart,
		DiningOption:        b.option,
		GuestCount:          b.schedule.GuestCount,
		EventType:           b.schedule.EventType,
		SpecialInstructions: strings.TrimSpace(b.instructions),
		Gift:                b.pickGift(),
		DepositAmount:       order.DepositFor(b.option, total),
		PaymentMethod:       b.payment,
		IsPaid:              order.PaidAtOrder(b.payment, b.option),
	}
	if b.option.RequiresScheduling() {
		p.ReservationDate = b.schedule.Date
		p.ReservationTime = b.schedule.Time
	}
	if b.option == catalog.Delivery {
		p.DeliveryAddress = b.schedule.Address
	}
	return p
}

func (b *Builder) pickGift() string {
	if len(b.gifts) == 0 {
		return ""
	}
	return b.gifts[b.pick(len(b.gifts))]
}

// DailyOffers returns the special offers running on now's weekday.
func (b *Builder) DailyOffers(now time.Time) []catalog.SpecialOffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap.Settings.ActiveOffers(now.Weekday())
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
