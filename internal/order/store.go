package order

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicateOrder is returned when an order ID is already stored.
var ErrDuplicateOrder = errors.New("order: duplicate order id")

// Store holds every order placed during the process lifetime, newest first.
type Store struct {
	mu     sync.RWMutex
	orders []Order
	clock  func() time.Time
	newID  func() string
	table  string
}

// Option customizes the store instance.
type Option func(*Store)

// WithClock injects a deterministic clock (primarily for tests).
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator overrides order ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithTableNumber sets the table recorded on non-delivery orders.
func WithTableNumber(table string) Option {
	return func(s *Store) {
		if table = strings.TrimSpace(table); table != "" {
			s.table = table
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		clock: time.Now,
		newID: NewID,
		table: "08",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// NewID mints an order reference such as "ord_3f9a1c2b7".
func NewID() string {
	return "ord_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.clock()
}

// TableNumber returns the table recorded on non-delivery orders.
func (s *Store) TableNumber() string {
	return s.table
}

// Insert prepends an already built order.
func (s *Store) Insert(o Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.orders {
		if existing.ID == o.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateOrder, o.ID)
		}
	}
	s.orders = append([]Order{o.clone()}, s.orders...)
	return nil
}

// PlaceOrder assigns identity, table, time and pending status to the
// placement and stores it as the newest order.
func (s *Store) PlaceOrder(p Placement) Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	for s.indexLocked(id) >= 0 {
		id = s.newID()
	}
	o := Build(p, id, s.table, s.clock())
	s.orders = append([]Order{o}, s.orders...)
	return o.clone()
}

// UpdateStatus moves an order to next. Unknown IDs are ignored. A change the
// kitchen lifecycle does not allow returns ErrInvalidTransition and leaves the
// order untouched.
func (s *Store) UpdateStatus(id string, next Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}
	current := s.orders[idx].Status
	if !current.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}
	s.orders[idx].Status = next
	return nil
}

// Advance moves an order one step forward and returns its new status. Unknown
// IDs are ignored and report an empty status.
func (s *Store) Advance(id string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return "", nil
	}
	current := s.orders[idx].Status
	next, ok := current.Next()
	if !ok {
		return current, fmt.Errorf("%w: %s is final", ErrInvalidTransition, current)
	}
	s.orders[idx].Status = next
	return next, nil
}

// Get returns a copy of one order.
func (s *Store) Get(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return Order{}, false
	}
	return s.orders[idx].clone(), true
}

// Recent returns every order, newest first.
func (s *Store) Recent() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.clone()
	}
	return out
}

// Active returns pending and preparing orders, oldest first, which is the
// order the kitchen works them in.
func (s *Store) Active() []Order {
	return s.filter(func(o Order) bool { return o.Status.Active() })
}

// WithStatus returns orders in one status, oldest first.
func (s *Store) WithStatus(status Status) []Order {
	return s.filter(func(o Order) bool { return o.Status == status })
}

// Len reports how many orders are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

func (s *Store) filter(keep func(Order) bool) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Order
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, o.clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *Store) indexLocked(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}
