package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when an admin operation targets an unknown ID.
	ErrNotFound = errors.New("catalog: not found")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("catalog: invalid")
)

// Snapshot is an immutable copy of the catalog. Sessions read from a snapshot
// so admin edits never change a cart that is being built.
type Snapshot struct {
	Menu      []MenuItem `yaml:"menu"`
	Modifiers []Modifier `yaml:"modifiers"`
	Chefs     []Chef     `yaml:"chefs"`
	Settings  Settings   `yaml:"settings"`
}

// Item looks up a menu item by ID.
func (s Snapshot) Item(id string) (MenuItem, bool) {
	for _, item := range s.Menu {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Modifier looks up a modifier by ID.
func (s Snapshot) Modifier(id string) (Modifier, bool) {
	for _, mod := range s.Modifiers {
		if mod.ID == id {
			return mod, true
		}
	}
	return Modifier{}, false
}

// Chef looks up a chef by ID.
func (s Snapshot) Chef(id string) (Chef, bool) {
	for _, chef := range s.Chefs {
		if chef.ID == id {
			return chef, true
		}
	}
	return Chef{}, false
}

// ModifiersFor resolves the modifiers offered on item, in the item's order.
// References to modifiers that no longer exist are skipped.
func (s Snapshot) ModifiersFor(item MenuItem) []Modifier {
	out := make([]Modifier, 0, len(item.ModifierIDs))
	for _, id := range item.ModifierIDs {
		if mod, ok := s.Modifier(id); ok {
			out = append(out, mod)
		}
	}
	return out
}

// InCategory returns the items of a category that allow the dining option.
func (s Snapshot) InCategory(cat Category, opt DiningOption) []MenuItem {
	var out []MenuItem
	for _, item := range s.Menu {
		if item.Category == cat && item.Allows(opt) {
			out = append(out, item)
		}
	}
	return out
}

// Validate checks every entry and the modifier references between them.
func (s Snapshot) Validate() error {
	known := make(map[string]bool, len(s.Modifiers))
	for i, mod := range s.Modifiers {
		if mod.ID == "" {
			return fmt.Errorf("%w: modifiers[%d]: id is required", ErrInvalid, i)
		}
		if err := mod.validate(); err != nil {
			return fmt.Errorf("%w: modifiers[%d]: %v", ErrInvalid, i, err)
		}
		known[mod.ID] = true
	}
	for i, item := range s.Menu {
		if item.ID == "" {
			return fmt.Errorf("%w: menu[%d]: id is required", ErrInvalid, i)
		}
		if err := item.validate(); err != nil {
			return fmt.Errorf("%w: menu[%d]: %v", ErrInvalid, i, err)
		}
		for _, ref := range item.ModifierIDs {
			if !known[ref] {
				return fmt.Errorf("%w: menu[%d]: unknown modifier %q", ErrInvalid, i, ref)
			}
		}
	}
	for i, chef := range s.Chefs {
		if chef.ID == "" || strings.TrimSpace(chef.Name) == "" {
			return fmt.Errorf("%w: chefs[%d]: id and name are required", ErrInvalid, i)
		}
	}
	if err := s.Settings.validate(); err != nil {
		return fmt.Errorf("%w: settings: %v", ErrInvalid, err)
	}
	return nil
}

func (s Snapshot) clone() Snapshot {
	out := Snapshot{
		Menu:      make([]MenuItem, len(s.Menu)),
		Modifiers: append([]Modifier(nil), s.Modifiers...),
		Chefs:     append([]Chef(nil), s.Chefs...),
		Settings:  s.Settings.clone(),
	}
	for i, item := range s.Menu {
		out.Menu[i] = item.clone()
	}
	return out
}

// Catalog owns the live catalog and is the only place it is mutated.
type Catalog struct {
	mu    sync.RWMutex
	data  Snapshot
	newID func() string
}

// Option customizes a Catalog.
type Option func(*Catalog)

// WithIDGenerator overrides how IDs are minted for new entries.
func WithIDGenerator(fn func() string) Option {
	return func(c *Catalog) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New creates a catalog seeded with a copy of seed.
func New(seed Snapshot, opts ...Option) *Catalog {
	c := &Catalog{
		data:  seed.clone(),
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Snapshot returns a deep copy of the current catalog.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.clone()
}

// UpsertMenuItem adds the item, or replaces the item with the same ID. A
// missing ID is generated. The stored item is returned.
func (c *Catalog) UpsertMenuItem(item MenuItem) (MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if err := item.validate(); err != nil {
		return MenuItem{}, fmt.Errorf("%w: menu item: %v", ErrInvalid, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ref := range item.ModifierIDs {
		if _, ok := c.data.Modifier(ref); !ok {
			return MenuItem{}, fmt.Errorf("%w: menu item: unknown modifier %q", ErrInvalid, ref)
		}
	}
	if item.ID == "" {
		item.ID = c.newID()
	}
	item = item.clone()
	for i := range c.data.Menu {
		if c.data.Menu[i].ID == item.ID {
			c.data.Menu[i] = item
			return item.clone(), nil
		}
	}
	c.data.Menu = append(c.data.Menu, item)
	return item.clone(), nil
}

// RemoveMenuItem deletes the item with the given ID.
func (c *Catalog) RemoveMenuItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.data.Menu {
		if c.data.Menu[i].ID == id {
			c.data.Menu = append(c.data.Menu[:i], c.data.Menu[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("menu item %q: %w", id, ErrNotFound)
}

// UpsertModifier adds or replaces a modifier.
func (c *Catalog) UpsertModifier(mod Modifier) (Modifier, error) {
	mod.Name = strings.TrimSpace(mod.Name)
	if err := mod.validate(); err != nil {
		return Modifier{}, fmt.Errorf("%w: modifier: %v", ErrInvalid, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if mod.ID == "" {
		mod.ID = c.newID()
	}
	for i := range c.data.Modifiers {
		if c.data.Modifiers[i].ID == mod.ID {
			c.data.Modifiers[i] = mod
			return mod, nil
		}
	}
	c.data.Modifiers = append(c.data.Modifiers, mod)
	return mod, nil
}

// RemoveModifier deletes a modifier and detaches it from every menu item.
func (c *Catalog) RemoveModifier(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := -1
	for i := range c.data.Modifiers {
		if c.data.Modifiers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("modifier %q: %w", id, ErrNotFound)
	}
	c.data.Modifiers = append(c.data.Modifiers[:idx], c.data.Modifiers[idx+1:]...)
	for i := range c.data.Menu {
		refs := c.data.Menu[i].ModifierIDs[:0]
		for _, ref := range c.data.Menu[i].ModifierIDs {
			if ref != id {
				refs = append(refs, ref)
			}
		}
		c.data.Menu[i].ModifierIDs = refs
	}
	return nil
}

// UpsertChef adds or replaces a chef.
func (c *Catalog) UpsertChef(chef Chef) (Chef, error) {
	chef.Name = strings.TrimSpace(chef.Name)
	if chef.Name == "" {
		return Chef{}, fmt.Errorf("%w: chef: name is required", ErrInvalid)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if chef.ID == "" {
		chef.ID = c.newID()
	}
	for i := range c.data.Chefs {
		if c.data.Chefs[i].ID == chef.ID {
			c.data.Chefs[i] = chef
			return chef, nil
		}
	}
	c.data.Chefs = append(c.data.Chefs, chef)
	return chef, nil
}

// RemoveChef deletes a chef.
func (c *Catalog) RemoveChef(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.data.Chefs {
		if c.data.Chefs[i].ID == id {
			c.data.Chefs = append(c.data.Chefs[:i], c.data.Chefs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("chef %q: %w", id, ErrNotFound)
}

func (c *Catalog) SetContactNumber(number string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Settings.ContactNumber = strings.TrimSpace(number)
}

func (c *Catalog) SetMobileMoneyDetails(details string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Settings.MobileMoneyDetails = strings.TrimSpace(details)
}

// SetTableCount updates the number of tables. At least one table is required.
func (c *Catalog) SetTableCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: table count must be >= 1", ErrInvalid)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Settings.TableCount = n
	return nil
}

// SetWorkingDay replaces the hours for day.Day, adding the day if absent.
func (c *Catalog) SetWorkingDay(day WorkingDay) error {
	if err := day.validate(); err != nil {
		return fmt.Errorf("%w: working day: %v", ErrInvalid, err)
	}
	wd, _ := parseWeekday(day.Day)
	day.Day = wd.String()
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.data.Settings.WorkingDays {
		if strings.EqualFold(c.data.Settings.WorkingDays[i].Day, day.Day) {
			c.data.Settings.WorkingDays[i] = day
			return nil
		}
	}
	c.data.Settings.WorkingDays = append(c.data.Settings.WorkingDays, day)
	return nil
}

// AddSpecialOffer appends an offer with a freshly generated ID.
func (c *Catalog) AddSpecialOffer(offer SpecialOffer) (SpecialOffer, error) {
	offer.Title = strings.TrimSpace(offer.Title)
	if err := offer.validate(); err != nil {
		return SpecialOffer{}, fmt.Errorf("%w: special offer: %v", ErrInvalid, err)
	}
	wd, _ := parseWeekday(offer.Day)
	offer.Day = wd.String()
	c.mu.Lock()
	defer c.mu.Unlock()
	offer.ID = c.newID()
	c.data.Settings.SpecialOffers = append(c.data.Settings.SpecialOffers, offer)
	return offer, nil
}

// UpdateSpecialOffer replaces the offer with the same ID.
func (c *Catalog) UpdateSpecialOffer(offer SpecialOffer) error {
	offer.Title = strings.TrimSpace(offer.Title)
	if err := offer.validate(); err != nil {
		return fmt.Errorf("%w: special offer: %v", ErrInvalid, err)
	}
	wd, _ := parseWeekday(offer.Day)
	offer.Day = wd.String()
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.data.Settings.SpecialOffers {
		if c.data.Settings.SpecialOffers[i].ID == offer.ID {
			c.data.Settings.SpecialOffers[i] = offer
			return nil
		}
	}
	return fmt.Errorf("special offer %q: %w", offer.ID, ErrNotFound)
}

// RemoveSpecialOffer deletes an offer.
func (c *Catalog) RemoveSpecialOffer(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	offers := c.data.Settings.SpecialOffers
	for i := range offers {
		if offers[i].ID == id {
			c.data.Settings.SpecialOffers = append(offers[:i], offers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("special offer %q: %w", id, ErrNotFound)
}
