// Package catalog holds the estate's menu, modifiers, chefs and settings.
package catalog

import (
	"fmt"
	"strings"
	"time"
)

// DiningOption is how the guest intends to receive the order.
type DiningOption string

const (
	EatIn       DiningOption = "eat-in"
	Reservation DiningOption = "reservation"
	Pickup      DiningOption = "pickup"
	Takeaway    DiningOption = "takeaway"
	Delivery    DiningOption = "delivery"
)

// DiningOptions lists every option in presentation order.
var DiningOptions = []DiningOption{EatIn, Reservation, Pickup, Takeaway, Delivery}

// Valid reports whether o is a known dining option.
func (o DiningOption) Valid() bool {
	switch o {
	case EatIn, Reservation, Pickup, Takeaway, Delivery:
		return true
	}
	return false
}

// RequiresScheduling reports whether the option needs a date and time before
// dishes can be chosen.
func (o DiningOption) RequiresScheduling() bool {
	return o == Reservation || o == Pickup || o == Delivery
}

// IsImmediate reports whether the order is prepared for service right away.
// Only immediate orders carry a countdown.
func (o DiningOption) IsImmediate() bool {
	return o == EatIn || o == Takeaway
}

func (o DiningOption) Label() string {
	switch o {
	case EatIn:
		return "Dine In"
	case Reservation:
		return "Reservation"
	case Pickup:
		return "Pickup"
	case Takeaway:
		return "Takeaway"
	case Delivery:
		return "Delivery"
	}
	return string(o)
}

// Category groups menu items into the builder's course steps.
type Category string

const (
	Starters   Category = "Starters"
	MainDishes Category = "Main Dishes"
	Drinks     Category = "Drinks"
	Sides      Category = "Sides"
)

// Categories lists every category in course order.
var Categories = []Category{Starters, MainDishes, Drinks, Sides}

func (c Category) Valid() bool {
	switch c {
	case Starters, MainDishes, Drinks, Sides:
		return true
	}
	return false
}

// ModifierType distinguishes priced additions from removals.
type ModifierType string

const (
	ModifierExtra  ModifierType = "extra"
	ModifierRemove ModifierType = "remove"
)

// Modifier adjusts a dish. The price of a removal is informational and never
// charged.
type Modifier struct {
	ID    string       `yaml:"id"`
	Name  string       `yaml:"name"`
	Price int64        `yaml:"price"`
	Type  ModifierType `yaml:"type"`
}

func (m Modifier) validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if m.Price < 0 {
		return fmt.Errorf("price must be >= 0")
	}
	switch m.Type {
	case ModifierExtra, ModifierRemove:
	default:
		return fmt.Errorf("type must be 'extra' or 'remove'")
	}
	return nil
}

// MenuItem is one dish on the menu. Modifiers are referenced by ID so a price
// change on a modifier applies everywhere it is offered.
type MenuItem struct {
	ID             string         `yaml:"id"`
	Name           string         `yaml:"name"`
	Description    string         `yaml:"description"`
	Ingredients    []string       `yaml:"ingredients"`
	Price          int64          `yaml:"price"`
	Category       Category       `yaml:"category"`
	Image          string         `yaml:"image,omitempty"`
	ModifierIDs    []string       `yaml:"modifiers,omitempty"`
	EstimatedTime  int            `yaml:"estimated_time"`
	AllowedOptions []DiningOption `yaml:"allowed_options"`
}

// Allows reports whether the dish can be ordered with the given option.
func (m MenuItem) Allows(opt DiningOption) bool {
	for _, allowed := range m.AllowedOptions {
		if allowed == opt {
			return true
		}
	}
	return false
}

func (m MenuItem) validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if m.Price <= 0 {
		return fmt.Errorf("price must be > 0")
	}
	if !m.Category.Valid() {
		return fmt.Errorf("unknown category %q", m.Category)
	}
	if m.EstimatedTime < 0 {
		return fmt.Errorf("estimated time must be >= 0")
	}
	for _, opt := range m.AllowedOptions {
		if !opt.Valid() {
			return fmt.Errorf("unknown dining option %q", opt)
		}
	}
	return nil
}

func (m MenuItem) clone() MenuItem {
	m.Ingredients = append([]string(nil), m.Ingredients...)
	m.ModifierIDs = append([]string(nil), m.ModifierIDs...)
	m.AllowedOptions = append([]DiningOption(nil), m.AllowedOptions...)
	return m
}

// Chef is a member of the kitchen brigade a guest may request.
type Chef struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Specialty string `yaml:"specialty"`
	Avatar    string `yaml:"avatar,omitempty"`
}

// WorkingDay describes opening hours for one weekday. Times use HH:MM.
type WorkingDay struct {
	Day       string `yaml:"day"`
	IsOpen    bool   `yaml:"is_open"`
	OpenTime  string `yaml:"open_time"`
	CloseTime string `yaml:"close_time"`
}

func (d WorkingDay) validate() error {
	if _, ok := parseWeekday(d.Day); !ok {
		return fmt.Errorf("unknown day %q", d.Day)
	}
	if !validClock(d.OpenTime) {
		return fmt.Errorf("%s: open time %q must be HH:MM", d.Day, d.OpenTime)
	}
	if !validClock(d.CloseTime) {
		return fmt.Errorf("%s: close time %q must be HH:MM", d.Day, d.CloseTime)
	}
	return nil
}

// SpecialOffer is a promotion shown to guests on its weekday.
type SpecialOffer struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Day         string `yaml:"day"`
	IsActive    bool   `yaml:"is_active"`
}

func (o SpecialOffer) validate() error {
	if strings.TrimSpace(o.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if _, ok := parseWeekday(o.Day); !ok {
		return fmt.Errorf("unknown day %q", o.Day)
	}
	return nil
}

// Settings carries the estate-wide configuration edited from the admin panel.
type Settings struct {
	ContactNumber      string         `yaml:"contact_number"`
	MobileMoneyDetails string         `yaml:"mobile_money_details"`
	TableCount         int            `yaml:"table_count"`
	WorkingDays        []WorkingDay   `yaml:"working_days"`
	SpecialOffers      []SpecialOffer `yaml:"special_offers"`
}

// DayFor returns the opening hours for the given weekday.
func (s Settings) DayFor(day time.Weekday) (WorkingDay, bool) {
	for _, wd := range s.WorkingDays {
		if strings.EqualFold(wd.Day, day.String()) {
			return wd, true
		}
	}
	return WorkingDay{}, false
}

// ActiveOffers returns the active offers scheduled for the given weekday.
func (s Settings) ActiveOffers(day time.Weekday) []SpecialOffer {
	var out []SpecialOffer
	for _, offer := range s.SpecialOffers {
		if offer.IsActive && strings.EqualFold(offer.Day, day.String()) {
			out = append(out, offer)
		}
	}
	return out
}

func (s Settings) validate() error {
	if s.TableCount < 1 {
		return fmt.Errorf("table count must be >= 1")
	}
	for i, wd := range s.WorkingDays {
		if err := wd.validate(); err != nil {
			return fmt.Errorf("working_days[%d]: %w", i, err)
		}
	}
	for i, offer := range s.SpecialOffers {
		if err := offer.validate(); err != nil {
			return fmt.Errorf("special_offers[%d]: %w", i, err)
		}
	}
	return nil
}

func (s Settings) clone() Settings {
	s.WorkingDays = append([]WorkingDay(nil), s.WorkingDays...)
	s.SpecialOffers = append([]SpecialOffer(nil), s.SpecialOffers...)
	return s
}

func parseWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(strings.TrimSpace(name), d.String()) {
			return d, true
		}
	}
	return time.Sunday, false
}

func validClock(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}
