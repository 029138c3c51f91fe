// Package order models placed orders, their payment policy and the store the
// kitchen and public board read from.
package order

import (
	"time"

	"github.com/kingrea/afrofeast/internal/catalog"
)

// DeliveryTable replaces the table number on delivery orders.
const DeliveryTable = "DELIVERY"

// PaymentMethod is how the guest settles the bill.
type PaymentMethod string

const (
	PaymentMobileMoney PaymentMethod = "mobile_money"
	PaymentBanknotes   PaymentMethod = "banknotes"
	PaymentNone        PaymentMethod = "none"
)

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMobileMoney:
		return "Mobile Money"
	case PaymentBanknotes:
		return "Banknotes"
	case PaymentNone, "":
		return "Unpaid"
	}
	return string(m)
}

// EventType is the occasion recorded on a reservation.
type EventType string

const (
	EventStandard    EventType = "standard"
	EventBirthday    EventType = "birthday"
	EventAnniversary EventType = "anniversary"
	EventBusiness    EventType = "business"
	EventFamily      EventType = "family"
	EventRomantic    EventType = "romantic"
	EventOther       EventType = "other"
)

// EventTypes lists every occasion in presentation order.
var EventTypes = []EventType{
	EventStandard, EventBirthday, EventAnniversary, EventBusiness,
	EventFamily, EventRomantic, EventOther,
}

func (e EventType) Label() string {
	switch e {
	case EventStandard:
		return "Casual Dining"
	case EventBirthday:
		return "Birthday Celebration"
	case EventAnniversary:
		return "Anniversary"
	case EventBusiness:
		return "Business Meeting"
	case EventFamily:
		return "Family Reunion"
	case EventRomantic:
		return "Romantic Evening"
	case EventOther:
		return "Special Event"
	}
	return string(e)
}

// OrderItem is one composed line in an order. Modifiers are a value snapshot
// taken when the line was composed.
type OrderItem struct {
	ID            string
	MenuItemID    string
	Name          string
	BasePrice     int64
	Modifiers     []catalog.Modifier
	TotalPrice    int64
	EstimatedTime int
}

// Compose builds a line item from a menu item and the chosen modifiers. Extra
// modifiers add their price. Removals are kept on the line at no cost.
func Compose(item catalog.MenuItem, modifiers []catalog.Modifier, id string) OrderItem {
	total := item.Price
	for _, mod := range modifiers {
		if mod.Type == catalog.ModifierExtra {
			total += mod.Price
		}
	}
	return OrderItem{
		ID:            id,
		MenuItemID:    item.ID,
		Name:          item.Name,
		BasePrice:     item.Price,
		Modifiers:     append([]catalog.Modifier(nil), modifiers...),
		TotalPrice:    total,
		EstimatedTime: item.EstimatedTime,
	}
}

// Order is a placed order. TotalAmount is fixed at creation.
type Order struct {
	ID                  string
	TableNumber         string
	CustomerName        string
	ChefName            string
	Status              Status
	CreatedAt           time.Time
	Items               []OrderItem
	TotalAmount         int64
	DiningOption        catalog.DiningOption
	GuestCount          int
	ReservationDate     string
	ReservationTime     string
	EventType           EventType
	SpecialInstructions string
	DeliveryAddress     string
	Gift                string
	DepositAmount       int64
	MaxEstimatedTime    int
	PaymentMethod       PaymentMethod
	IsPaid              bool
}

// IsDelivery reports whether the order leaves the estate.
func (o Order) IsDelivery() bool {
	return o.DiningOption == catalog.Delivery
}

func (o Order) clone() Order {
	items := make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		item.Modifiers = append([]catalog.Modifier(nil), item.Modifiers...)
		items[i] = item
	}
	o.Items = items
	return o
}

// Placement carries everything the builder collected for a new order. The
// store fills in identity, table, time and status.
type Placement struct {
	CustomerName        string
	ChefName            string
	Items               []OrderItem
	DiningOption        catalog.DiningOption
	GuestCount          int
	ReservationDate     string
	ReservationTime     string
	EventType           EventType
	SpecialInstructions string
	DeliveryAddress     string
	Gift                string
	DepositAmount       int64
	PaymentMethod       PaymentMethod
	IsPaid              bool
}

// Build turns a placement into a pending order.
func Build(p Placement, id, table string, now time.Time) Order {
	if p.DiningOption == catalog.Delivery {
		table = DeliveryTable
	}
	o := Order{
		ID:                  id,
		TableNumber:         table,
		CustomerName:        p.CustomerName,
		ChefName:            p.ChefName,
		Status:              StatusPending,
		CreatedAt:           now,
		Items:               p.Items,
		TotalAmount:         Total(p.Items),
		DiningOption:        p.DiningOption,
		GuestCount:          p.GuestCount,
		ReservationDate:     p.ReservationDate,
		ReservationTime:     p.ReservationTime,
		EventType:           p.EventType,
		SpecialInstructions: p.SpecialInstructions,
		DeliveryAddress:     p.DeliveryAddress,
		Gift:                p.Gift,
		DepositAmount:       p.DepositAmount,
		MaxEstimatedTime:    MaxEstimatedTime(p.Items),
		PaymentMethod:       p.PaymentMethod,
		IsPaid:              p.IsPaid,
	}
	return o.clone()
}

// Total sums the line totals.
func Total(items []OrderItem) int64 {
	var sum int64
	for _, item := range items {
		sum += item.TotalPrice
	}
	return sum
}

// MaxEstimatedTime is the slowest line's preparation time, or 0 for no lines.
func MaxEstimatedTime(items []OrderItem) int {
	longest := 0
	for _, item := range items {
		longest = max(longest, item.EstimatedTime)
	}
	return longest
}
