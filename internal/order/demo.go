package order

import (
	"time"

	"github.com/kingrea/afrofeast/internal/catalog"
)

// DemoOrder is the order already in the kitchen when the estate opens, placed
// five minutes before now.
func DemoOrder(now time.Time) Order {
	items := []OrderItem{{
		ID:            "item_demo",
		MenuItemID:    "1",
		Name:          "Heritage Jollof Rice",
		BasePrice:     8500,
		TotalPrice:    8500,
		EstimatedTime: 25,
	}}
	return Order{
		ID:                  "ord_demo",
		TableNumber:         "05",
		CustomerName:        "Madame Solange",
		ChefName:            "Chef Fatou",
		Status:              StatusPreparing,
		CreatedAt:           now.Add(-5 * time.Minute),
		Items:               items,
		TotalAmount:         Total(items),
		DiningOption:        catalog.EatIn,
		GuestCount:          1,
		EventType:           EventStandard,
		SpecialInstructions: "No spicy peppers, please. Extremely allergic.",
		MaxEstimatedTime:    MaxEstimatedTime(items),
		PaymentMethod:       PaymentBanknotes,
	}
}
