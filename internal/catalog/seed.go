package catalog

var allOptions = []DiningOption{EatIn, Reservation, Pickup, Takeaway, Delivery}

// Default returns the estate's opening catalog.
func Default() Snapshot {
	return Snapshot{
		Modifiers: []Modifier{
			{ID: "m1", Name: "Signature Alloco Garnish", Price: 800, Type: ModifierExtra},
			{ID: "m2", Name: "Premium Aged Wagyu Supplement", Price: 12000, Type: ModifierExtra},
			{ID: "m3", Name: "House-made Habanero Infusion", Price: 500, Type: ModifierExtra},
			{ID: "m4", Name: "Omit Garden Onions", Price: 0, Type: ModifierRemove},
			{ID: "m5", Name: "Omit Emulsion Sauce", Price: 0, Type: ModifierRemove},
			{ID: "m6", Name: "Truffle-infused Jollof", Price: 2500, Type: ModifierExtra},
		},
		Chefs: []Chef{
			{ID: "c1", Name: "Chef Amara", Specialty: "Heritage Spices & Stews"},
			{ID: "c2", Name: "Chef Kofi", Specialty: "Grill Master & Seafood"},
			{ID: "c3", Name: "Chef Fatou", Specialty: "Modern African Fusion"},
		},
		Menu: []MenuItem{
			{
				ID:          "1",
				Name:        "Heritage Jollof Rice",
				Description: "Slow-cooked aromatic grain, smoked over cherry wood, served with corn-fed chicken and caramelized plantains.",
				Ingredients: []string{
					"Long-grain parboiled rice", "Heirloom plum tomatoes", "Scotch bonnet peppers",
					"Tatase (Bell peppers)", "House-made chicken stock", "Smoked paprika", "Wild thyme",
				},
				Price:          8500,
				Category:       MainDishes,
				ModifierIDs:    []string{"m1", "m3", "m4", "m6"},
				EstimatedTime:  25,
				AllowedOptions: allOptions,
			},
			{
				ID:          "2",
				Name:        "Poulet de la Haute Cour",
				Description: "The definitive \"Director General\" chicken, pan-seared with organic local vegetables and ripened plantain medallions.",
				Ingredients: []string{
					"Corn-fed chicken thigh", "Organic carrots", "Haricot verts", "Ripe plantain",
					"Cold-pressed palm oil", "Garlic confit", "Ginger root",
				},
				Price:          12500,
				Category:       MainDishes,
				ModifierIDs:    []string{"m1", "m3", "m4", "m5"},
				EstimatedTime:  30,
				AllowedOptions: allOptions,
			},
			{
				ID:          "r1",
				Name:        "Royal Whole Lamb Roast",
				Description: "A grand centerpiece roasted for 8 hours with 12 secret African spices. Serves 6-8 people.",
				Ingredients: []string{
					"Whole spring lamb", "Northern Yaji spice", "Fermented locust beans",
					"Acacia honey glaze", "Rosemary infusion", "Suya pepper blend",
				},
				Price:          185000,
				Category:       MainDishes,
				ModifierIDs:    []string{"m3", "m6"},
				EstimatedTime:  480,
				AllowedOptions: []DiningOption{Reservation},
			},
			{
				ID:          "5",
				Name:        "Suya Carpaccio",
				Description: "Fine-sliced beef tenderloin, flash-grilled and dusted with heirloom Yaji spice and micro-greens.",
				Ingredients: []string{
					"Aged beef tenderloin", "Ground peanut spice (Kuli-kuli)", "Cold-pressed peanut oil",
					"Red onion slivers", "Fresh cilantro", "Lime zest",
				},
				Price:          6500,
				Category:       Starters,
				ModifierIDs:    []string{"m3", "m4"},
				EstimatedTime:  12,
				AllowedOptions: allOptions,
			},
			{
				ID:          "7",
				Name:        "The Grand Chapman",
				Description: "Our signature botanical punch, infused with Angostura bitters and cucumber ribbons.",
				Ingredients: []string{
					"Sparkling orange zest", "Lemon infusion", "Cucumber ribbons",
					"Angostura bitters", "Blackcurrant reduction", "Fresh mint",
				},
				Price:          3500,
				Category:       Drinks,
				EstimatedTime:  5,
				AllowedOptions: allOptions,
			},
			{
				ID:          "16",
				Name:        "Hibiscus & Gold Fizz",
				Description: "Cold-pressed Zobo reduction with edible 24k gold flakes and sparkling spring water.",
				Ingredients: []string{
					"Dried Hibiscus leaves (Zobo)", "Clove spikes", "Dehydrated pineapple",
					"Edible 24k Gold leaf", "Sparkling mineral water", "Raw cane syrup",
				},
				Price:          5500,
				Category:       Drinks,
				EstimatedTime:  5,
				AllowedOptions: []DiningOption{EatIn, Reservation, Pickup, Delivery},
			},
		},
		Settings: Settings{
			ContactNumber:      "+237 600 000 000",
			MobileMoneyDetails: "Orange Money: #144*... | MTN MoMo: *126#",
			TableCount:         12,
			WorkingDays: []WorkingDay{
				{Day: "Monday", IsOpen: true, OpenTime: "09:00", CloseTime: "22:00"},
				{Day: "Tuesday", IsOpen: true, OpenTime: "09:00", CloseTime: "22:00"},
				{Day: "Wednesday", IsOpen: true, OpenTime: "09:00", CloseTime: "22:00"},
				{Day: "Thursday", IsOpen: true, OpenTime: "09:00", CloseTime: "22:00"},
				{Day: "Friday", IsOpen: true, OpenTime: "09:00", CloseTime: "23:30"},
				{Day: "Saturday", IsOpen: true, OpenTime: "10:00", CloseTime: "23:30"},
				{Day: "Sunday", IsOpen: true, OpenTime: "10:00", CloseTime: "21:00"},
			},
		},
	}
}
