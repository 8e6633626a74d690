// README: Demo data seeding: menu catalog, mock runners, sample orders.
package demo

import (
	"github.com/rs/zerolog"

	"gameday/internal/modules/menu"
	"gameday/internal/modules/order"
	"gameday/internal/modules/runner"
)

// Seed loads the menu catalog, two mock runners, and three sample
// orders so the runner flow is explorable on a fresh process.
func Seed(menus *menu.Store, runners *runner.Store, orders *order.Service, log zerolog.Logger) {
	menus.Replace(menuItems())

	runners.Put(runner.Runner{
		ID:                  "runner1",
		Name:                "Alex Johnson",
		IsOnline:            true,
		CurrentSection:      "105",
		EarningsToday:       4550,
		CompletedDeliveries: 12,
		OnTimeRate:          0.95,
		AvgDeliveryTime:     8.5,
	})
	runners.Put(runner.Runner{
		ID:                  "runner2",
		Name:                "Sarah Chen",
		IsOnline:            false,
		CurrentSection:      "112",
		EarningsToday:       3275,
		CompletedDeliveries: 8,
		OnTimeRate:          0.88,
		AvgDeliveryTime:     9.2,
	})

	count := 0
	for i, cmd := range demoOrders() {
		o, err := orders.Place(cmd)
		if err != nil {
			log.Error().Err(err).Int("index", i).Msg("seed order rejected")
			continue
		}
		count++

		// Stagger the lifecycle so the nearby feed has something to
		// show: the first and third orders are already in the kitchen.
		if i%2 == 0 {
			if _, err := orders.Advance(o.ID, order.StatusPreparing); err != nil {
				log.Error().Err(err).Str("order", string(o.ID)).Msg("seed advance failed")
				continue
			}
			_, _ = orders.PostMessage(o.ID, order.SenderRunner,
				"Your order is being prepared. I'll pick it up shortly!")
		}
	}

	log.Info().Int("orders", count).Msg("demo data seeded; demo runner is runner1 (Alex Johnson)")
}

func menuItems() []menu.Item {
	return []menu.Item{
		{ID: "1", Name: "Stadium Burger", Description: "Juicy beef patty with lettuce, tomato, and special sauce", Price: 1299, Category: "Burgers", Available: true},
		{ID: "2", Name: "Chicken Tenders", Description: "Crispy chicken tenders with your choice of dipping sauce", Price: 1099, Category: "Chicken", Available: true},
		{ID: "3", Name: "Loaded Nachos", Description: "Tortilla chips topped with cheese, jalapeños, and sour cream", Price: 899, Category: "Snacks", Available: true},
		{ID: "4", Name: "Hot Dog", Description: "Classic stadium hot dog with mustard and relish", Price: 699, Category: "Hot Dogs", Available: true},
		{ID: "5", Name: "Pizza Slice", Description: "Fresh pepperoni pizza slice", Price: 799, Category: "Pizza", Available: true},
		{ID: "6", Name: "Soft Pretzel", Description: "Warm soft pretzel with cheese sauce", Price: 599, Category: "Snacks", Available: true},
		{ID: "7", Name: "Beer", Description: "Domestic beer (21+ only)", Price: 899, Category: "Beverages", Available: true},
		{ID: "8", Name: "Soda", Description: "Fountain drink - Coke, Pepsi, Sprite", Price: 499, Category: "Beverages", Available: true},
	}
}

func demoOrders() []order.PlaceCommand {
	return []order.PlaceCommand{
		{
			CustomerID: "demo_customer_1",
			Items: []order.Item{
				{ID: "1", Name: "Stadium Burger", Price: 1299, Quantity: 1, Category: "Burgers"},
				{ID: "7", Name: "Beer", Price: 899, Quantity: 2, Category: "Beverages"},
			},
			Seat:          order.Seat{Section: "105", Row: "A", Seat: "12"},
			Contact:       order.Contact{Method: order.ContactEmail, Value: "demo@example.com"},
			DeliveryPrefs: order.DeliveryPrefs{Type: order.DeliveryLeaveAtSeat, Notes: "Please leave at seat"},
			Tip:           order.Tip{Amount: 350, Percentage: 15},
			Payment:       order.Payment{Type: "card", Last4: "1234"},
		},
		{
			CustomerID: "demo_customer_2",
			Items: []order.Item{
				{ID: "2", Name: "Chicken Tenders", Price: 1099, Quantity: 1, Category: "Chicken"},
				{ID: "8", Name: "Soda", Price: 499, Quantity: 1, Category: "Beverages"},
			},
			Seat:          order.Seat{Section: "112", Row: "B", Seat: "8"},
			Contact:       order.Contact{Method: order.ContactSMS, Value: "+1234567890"},
			DeliveryPrefs: order.DeliveryPrefs{Type: order.DeliveryHandoff, Notes: "I will meet you at the aisle"},
			Tip:           order.Tip{Amount: 200, Percentage: 10},
			Payment:       order.Payment{Type: "card", Last4: "5678"},
		},
		{
			CustomerID: "demo_customer_3",
			Items: []order.Item{
				{ID: "3", Name: "Loaded Nachos", Price: 899, Quantity: 1, Category: "Snacks"},
				{ID: "4", Name: "Hot Dog", Price: 699, Quantity: 2, Category: "Hot Dogs"},
			},
			Seat:          order.Seat{Section: "108", Row: "C", Seat: "15"},
			Contact:       order.Contact{Method: order.ContactEmail, Value: "test@example.com"},
			DeliveryPrefs: order.DeliveryPrefs{Type: order.DeliveryLeaveAtSeat},
			Tip:           order.Tip{Amount: 400, Percentage: 20},
			Payment:       order.Payment{Type: "card", Last4: "9012"},
		},
	}
}
