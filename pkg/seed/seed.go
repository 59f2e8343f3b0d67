// Package seed holds the records every store starts with.
package seed

import (
	"grubdash/pkg/dish"
	"grubdash/pkg/order"
)

// Dishes returns a fresh copy of the initial menu.
func Dishes() []dish.Dish {
	return []dish.Dish{
		{
			ID:          "d351db2b49b69679504652ea1cf38241",
			Name:        "Dolcelatte and chickpea spaghetti",
			Description: "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
			Price:       19,
			ImageURL:    "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?h=530&w=350",
		},
		{
			ID:          "3c637d011d844ebab1205fef8a7e36ea",
			Name:        "Broccoli and beetroot stir fry",
			Description: "Crunchy stir fry featuring fresh broccoli and beetroot",
			Price:       15,
			ImageURL:    "https://images.pexels.com/photos/4144234/pexels-photo-4144234.jpeg?h=530&w=350",
		},
		{
			ID:          "90c3d873684bf381dfab29034b5bba73",
			Name:        "Falafel and tahini bagel",
			Description: "A warm bagel filled with falafel and tahini",
			Price:       6,
			ImageURL:    "https://images.pexels.com/photos/4560606/pexels-photo-4560606.jpeg?h=530&w=350",
		},
	}
}

// Orders returns a fresh copy of the initial orders.
func Orders() []order.Order {
	return []order.Order{
		{
			ID:           "f6069a542257054114138301947672ba",
			DeliverTo:    "1600 Pennsylvania Avenue NW, Washington, DC 20500",
			MobileNumber: "(202) 456-1111",
			Status:       order.StatusOutForDelivery,
			Dishes: []order.Item{
				{DishID: "90c3d873684bf381dfab29034b5bba73", Quantity: 2},
			},
		},
		{
			ID:           "5a887d326e83d3c5bdcbee398ea32aff",
			DeliverTo:    "308 Negra Arroyo Lane, Albuquerque, NM",
			MobileNumber: "(505) 143-3369",
			Status:       order.StatusDelivered,
			Dishes: []order.Item{
				{DishID: "d351db2b49b69679504652ea1cf38241", Quantity: 2},
			},
		},
		{
			ID:           "3a887d326e83d3c5bdcbee398ea32aff",
			DeliverTo:    "1 Main St, Springfield",
			MobileNumber: "(555) 010-0100",
			Status:       order.StatusPending,
			Dishes: []order.Item{
				{DishID: "3c637d011d844ebab1205fef8a7e36ea", Quantity: 1},
				{DishID: "90c3d873684bf381dfab29034b5bba73", Quantity: 3},
			},
		},
	}
}
