// Package order manages customer orders: validation pipelines for create,
// update and delete, the status state machine, the service running them
// against a repository, and the HTTP handlers exposing it.
package order

// Order is a customer's delivery order.
type Order struct {
	ID           string `json:"id"`
	DeliverTo    string `json:"deliverTo"`
	MobileNumber string `json:"mobileNumber"`
	Status       Status `json:"status"`
	Dishes       []Item `json:"dishes"`
}

// RecordID implements store.Record.
func (o Order) RecordID() string { return o.ID }

// Item is one line of an order.
type Item struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

// Payload is the untyped request body for create and update.
type Payload struct {
	ID           any `json:"id,omitempty"`
	DeliverTo    any `json:"deliverTo"`
	MobileNumber any `json:"mobileNumber"`
	Status       any `json:"status,omitempty"`
	Dishes       any `json:"dishes" swaggertype:"array,object"`
}
