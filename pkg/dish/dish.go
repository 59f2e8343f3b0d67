// Package dish manages the restaurant's dishes: validation pipelines for
// create and update, the service running them against a repository, and the
// HTTP handlers exposing it.
package dish

// Dish is a menu item.
type Dish struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

// RecordID implements store.Record.
func (d Dish) RecordID() string { return d.ID }

// Payload is the untyped request body for create and update. Fields stay
// untyped so a wrongly typed value is reported by the field's own rule.
type Payload struct {
	ID          any `json:"id,omitempty"`
	Name        any `json:"name"`
	Description any `json:"description"`
	Price       any `json:"price"`
	ImageURL    any `json:"image_url"`
}
