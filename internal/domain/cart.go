package domain

import "github.com/google/uuid"

// CartItem is a cart line referencing a catalog product plus the customer's
// customizations. TotalPrice is computed once at add time as
// (product price + sum of added component prices) * quantity, and is rescaled
// proportionally on quantity updates rather than re-derived from the catalog.
// Removed components never affect the price.
type CartItem struct {
	ID                uuid.UUID   `json:"id"`
	ProductID         uuid.UUID   `json:"product_id"`
	Quantity          int         `json:"quantity"`
	RemovedComponents []uuid.UUID `json:"removed_components"`
	AddedComponents   []uuid.UUID `json:"added_components"`
	TotalPrice        float64     `json:"total_price"`
}
