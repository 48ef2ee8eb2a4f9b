package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a line item: a product reference plus denormalized display
// fields and a purchase quantity. Quantity stays >= 1 while the item exists.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	Category  string    `json:"category"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// CartSummary is the priced view of a cart returned to clients.
type CartSummary struct {
	Items     []*CartItem `json:"items"`
	Subtotal  float64     `json:"subtotal"`
	Insurance float64     `json:"insurance"`
	Shipping  float64     `json:"shipping"`
	Total     float64     `json:"total"`
}
