package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is a saved product reference. Membership is a set: at most one
// entry per product id.
type WishlistItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	Category  string    `json:"category"`
	Price     *float64  `json:"price"`
	SavedAt   time.Time `json:"saved_at"`
}
