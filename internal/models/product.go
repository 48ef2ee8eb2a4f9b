package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a gallery piece. Price is nullable: a nil price means the piece
// is sold on a price-on-request basis and cannot be added to a cart.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Artist      *string   `json:"artist" db:"artist"`
	Category    string    `json:"category" db:"category"`
	Price       *float64  `json:"price" db:"price"`
	ImageURLs   []string  `json:"image_urls" db:"image_urls"`
	Description string    `json:"description" db:"description"`
	Provenance  *string   `json:"provenance" db:"provenance"`
	Exhibitions *string   `json:"exhibitions" db:"exhibitions"`
	Literature  *string   `json:"literature" db:"literature"`
	Medium      *string   `json:"medium" db:"medium"`
	Dimensions  *string   `json:"dimensions" db:"dimensions"`
	Condition   *string   `json:"condition" db:"condition"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProductUpdate carries a partial update (PATCH); nil fields are left untouched.
type ProductUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Artist      *string   `json:"artist,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	ClearPrice  bool      `json:"clear_price,omitempty"` // switch the piece to price-on-request
	ImageURLs   *[]string `json:"image_urls,omitempty"`
	Description *string   `json:"description,omitempty"`
	Provenance  *string   `json:"provenance,omitempty"`
	Exhibitions *string   `json:"exhibitions,omitempty"`
	Literature  *string   `json:"literature,omitempty"`
	Medium      *string   `json:"medium,omitempty"`
	Dimensions  *string   `json:"dimensions,omitempty"`
	Condition   *string   `json:"condition,omitempty"`
}
