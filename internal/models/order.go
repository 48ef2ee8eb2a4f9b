package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. Settlement is a manual crypto transfer, so orders start as
// pending_payment and are moved along by the gallery staff.
const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusPaid           = "paid"
	OrderStatusShipped        = "shipped"
	OrderStatusCancelled      = "cancelled"
)

// Order is a checkout snapshot of a cart. Line items and totals are frozen at
// checkout time and never recomputed from the catalog.
type Order struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	CustomerName  string       `json:"customer_name" db:"customer_name"`
	CustomerEmail string       `json:"customer_email" db:"customer_email"`
	Notes         *string      `json:"notes" db:"notes"`
	Status        string       `json:"status" db:"status"`
	Subtotal      float64      `json:"subtotal" db:"subtotal"`
	Insurance     float64      `json:"insurance" db:"insurance"`
	Shipping      float64      `json:"shipping" db:"shipping"`
	Total         float64      `json:"total" db:"total"`
	Items         []*OrderItem `json:"items" db:"-"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// OrderItem is a frozen cart line item.
type OrderItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrderID   uuid.UUID `json:"order_id" db:"order_id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Title     string    `json:"title" db:"title"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	Category  string    `json:"category" db:"category"`
	UnitPrice float64   `json:"unit_price" db:"unit_price"`
	Quantity  int       `json:"quantity" db:"quantity"`
}

// Wallet is a settlement address shown to the customer after checkout.
type Wallet struct {
	Name    string `json:"name" toml:"name"`
	Symbol  string `json:"symbol" toml:"symbol"`
	Address string `json:"address" toml:"address"`
	Network string `json:"network" toml:"network"`
}
