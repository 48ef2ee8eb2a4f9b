package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"artvault/internal/models"
)

// InsuranceRate is the flat insurance surcharge applied to every order.
const InsuranceRate = 0.02

// ShippingCost is zero: white-glove delivery is included with every purchase.
const ShippingCost = 0.0

// ErrPriceOnRequest is returned when a piece without a listed price is added
// to a cart; such pieces are sold by inquiry only.
var ErrPriceOnRequest = errors.New("product is price-on-request and cannot be added to cart")

// ErrInvalidQuantity is returned when an add specifies a non-positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be positive")

type sessionCart struct {
	items      []*models.CartItem
	lastActive time.Time
}

// Store keeps per-session carts in process memory. Carts are not persisted
// across server restarts; an idle cart is swept by the background job.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*sessionCart
	now   func() time.Time
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{
		carts: make(map[string]*sessionCart),
		now:   time.Now,
	}
}

// AddItem inserts a line item for the product, or increments the existing
// line's quantity when the product is already in the cart.
func (s *Store) AddItem(sessionID string, product *models.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if product.Price == nil {
		return ErrPriceOnRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for _, item := range c.items {
		if item.ProductID == product.ID {
			item.Quantity += qty
			return nil
		}
	}

	imageURL := ""
	if len(product.ImageURLs) > 0 {
		imageURL = product.ImageURLs[0]
	}
	c.items = append(c.items, &models.CartItem{
		ProductID: product.ID,
		Title:     product.Title,
		ImageURL:  imageURL,
		Category:  product.Category,
		UnitPrice: *product.Price,
		Quantity:  qty,
		AddedAt:   s.now(),
	})
	return nil
}

// RemoveItem deletes the line item unconditionally. Removing a product that is
// not in the cart is a no-op, not an error.
func (s *Store) RemoveItem(sessionID string, productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line item's quantity. A quantity of zero or below
// removes the item, keeping the quantity-stays-positive invariant. Unknown
// product ids are a no-op.
func (s *Store) SetQuantity(sessionID string, productID uuid.UUID, qty int) {
	if qty <= 0 {
		s.RemoveItem(sessionID, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for _, item := range c.items {
		if item.ProductID == productID {
			item.Quantity = qty
			return
		}
	}
}

// Summary returns the priced view of the session's cart: items in insertion
// order, subtotal, 2% insurance, free shipping, and the grand total.
func (s *Store) Summary(sessionID string) *models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	items := make([]*models.CartItem, len(c.items))
	subtotal := 0.0
	for i, item := range c.items {
		copied := *item
		items[i] = &copied
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	insurance := subtotal * InsuranceRate
	return &models.CartSummary{
		Items:     items,
		Subtotal:  subtotal,
		Insurance: insurance,
		Shipping:  ShippingCost,
		Total:     subtotal + insurance + ShippingCost,
	}
}

// Clear empties the session's cart.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// SweepIdle removes carts whose last mutation is older than maxIdle and
// returns how many were dropped.
func (s *Store) SweepIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	swept := 0
	for id, c := range s.carts {
		if c.lastActive.Before(cutoff) {
			delete(s.carts, id)
			swept++
		}
	}
	return swept
}

// cart returns the session's cart, creating it if needed, and stamps activity.
// Callers must hold s.mu.
func (s *Store) cart(sessionID string) *sessionCart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &sessionCart{}
		s.carts[sessionID] = c
	}
	c.lastActive = s.now()
	return c
}
