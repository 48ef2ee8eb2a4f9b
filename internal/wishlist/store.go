package wishlist

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"artvault/internal/models"
)

type sessionList struct {
	items      []*models.WishlistItem
	lastActive time.Time
}

// Store keeps per-session wishlists in process memory. Membership is a set:
// toggling a saved product removes it, toggling an unsaved one adds it.
type Store struct {
	mu    sync.RWMutex
	lists map[string]*sessionList
	now   func() time.Time
}

// NewStore creates an empty wishlist store.
func NewStore() *Store {
	return &Store{
		lists: make(map[string]*sessionList),
		now:   time.Now,
	}
}

// Toggle flips the product's membership and reports whether the product is
// saved after the call. Two toggles in a row restore the original state.
func (s *Store) Toggle(sessionID string, product *models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.list(sessionID)
	for i, item := range l.items {
		if item.ProductID == product.ID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return false
		}
	}

	imageURL := ""
	if len(product.ImageURLs) > 0 {
		imageURL = product.ImageURLs[0]
	}
	l.items = append(l.items, &models.WishlistItem{
		ProductID: product.ID,
		Title:     product.Title,
		ImageURL:  imageURL,
		Category:  product.Category,
		Price:     product.Price,
		SavedAt:   s.now(),
	})
	return true
}

// Has reports whether the product is saved in the session's wishlist.
func (s *Store) Has(sessionID string, productID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lists[sessionID]
	if !ok {
		return false
	}
	for _, item := range l.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// List returns the session's saved items in insertion order.
func (s *Store) List(sessionID string) []*models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.list(sessionID)
	items := make([]*models.WishlistItem, len(l.items))
	for i, item := range l.items {
		copied := *item
		items[i] = &copied
	}
	return items
}

// SweepIdle removes wishlists idle longer than maxIdle and returns the count.
func (s *Store) SweepIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	swept := 0
	for id, l := range s.lists {
		if l.lastActive.Before(cutoff) {
			delete(s.lists, id)
			swept++
		}
	}
	return swept
}

// list returns the session's wishlist, creating it if needed. Callers must
// hold s.mu.
func (s *Store) list(sessionID string) *sessionList {
	l, ok := s.lists[sessionID]
	if !ok {
		l = &sessionList{}
		s.lists[sessionID] = l
	}
	l.lastActive = s.now()
	return l
}
