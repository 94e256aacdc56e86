package repository

import (
	"context"
	"sync"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
)

// MemoryCartStore is the in-memory implementation of ports.CartStore.
// Carts are keyed by user id, created lazily on first add, and lost when
// the process exits. A single mutex guards the whole map; contention is
// negligible at this service's scale.
type MemoryCartStore struct {
	mu     sync.RWMutex
	carts  map[string][]entities.CartItem
	logger *logger.Logger
}

// NewMemoryCartStore creates an empty cart store
func NewMemoryCartStore(appLogger *logger.Logger) *MemoryCartStore {
	return &MemoryCartStore{
		carts:  make(map[string][]entities.CartItem),
		logger: appLogger.WithComponent("cart_store"),
	}
}

// Add puts quantity of a product into the user's cart. Adding a product
// already in the cart accumulates its quantity instead of appending a
// duplicate line. Returns the resulting cart.
func (s *MemoryCartStore) Add(ctx context.Context, userID string, productID, quantity int) ([]entities.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]

	found := false
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, entities.CartItem{ProductID: productID, Quantity: quantity})
	}

	s.carts[userID] = cart
	s.logger.LogCartUpdate(userID, productID, quantity)

	return copyCart(cart), nil
}

// Get returns the user's cart, or an empty cart if none exists yet
func (s *MemoryCartStore) Get(ctx context.Context, userID string) ([]entities.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyCart(s.carts[userID]), nil
}

// copyCart keeps callers from mutating shared state through the returned slice
func copyCart(cart []entities.CartItem) []entities.CartItem {
	out := make([]entities.CartItem, len(cart))
	copy(out, cart)
	return out
}
