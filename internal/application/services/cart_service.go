package services

import (
	"context"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// CartService implements shopping cart operations. Carts are not checked
// against stock and never expire; they exist only for the process lifetime.
type CartService struct {
	cartStore ports.CartStore
	logger    *logger.Logger
}

// NewCartService creates a new cart service
func NewCartService(cartStore ports.CartStore, appLogger *logger.Logger) *CartService {
	return &CartService{
		cartStore: cartStore,
		logger:    appLogger.WithComponent("cart_service"),
	}
}

// AddToCart adds a product to the user's cart, defaulting the quantity to 1
func (s *CartService) AddToCart(ctx context.Context, userID string, req ports.AddToCartRequest) ([]entities.CartItem, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return s.cartStore.Add(ctx, userID, req.ProductID, quantity)
}

// GetCart returns the user's cart, empty if nothing was ever added
func (s *CartService) GetCart(ctx context.Context, userID string) ([]entities.CartItem, error) {
	return s.cartStore.Get(ctx, userID)
}
