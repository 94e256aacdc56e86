package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/core/internal/adapters/repository"
	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

func newCartService() *CartService {
	return NewCartService(repository.NewMemoryCartStore(logger.NewNop()), logger.NewNop())
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	svc := newCartService()

	cart, err := svc.AddToCart(context.Background(), "u1", ports.AddToCartRequest{ProductID: 5})
	require.NoError(t, err)

	assert.Equal(t, []entities.CartItem{{ProductID: 5, Quantity: 1}}, cart)
}

func TestAddToCartAccumulates(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "u1", ports.AddToCartRequest{ProductID: 5, Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.AddToCart(ctx, "u1", ports.AddToCartRequest{ProductID: 5, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, []entities.CartItem{{ProductID: 5, Quantity: 5}}, cart)
}

func TestGetCartEmptyForUnknownUser(t *testing.T) {
	svc := newCartService()

	cart, err := svc.GetCart(context.Background(), "nobody")
	require.NoError(t, err)

	assert.NotNil(t, cart)
	assert.Empty(t, cart)
}
