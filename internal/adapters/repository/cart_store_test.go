package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
)

func TestAddCreatesCartLazily(t *testing.T) {
	store := NewMemoryCartStore(logger.NewNop())

	cart, err := store.Add(context.Background(), "u1", 5, 2)
	require.NoError(t, err)

	assert.Equal(t, []entities.CartItem{{ProductID: 5, Quantity: 2}}, cart)
}

func TestAddAccumulatesQuantity(t *testing.T) {
	store := NewMemoryCartStore(logger.NewNop())
	ctx := context.Background()

	_, err := store.Add(ctx, "u1", 5, 2)
	require.NoError(t, err)

	cart, err := store.Add(ctx, "u1", 5, 3)
	require.NoError(t, err)

	assert.Equal(t, []entities.CartItem{{ProductID: 5, Quantity: 5}}, cart)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	store := NewMemoryCartStore(logger.NewNop())
	ctx := context.Background()

	_, err := store.Add(ctx, "u1", 5, 1)
	require.NoError(t, err)
	_, err = store.Add(ctx, "u1", 3, 1)
	require.NoError(t, err)

	cart, err := store.Add(ctx, "u1", 5, 1)
	require.NoError(t, err)

	require.Len(t, cart, 2)
	assert.Equal(t, 5, cart[0].ProductID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 3, cart[1].ProductID)
}

func TestGetUnknownUserReturnsEmptyCart(t *testing.T) {
	store := NewMemoryCartStore(logger.NewNop())

	cart, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)

	assert.NotNil(t, cart)
	assert.Empty(t, cart)
}

func TestCartsAreIndependentPerUser(t *testing.T) {
	store := NewMemoryCartStore(logger.NewNop())
	ctx := context.Background()

	_, err := store.Add(ctx, "u1", 5, 1)
	require.NoError(t, err)
	_, err = store.Add(ctx, "u2", 7, 4)
	require.NoError(t, err)

	cart1, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	cart2, err := store.Get(ctx, "u2")
	require.NoError(t, err)

	assert.Equal(t, []entities.CartItem{{ProductID: 5, Quantity: 1}}, cart1)
	assert.Equal(t, []entities.CartItem{{ProductID: 7, Quantity: 4}}, cart2)
}

func TestReturnedCartIsACopy(t *testing.T) {
	store := NewMemoryCartStore(logger.NewNop())
	ctx := context.Background()

	cart, err := store.Add(ctx, "u1", 5, 1)
	require.NoError(t, err)

	cart[0].Quantity = 99

	fresh, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh[0].Quantity)
}
