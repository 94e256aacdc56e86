package repository

import (
	"context"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/infrastructure/storage"
)

const ordersCollection = "orders"

// OrderRepository is the flat-file implementation of ports.OrderRepository
type OrderRepository struct {
	store  *storage.Store
	logger *logger.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(store *storage.Store, appLogger *logger.Logger) *OrderRepository {
	return &OrderRepository{
		store:  store,
		logger: appLogger.WithComponent("order_repository"),
	}
}

func (r *OrderRepository) load() []entities.Order {
	orders := []entities.Order{}
	_ = r.store.Read(ordersCollection, &orders)
	return orders
}

// List returns every placed order
func (r *OrderRepository) List(ctx context.Context) ([]entities.Order, error) {
	return r.load(), nil
}

// Create assigns the next id, appends the order and persists the collection
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	return r.store.Update(ordersCollection, func() error {
		orders := r.load()

		nextID := 1
		for _, o := range orders {
			if o.ID >= nextID {
				nextID = o.ID + 1
			}
		}
		order.ID = nextID

		orders = append(orders, *order)

		err := r.store.Write(ordersCollection, orders)
		r.logger.LogStoreWrite(ordersCollection, len(orders), err)
		return err
	})
}
