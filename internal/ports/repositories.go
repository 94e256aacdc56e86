package ports

import (
	"context"

	"github.com/storefront/core/internal/domain/entities"
)

// ProductRepository defines the interface for product data operations.
// Implementations read the whole collection per call and rewrite it on
// mutation; callers get last-write-wins semantics across processes.
type ProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	Search(ctx context.Context, query string) ([]entities.Product, error)
	GetByID(ctx context.Context, id int) (*entities.Product, error)
	Create(ctx context.Context, product *entities.Product) error
	Update(ctx context.Context, id int, patch ProductPatch) (*entities.Product, error)
	Delete(ctx context.Context, id int) (*entities.Product, error)
}

// ProductPatch carries the fields of a partial product update. Nil fields
// are left untouched; the product ID can never be patched.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Category    *string
	Description *string
	Stock       *int
}

// UserRepository defines the interface for user data operations. Users are
// read-only in this service.
type UserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id int) (*entities.User, error)
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	Create(ctx context.Context, order *entities.Order) error
}

// CartStore defines the interface for per-user shopping carts. Carts live
// in process memory only and are lost on restart.
type CartStore interface {
	Add(ctx context.Context, userID string, productID, quantity int) ([]entities.CartItem, error)
	Get(ctx context.Context, userID string) ([]entities.CartItem, error)
}
