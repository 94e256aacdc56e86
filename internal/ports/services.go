package ports

import (
	"context"

	"github.com/storefront/core/internal/domain/entities"
)

// ProductService interface for catalog operations
type ProductService interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	SearchProducts(ctx context.Context, query string) ([]entities.Product, error)
	GetProduct(ctx context.Context, id int) (*entities.Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*entities.Product, error)
	UpdateProduct(ctx context.Context, id int, req UpdateProductRequest) (*entities.Product, error)
	DeleteProduct(ctx context.Context, id int) (*entities.Product, error)
}

// UserService interface for user lookups
type UserService interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id int) (*entities.User, error)
}

// OrderService interface for order operations
type OrderService interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*entities.Order, error)
}

// CartService interface for shopping cart operations
type CartService interface {
	AddToCart(ctx context.Context, userID string, req AddToCartRequest) ([]entities.CartItem, error)
	GetCart(ctx context.Context, userID string) ([]entities.CartItem, error)
}

// Request/Response Types

// Product related types
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

// Order related types
type OrderItemRequest struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	UserID   int                `json:"userId" validate:"required"`
	Products []OrderItemRequest `json:"products" validate:"required,min=1,dive"`
}

// Cart related types
type AddToCartRequest struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity" validate:"omitempty,gt=0"`
}
