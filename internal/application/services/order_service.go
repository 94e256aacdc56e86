package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// OrderService implements order placement and listing
type OrderService struct {
	orderRepo   ports.OrderRepository
	productRepo ports.ProductRepository
	logger      *logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo ports.OrderRepository, productRepo ports.ProductRepository, appLogger *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      appLogger.WithComponent("order_service"),
	}
}

// ListOrders returns every placed order
func (s *OrderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.orderRepo.List(ctx)
}

// CreateOrder validates every requested item against the current catalog
// and persists the order. Any unknown product or insufficient stock rejects
// the whole order with an OrderValidationError naming the offender.
//
// Stock is validated but not decremented; placed orders are not reconciled
// against inventory levels.
func (s *OrderService) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (*entities.Order, error) {
	catalog, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]entities.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	var total float64
	items := make([]entities.OrderItem, 0, len(req.Products))

	for _, item := range req.Products {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, &entities.OrderValidationError{
				Message: fmt.Sprintf("Product with ID %d not found", item.ProductID),
			}
		}
		if product.Stock < item.Quantity {
			return nil, &entities.OrderValidationError{
				Message: fmt.Sprintf("Not enough stock for %s", product.Name),
			}
		}

		total += product.Price * float64(item.Quantity)
		items = append(items, entities.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	order := &entities.Order{
		UserID:    req.UserID,
		Products:  items,
		Total:     roundToCents(total),
		Status:    entities.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.LogOrderPlaced(order.ID, order.UserID, order.Total, len(order.Products))

	return order, nil
}

// roundToCents rounds a monetary amount to two decimal places
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
