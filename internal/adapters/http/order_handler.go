package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// OrderHandler handles order-related requests
type OrderHandler struct {
	orderService ports.OrderService
	logger       *logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService ports.OrderService, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// ListOrders handles listing all orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderService.ListOrders(c.Request().Context())
	if err != nil {
		h.logger.Error("List orders failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to retrieve orders"))
	}

	return c.JSON(http.StatusOK, listResponse(orders, len(orders)))
}

// CreateOrder handles order placement. An unknown product or insufficient
// stock rejects the whole order with a message naming the offending item.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req ports.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), req)
	if err != nil {
		var validationErr *entities.OrderValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, errorResponse(validationErr.Message))
		}
		h.logger.Error("Create order failed", "error", err, "user_id", req.UserID)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to create order"))
	}

	return c.JSON(http.StatusCreated, dataResponse(order, "Order created successfully"))
}
