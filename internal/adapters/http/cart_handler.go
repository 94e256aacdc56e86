package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// CartHandler handles shopping cart requests
type CartHandler struct {
	cartService ports.CartService
	logger      *logger.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService ports.CartService, logger *logger.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// AddToCart handles adding a product to a user's cart
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID := c.Param("userId")

	var req ports.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	cart, err := h.cartService.AddToCart(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Error("Add to cart failed", "error", err, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to add product to cart"))
	}

	return c.JSON(http.StatusOK, CartResponse{
		Success: true,
		Message: "Product added to cart",
		Cart:    cart,
	})
}

// GetCart handles fetching a user's cart, empty if none exists
func (h *CartHandler) GetCart(c echo.Context) error {
	userID := c.Param("userId")

	cart, err := h.cartService.GetCart(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Get cart failed", "error", err, "user_id", userID)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to retrieve cart"))
	}

	return c.JSON(http.StatusOK, CartResponse{
		Success: true,
		Cart:    cart,
	})
}
