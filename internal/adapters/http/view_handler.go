package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// ViewHandler renders the public HTML pages
type ViewHandler struct {
	productService ports.ProductService
	logger         *logger.Logger
}

// NewViewHandler creates a new view handler
func NewViewHandler(productService ports.ProductService, logger *logger.Logger) *ViewHandler {
	return &ViewHandler{
		productService: productService,
		logger:         logger,
	}
}

// IndexPage renders the store front page with the full catalog
func (h *ViewHandler) IndexPage(c echo.Context) error {
	products, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		h.logger.Error("Render index failed", "error", err)
		return h.errorPage(c, http.StatusInternalServerError, "Something went wrong", "Could not load the product catalog.")
	}

	return c.Render(http.StatusOK, "index", map[string]interface{}{
		"Title":    "Welcome to Our Store",
		"Products": products,
	})
}

// ProductsPage renders the catalog listing page
func (h *ViewHandler) ProductsPage(c echo.Context) error {
	products, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		h.logger.Error("Render products failed", "error", err)
		return h.errorPage(c, http.StatusInternalServerError, "Something went wrong", "Could not load the product catalog.")
	}

	return c.Render(http.StatusOK, "index", map[string]interface{}{
		"Title":    "All Products",
		"Products": products,
	})
}

// ProductPage renders a single product's detail page
func (h *ViewHandler) ProductPage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.notFoundPage(c)
	}

	product, err := h.productService.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return h.notFoundPage(c)
		}
		h.logger.Error("Render product failed", "error", err, "product_id", id)
		return h.errorPage(c, http.StatusInternalServerError, "Something went wrong", "Could not load the product.")
	}

	return c.Render(http.StatusOK, "product", map[string]interface{}{
		"Title":   product.Name,
		"Product": product,
	})
}

func (h *ViewHandler) notFoundPage(c echo.Context) error {
	return h.errorPage(c, http.StatusNotFound, "Product Not Found", "The product you are looking for does not exist.")
}

func (h *ViewHandler) errorPage(c echo.Context, status int, title, message string) error {
	return c.Render(status, "error", map[string]interface{}{
		"Title":   title,
		"Message": message,
	})
}
