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

// ProductHandler handles catalog-related requests
type ProductHandler struct {
	productService ports.ProductService
	logger         *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService ports.ProductService, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// ListProducts handles listing the full catalog
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		h.logger.Error("List products failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to retrieve products"))
	}

	return c.JSON(http.StatusOK, listResponse(products, len(products)))
}

// SearchProducts handles free-text catalog search. Without a query the
// full catalog is returned unfiltered.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")

	products, err := h.productService.SearchProducts(c.Request().Context(), query)
	if err != nil {
		h.logger.Error("Search products failed", "error", err, "query", query)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to search products"))
	}

	response := listResponse(products, len(products))
	response.SearchQuery = query

	return c.JSON(http.StatusOK, response)
}

// GetProduct handles getting a product by id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// A non-numeric id can never match a product.
		return c.JSON(http.StatusNotFound, errorResponse("Product not found"))
	}

	product, err := h.productService.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse("Product not found"))
		}
		h.logger.Error("Get product failed", "error", err, "product_id", id)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to retrieve product"))
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: product})
}

// CreateProduct handles product creation
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ports.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create product failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to create product"))
	}

	return c.JSON(http.StatusCreated, dataResponse(product, "Product created successfully"))
}

// UpdateProduct handles partial product updates. Only the provided fields
// are overlaid; the id never changes.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse("Product not found"))
	}

	var req ports.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	product, err := h.productService.UpdateProduct(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse("Product not found"))
		}
		h.logger.Error("Update product failed", "error", err, "product_id", id)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to update product"))
	}

	return c.JSON(http.StatusOK, dataResponse(product, "Product updated successfully"))
}

// DeleteProduct handles product deletion and returns the removed record
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse("Product not found"))
	}

	product, err := h.productService.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse("Product not found"))
		}
		h.logger.Error("Delete product failed", "error", err, "product_id", id)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to delete product"))
	}

	return c.JSON(http.StatusOK, dataResponse(product, "Product deleted successfully"))
}
