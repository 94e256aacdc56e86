package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/core/internal/adapters/repository"
	"github.com/storefront/core/internal/application/services"
	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/config"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/infrastructure/storage"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

// newTestAPI wires the JSON API routes against a throwaway data directory.
func newTestAPI(t *testing.T, catalog []entities.Product) *echo.Echo {
	t.Helper()

	nop := logger.NewNop()

	store, err := storage.New(config.StoreConfig{DataDir: t.TempDir()}, nop)
	require.NoError(t, err)
	if catalog != nil {
		require.NoError(t, store.Write("products", catalog))
	}

	productRepo := repository.NewProductRepository(store, nop)
	userRepo := repository.NewUserRepository(store, nop)
	orderRepo := repository.NewOrderRepository(store, nop)
	cartStore := repository.NewMemoryCartStore(nop)

	productHandler := NewProductHandler(services.NewProductService(productRepo, nop), nop)
	userHandler := NewUserHandler(services.NewUserService(userRepo, nop), nop)
	orderHandler := NewOrderHandler(services.NewOrderService(orderRepo, productRepo, nop), nop)
	cartHandler := NewCartHandler(services.NewCartService(cartStore, nop), nop)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	api := e.Group("/api")
	api.GET("/products", productHandler.ListProducts)
	api.GET("/products/search", productHandler.SearchProducts)
	api.POST("/products", productHandler.CreateProduct)
	api.GET("/product/:id", productHandler.GetProduct)
	api.PUT("/product/:id", productHandler.UpdateProduct)
	api.DELETE("/product/:id", productHandler.DeleteProduct)
	api.GET("/users", userHandler.ListUsers)
	api.GET("/user/:id", userHandler.GetUser)
	api.GET("/orders", orderHandler.ListOrders)
	api.POST("/orders", orderHandler.CreateOrder)
	api.POST("/cart/:userId/add", cartHandler.AddToCart)
	api.GET("/cart/:userId", cartHandler.GetCart)

	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func testCatalog() []entities.Product {
	return []entities.Product{
		{ID: 1, Name: "Widget Pro", Price: 19.99, Category: "Tools", Description: "A sturdy widget", Stock: 5},
		{ID: 2, Name: "Gadget", Price: 7.50, Category: "Accessories", Description: "Clips onto a widget", Stock: 0},
		{ID: 3, Name: "Gizmo", Price: 3.25, Category: "Misc", Description: "Unrelated trinket", Stock: 12},
	}
}

func TestListProducts(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodGet, "/api/products", "")

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, float64(3), envelope["count"])
	assert.Len(t, envelope["data"], 3)
}

func TestListProductsEmptyCatalog(t *testing.T) {
	e := newTestAPI(t, nil)

	rec := doRequest(e, http.MethodGet, "/api/products", "")

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, float64(0), envelope["count"])
	data, ok := envelope["data"].([]interface{})
	require.True(t, ok, "data must be a JSON array even when empty")
	assert.Empty(t, data)
}

func TestSearchProductsFilters(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodGet, "/api/products/search?q=WIDGET", "")

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, float64(2), envelope["count"])
	assert.Equal(t, "WIDGET", envelope["searchQuery"])
}

func TestSearchProductsWithoutQueryReturnsAll(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodGet, "/api/products/search", "")

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, float64(3), envelope["count"])
	assert.NotContains(t, envelope, "searchQuery")
}

func TestGetProduct(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodGet, "/api/product/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Widget Pro", data["name"])
}

func TestGetProductNotFound(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	for _, path := range []string{"/api/product/42", "/api/product/abc"} {
		rec := doRequest(e, http.MethodGet, path, "")

		require.Equal(t, http.StatusNotFound, rec.Code, path)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "Product not found", envelope["message"])
	}
}

func TestCreateProduct(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodPost, "/api/products",
		`{"name":"Doohickey","price":4.99,"category":"Misc","description":"Brand new","stock":8}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Product created successfully", envelope["message"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["id"])
}

func TestCreateProductValidation(t *testing.T) {
	e := newTestAPI(t, nil)

	rec := doRequest(e, http.MethodPost, "/api/products", `{"price":4.99}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
}

func TestUpdateProductKeepsID(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodPut, "/api/product/1", `{"id":99,"name":"Renamed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Renamed", data["name"])
	assert.Equal(t, 19.99, data["price"])
}

func TestUpdateProductNotFound(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodPut, "/api/product/42", `{"name":"Ghost"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProductReturnsRemovedRecord(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodDelete, "/api/product/2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Product deleted successfully", envelope["message"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Gadget", data["name"])

	rec = doRequest(e, http.MethodGet, "/api/product/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUserNotFound(t *testing.T) {
	e := newTestAPI(t, nil)

	rec := doRequest(e, http.MethodGet, "/api/user/9", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "User not found", envelope["message"])
}

func TestCreateOrderRejectsInsufficientStock(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodPost, "/api/orders",
		`{"userId":1,"products":[{"productId":2,"quantity":1}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Not enough stock for Gadget", envelope["message"])
}

func TestCreateOrder(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodPost, "/api/orders",
		`{"userId":1,"products":[{"productId":1,"quantity":2},{"productId":3,"quantity":1}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Order created successfully", envelope["message"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, 43.23, data["total"])
	assert.Equal(t, "pending", data["status"])
}

func TestCartAddAndGet(t *testing.T) {
	e := newTestAPI(t, testCatalog())

	rec := doRequest(e, http.MethodPost, "/api/cart/u1/add", `{"productId":5,"quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Product added to cart", envelope["message"])
	cart := envelope["cart"].([]interface{})
	require.Len(t, cart, 1)

	rec = doRequest(e, http.MethodPost, "/api/cart/u1/add", `{"productId":5,"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	envelope = decodeEnvelope(t, rec)
	cart = envelope["cart"].([]interface{})
	require.Len(t, cart, 1)
	item := cart[0].(map[string]interface{})
	assert.Equal(t, float64(5), item["productId"])
	assert.Equal(t, float64(5), item["quantity"])

	rec = doRequest(e, http.MethodGet, "/api/cart/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	envelope = decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	assert.Len(t, envelope["cart"], 1)
}

func TestGetCartEmptyForUnknownUser(t *testing.T) {
	e := newTestAPI(t, nil)

	rec := doRequest(e, http.MethodGet, "/api/cart/nobody", "")

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	cart, ok := envelope["cart"].([]interface{})
	require.True(t, ok, "cart must be a JSON array even when empty")
	assert.Empty(t, cart)
}
