package services

import (
	"context"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// ProductService implements catalog business operations
type ProductService struct {
	productRepo ports.ProductRepository
	logger      *logger.Logger
}

// NewProductService creates a new product service
func NewProductService(productRepo ports.ProductRepository, appLogger *logger.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      appLogger.WithComponent("product_service"),
	}
}

// ListProducts returns the full catalog
func (s *ProductService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return s.productRepo.List(ctx)
}

// SearchProducts returns products matching the free-text query. An empty
// query returns the full catalog unfiltered.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]entities.Product, error) {
	if query == "" {
		return s.productRepo.List(ctx)
	}
	return s.productRepo.Search(ctx, query)
}

// GetProduct returns a single product by id
func (s *ProductService) GetProduct(ctx context.Context, id int) (*entities.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateProduct adds a product to the catalog and persists it
func (s *ProductService) CreateProduct(ctx context.Context, req ports.CreateProductRequest) (*entities.Product, error) {
	product := &entities.Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Stock:       req.Stock,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Infow("Product created",
		"product_id", product.ID,
		"name", product.Name,
		"category", product.Category,
	)

	return product, nil
}

// UpdateProduct overlays the provided fields onto an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id int, req ports.UpdateProductRequest) (*entities.Product, error) {
	patch := ports.ProductPatch{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Stock:       req.Stock,
	}

	product, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Product updated", "product_id", product.ID)

	return product, nil
}

// DeleteProduct removes a product and returns the removed record
func (s *ProductService) DeleteProduct(ctx context.Context, id int) (*entities.Product, error) {
	product, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Product deleted", "product_id", id, "name", product.Name)

	return product, nil
}
