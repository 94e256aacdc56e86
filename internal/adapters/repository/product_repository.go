package repository

import (
	"context"
	"strings"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/infrastructure/storage"
	"github.com/storefront/core/internal/ports"
)

const productsCollection = "products"

// ProductRepository is the flat-file implementation of ports.ProductRepository.
// Every call reads the whole collection from disk; mutations rewrite it.
type ProductRepository struct {
	store  *storage.Store
	logger *logger.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(store *storage.Store, appLogger *logger.Logger) *ProductRepository {
	return &ProductRepository{
		store:  store,
		logger: appLogger.WithComponent("product_repository"),
	}
}

func (r *ProductRepository) load() []entities.Product {
	products := []entities.Product{}
	// Read treats missing or malformed files as an empty collection.
	_ = r.store.Read(productsCollection, &products)
	return products
}

// List returns every product in the catalog
func (r *ProductRepository) List(ctx context.Context) ([]entities.Product, error) {
	return r.load(), nil
}

// Search returns products whose name, description or category contain the
// query, case-insensitively. The three fields are OR-combined.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]entities.Product, error) {
	q := strings.ToLower(query)

	matched := []entities.Product{}
	for _, p := range r.load() {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

// GetByID returns the product with the given id
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*entities.Product, error) {
	for _, p := range r.load() {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}

	return nil, entities.ErrProductNotFound
}

// Create assigns the next id, appends the product and persists the
// collection. The id is max(existing)+1, or 1 for an empty catalog.
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	return r.store.Update(productsCollection, func() error {
		products := r.load()

		nextID := 1
		for _, p := range products {
			if p.ID >= nextID {
				nextID = p.ID + 1
			}
		}
		product.ID = nextID

		products = append(products, *product)

		err := r.store.Write(productsCollection, products)
		r.logger.LogStoreWrite(productsCollection, len(products), err)
		return err
	})
}

// Update overlays the non-nil patch fields onto the stored product. The id
// is never touched.
func (r *ProductRepository) Update(ctx context.Context, id int, patch ports.ProductPatch) (*entities.Product, error) {
	var updated *entities.Product

	err := r.store.Update(productsCollection, func() error {
		products := r.load()

		idx := -1
		for i, p := range products {
			if p.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return entities.ErrProductNotFound
		}

		p := &products[idx]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}

		err := r.store.Write(productsCollection, products)
		r.logger.LogStoreWrite(productsCollection, len(products), err)
		if err != nil {
			return err
		}

		result := *p
		updated = &result
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the product with the given id and returns the removed
// record. The file is only rewritten when the product existed.
func (r *ProductRepository) Delete(ctx context.Context, id int) (*entities.Product, error) {
	var deleted *entities.Product

	err := r.store.Update(productsCollection, func() error {
		products := r.load()

		idx := -1
		for i, p := range products {
			if p.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return entities.ErrProductNotFound
		}

		removed := products[idx]
		products = append(products[:idx], products[idx+1:]...)

		err := r.store.Write(productsCollection, products)
		r.logger.LogStoreWrite(productsCollection, len(products), err)
		if err != nil {
			return err
		}

		deleted = &removed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
