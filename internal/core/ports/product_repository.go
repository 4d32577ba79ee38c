package ports

import (
	"context"

	"github.com/dscommerce/commerce-api/internal/core/domain"
)

// ListProductsFilter carries all query parameters for listing products.
type ListProductsFilter struct {
	Name string // optional: case-insensitive partial match on product name
	Page int    // 1-based
	Size int    // max rows per page (capped by the service)
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// Create persists a new product and assigns its id.
	Create(ctx context.Context, p *domain.Product) error
	// Update replaces an existing product. Returns domain.ErrProductNotFound
	// when the id is unknown.
	Update(ctx context.Context, p *domain.Product) error
	// Delete removes a product. The reference check against order items and
	// the delete run inside one transaction; a referenced product yields
	// domain.ErrProductInUse, an unknown id domain.ErrProductNotFound.
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
}

// CategoryRepository reads category reference data.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	// FindByIDs resolves the given ids; unknown ids are silently omitted.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Category, error)
}
