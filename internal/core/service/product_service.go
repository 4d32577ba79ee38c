package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dscommerce/commerce-api/internal/core/authz"
	"github.com/dscommerce/commerce-api/internal/core/domain"
	"github.com/dscommerce/commerce-api/internal/core/ports"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50
)

// ProductService implements catalog reads and admin-only catalog writes.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	cache      ports.ProductCache
	logger     zerolog.Logger
}

// NewProductService wires the catalog use cases. The cache is optional; a nil
// cache disables read-through caching.
func NewProductService(products ports.ProductRepository, categories ports.CategoryRepository, cache ports.ProductCache, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, categories: categories, cache: cache, logger: logger}
}

// FindByID returns a product with its resolved categories. Public, no
// principal required.
func (s *ProductService) FindByID(ctx context.Context, id int64) (*ports.ProductDetail, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Int64("product_id", id).Msg("product cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail, err := s.toDetail(ctx, product)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, detail); err != nil {
			s.logger.Warn().Err(err).Int64("product_id", id).Msg("product cache write failed")
		}
	}
	return detail, nil
}

// FindAll returns one page of the catalog. The same filter, page, and size
// always yield the same page; the default order is ascending name.
func (s *ProductService) FindAll(ctx context.Context, filter ports.ListProductsFilter) (*ports.ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 {
		filter.Size = defaultPageSize
	}
	if filter.Size > maxPageSize {
		filter.Size = maxPageSize
	}

	products, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ports.ProductDetail, 0, len(products))
	for _, p := range products {
		detail, err := s.toDetail(ctx, p)
		if err != nil {
			return nil, err
		}
		items = append(items, *detail)
	}

	totalPages := int((total + int64(filter.Size) - 1) / int64(filter.Size))
	return &ports.ProductPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Size:       filter.Size,
		TotalPages: totalPages,
	}, nil
}

// Create inserts a new catalog product. Admin only; all field rules run
// before the write so the response carries every violation at once.
func (s *ProductService) Create(ctx context.Context, p *authz.Principal, input ports.ProductInput) (*ports.ProductDetail, error) {
	if err := authz.Authorize(p, authz.ActionProductWrite); err != nil {
		return nil, err
	}
	if err := domain.NewValidationError(productRules.Validate(input)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImgURL:      input.ImgURL,
		CategoryIDs: input.CategoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return s.toDetail(ctx, product)
}

// Update replaces an existing product. Existence is confirmed before any
// field rule runs, so an unknown id never reports field violations.
func (s *ProductService) Update(ctx context.Context, p *authz.Principal, id int64, input ports.ProductInput) (*ports.ProductDetail, error) {
	if err := authz.Authorize(p, authz.ActionProductWrite); err != nil {
		return nil, err
	}

	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.NewValidationError(productRules.Validate(input)); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.ImgURL = input.ImgURL
	existing.CategoryIDs = input.CategoryIDs
	existing.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, err
	}
	s.invalidate(ctx, id)

	s.logger.Info().Int64("product_id", id).Msg("product updated")
	return s.toDetail(ctx, existing)
}

// Delete removes a product. A product still referenced by order items is
// rejected with domain.ErrProductInUse; the repository performs the reference
// check and the delete in one transaction.
func (s *ProductService) Delete(ctx context.Context, p *authz.Principal, id int64) error {
	if err := authz.Authorize(p, authz.ActionProductWrite); err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("product_id", id).Msg("product cache invalidation failed")
	}
}

// toDetail resolves the category references into the read-side view,
// preserving the order stored on the product.
func (s *ProductService) toDetail(ctx context.Context, p *domain.Product) (*ports.ProductDetail, error) {
	resolved, err := s.categories.FindByIDs(ctx, p.CategoryIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Category, len(resolved))
	for _, c := range resolved {
		byID[c.ID] = c
	}

	views := make([]ports.CategoryView, 0, len(p.CategoryIDs))
	for _, id := range p.CategoryIDs {
		if c, ok := byID[id]; ok {
			views = append(views, ports.CategoryView{ID: c.ID, Name: c.Name})
		}
	}

	return &ports.ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImgURL:      p.ImgURL,
		Categories:  views,
	}, nil
}
