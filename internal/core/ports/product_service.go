package ports

import (
	"context"

	"github.com/dscommerce/commerce-api/internal/core/authz"
)

// ProductInput carries all fields for creating or updating a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImgURL      string
	CategoryIDs []int64
}

// CategoryView is a resolved category reference (id, name).
type CategoryView struct {
	ID   int64
	Name string
}

// ProductDetail is the full product view with its resolved category list.
type ProductDetail struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	ImgURL      string
	Categories  []CategoryView
}

// ProductPage is one stable page of the catalog listing.
type ProductPage struct {
	Items      []ProductDetail
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// ProductService defines use-case operations for the catalog. Reads are
// public; writes require an admin principal.
type ProductService interface {
	FindByID(ctx context.Context, id int64) (*ProductDetail, error)
	FindAll(ctx context.Context, filter ListProductsFilter) (*ProductPage, error)
	Create(ctx context.Context, p *authz.Principal, input ProductInput) (*ProductDetail, error)
	Update(ctx context.Context, p *authz.Principal, id int64, input ProductInput) (*ProductDetail, error)
	Delete(ctx context.Context, p *authz.Principal, id int64) error
}
