package ports

import "context"

// ProductCache is a read-through cache for resolved product views. Lookups
// that miss return (nil, nil); cache failures are never fatal to a read.
type ProductCache interface {
	Get(ctx context.Context, id int64) (*ProductDetail, error)
	Set(ctx context.Context, detail *ProductDetail) error
	Invalidate(ctx context.Context, id int64) error
}
