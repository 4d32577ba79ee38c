package ports

import (
	"context"

	"github.com/dscommerce/commerce-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Orders are
// created once and never rewritten by this core.
type OrderRepository interface {
	// Create persists a new order and assigns its id.
	Create(ctx context.Context, o *domain.Order) error
	// FindByID returns domain.ErrOrderNotFound for unknown ids.
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
}
