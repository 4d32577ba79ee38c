package ports

import (
	"context"

	"github.com/dscommerce/commerce-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user and assigns its id. A duplicate email yields
	// domain.ErrUserExists.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
