package ports

import (
	"context"

	"github.com/dscommerce/commerce-api/internal/core/authz"
	"github.com/dscommerce/commerce-api/internal/core/domain"
)

// AuthService implements registration and login against the user store.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserDetail is the self-representation returned by GetMe.
type UserDetail struct {
	ID    int64
	Name  string
	Email string
	Roles []string
}

// UserService exposes operations on the authenticated user's own account.
type UserService interface {
	GetMe(ctx context.Context, p *authz.Principal) (*UserDetail, error)
}
