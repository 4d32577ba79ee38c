package service

import (
	"context"

	"github.com/dscommerce/commerce-api/internal/core/authz"
	"github.com/dscommerce/commerce-api/internal/core/ports"
)

// UserService exposes the authenticated user's own account.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetMe returns the principal's own representation. Any authenticated role is
// allowed; a missing identity yields unauthorized before any lookup.
func (s *UserService) GetMe(ctx context.Context, p *authz.Principal) (*ports.UserDetail, error) {
	if err := authz.Authorize(p, authz.ActionUserReadSelf); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	return &ports.UserDetail{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Roles: user.Roles,
	}, nil
}
