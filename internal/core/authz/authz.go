// Package authz decides ALLOW/DENY for every operation in the core. Actions
// are mapped to required roles in a single table instead of per-handler
// conditionals, and ownership checks are generic over any owned resource.
package authz

import (
	"github.com/dscommerce/commerce-api/internal/core/domain"
)

// Role is a coarse permission group attached to a principal.
type Role string

const (
	RoleAdmin  Role = domain.RoleAdmin
	RoleClient Role = domain.RoleClient
)

// Principal is the authenticated identity attached to a request. It is built
// once from verified token claims and never mutated.
type Principal struct {
	UserID int64
	Name   string
	Email  string
	Roles  []Role
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Action tags an operation with its authorization requirements.
type Action string

const (
	ActionProductWrite Action = "product:write"
	ActionOrderCreate  Action = "order:create"
	ActionOrderRead    Action = "order:read"
	ActionUserReadSelf Action = "user:read-self"
)

// requiredRoles is the per-action role table. Roles are exclusive per action:
// admins manage the catalog but cannot place orders, clients place orders but
// cannot touch the catalog.
var requiredRoles = map[Action][]Role{
	ActionProductWrite: {RoleAdmin},
	ActionOrderCreate:  {RoleClient},
	ActionOrderRead:    {RoleAdmin, RoleClient},
	ActionUserReadSelf: {RoleAdmin, RoleClient},
}

// Authorize checks that the principal exists and carries a role allowed for
// the action. A missing identity yields ErrUnauthorized, a valid identity
// lacking the role yields ErrForbidden.
func Authorize(p *Principal, action Action) error {
	if p == nil || p.UserID == 0 {
		return domain.ErrUnauthorized
	}
	allowed, ok := requiredRoles[action]
	if !ok {
		return domain.ErrForbidden
	}
	for _, role := range allowed {
		if p.HasRole(role) {
			return nil
		}
	}
	return domain.ErrForbidden
}

// Owned is any resource with a single owning user.
type Owned interface {
	OwnerID() int64
}

// AuthorizeOwner runs the role check and then the ownership check: admins may
// access any resource, everyone else only their own. Callers must confirm the
// resource exists first, so a nonexistent id surfaces as not-found for every
// role.
func AuthorizeOwner(p *Principal, action Action, resource Owned) error {
	if err := Authorize(p, action); err != nil {
		return err
	}
	if p.HasRole(RoleAdmin) {
		return nil
	}
	if resource.OwnerID() != p.UserID {
		return domain.ErrForbidden
	}
	return nil
}
