package ports

import (
	"context"
	"time"

	"github.com/dscommerce/commerce-api/internal/core/authz"
)

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

// OrderItemView is a resolved order line with its price snapshot.
type OrderItemView struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
	SubTotal  float64
}

// ClientView identifies the order's owning user.
type ClientView struct {
	ID   int64
	Name string
}

// OrderDetail is the full order view returned by the service.
type OrderDetail struct {
	ID        int64
	OrderedAt time.Time
	Status    string
	Client    ClientView
	Items     []OrderItemView
	Total     float64
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	// Create places a new order owned by the principal. Requires the client
	// role and at least one item.
	Create(ctx context.Context, p *authz.Principal, items []OrderItemInput) (*OrderDetail, error)
	// FindByID returns an order. Unknown ids are not-found for every role;
	// existing orders are readable by admins and their owner only.
	FindByID(ctx context.Context, p *authz.Principal, id int64) (*OrderDetail, error)
}
