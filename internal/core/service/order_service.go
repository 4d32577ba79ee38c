package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dscommerce/commerce-api/internal/core/authz"
	"github.com/dscommerce/commerce-api/internal/core/domain"
	"github.com/dscommerce/commerce-api/internal/core/ports"
)

// OrderService implements order placement and retrieval. Orders are owned by
// the client that placed them and never change ownership.
type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, products ports.ProductRepository, users ports.UserRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, users: users, logger: logger}
}

// Create places a new order owned by the principal. The pipeline is
// authorize, validate, resolve products, persist: an admin is rejected before
// the item list is even inspected, and an empty item list is rejected before
// any product lookup.
func (s *OrderService) Create(ctx context.Context, p *authz.Principal, items []ports.OrderItemInput) (*ports.OrderDetail, error) {
	if err := authz.Authorize(p, authz.ActionOrderCreate); err != nil {
		return nil, err
	}
	if err := domain.NewValidationError(orderRules.Validate(items)); err != nil {
		return nil, err
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		product, err := s.products.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		// Snapshot name and unit price at order time.
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  it.Quantity,
		})
	}

	order := &domain.Order{
		UserID:    p.UserID,
		OrderedAt: time.Now().UTC(),
		Status:    domain.StatusInitial,
		Items:     orderItems,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Int64("user_id", p.UserID).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Int64("order_id", order.ID).Int64("user_id", p.UserID).Int("items", len(order.Items)).Msg("order created")
	return toOrderDetail(order, ports.ClientView{ID: p.UserID, Name: p.Name}), nil
}

// FindByID retrieves an order. An unknown id is not-found for every role;
// ownership is checked only after existence, so a foreign order yields
// forbidden rather than not-found.
func (s *OrderService) FindByID(ctx context.Context, p *authz.Principal, id int64) (*ports.OrderDetail, error) {
	if err := authz.Authorize(p, authz.ActionOrderRead); err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.AuthorizeOwner(p, authz.ActionOrderRead, order); err != nil {
		return nil, err
	}

	client := ports.ClientView{ID: order.UserID}
	owner, err := s.users.FindByID(ctx, order.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("order_id", id).Int64("user_id", order.UserID).Msg("order owner lookup failed")
	} else {
		client.Name = owner.Name
	}

	return toOrderDetail(order, client), nil
}

func toOrderDetail(o *domain.Order, client ports.ClientView) *ports.OrderDetail {
	items := make([]ports.OrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ports.OrderItemView{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			SubTotal:  it.SubTotal(),
		})
	}
	return &ports.OrderDetail{
		ID:        o.ID,
		OrderedAt: o.OrderedAt,
		Status:    string(o.Status),
		Client:    client,
		Items:     items,
		Total:     o.Total(),
	}
}
