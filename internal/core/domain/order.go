package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusInitial   OrderStatus = "initial"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderItem snapshots a product at the moment the order was placed. Name and
// unit price are copied so later catalog edits do not rewrite order history.
type OrderItem struct {
	ProductID int64   `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// SubTotal returns the snapshot price times quantity.
func (i OrderItem) SubTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Order is owned by exactly one user. Ownership is immutable once created.
type Order struct {
	ID        int64       `json:"id" bson:"_id"`
	UserID    int64       `json:"user_id" bson:"user_id"`
	OrderedAt time.Time   `json:"ordered_at" bson:"ordered_at"`
	Status    OrderStatus `json:"status" bson:"status"`
	Items     []OrderItem `json:"items" bson:"items"`
}

// OwnerID identifies the owning user for ownership-based authorization.
func (o *Order) OwnerID() int64 {
	return o.UserID
}

// Total sums the subtotals of all items.
func (o *Order) Total() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.SubTotal()
	}
	return total
}
