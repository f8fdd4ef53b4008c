package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPaid, OrderStatusAccepted, OrderStatusCompleted, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// Order is a purchase made by a user. TotalPrice is always computed
// server-side as the sum of item unit price times quantity.
type Order struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	TotalPrice       decimal.Decimal
	DeliveryAddress  string
	Status           OrderStatus
	PaymentMethodID  uuid.UUID
	DeliveryMethodID uuid.UUID
	Items            []OrderItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderItem is one line of an order. UnitPrice snapshots the product price
// at the moment the order was placed, so later price changes do not
// rewrite history.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal returns unit price times quantity for this line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
