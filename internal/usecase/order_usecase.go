package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data required to place an order. The total
// is never part of the input: it is computed from product price snapshots.
type CreateOrderInput struct {
	Items            []OrderItemInput
	DeliveryAddress  string
	PaymentMethodID  uuid.UUID
	DeliveryMethodID uuid.UUID
}

// OrderUsecase defines the interface for order business operations. The
// caller identity decides visibility: regular users see only their own
// orders, admins and workers see and manage all of them.
type OrderUsecase interface {
	// CreateOrder places an order for the user, snapshotting unit prices
	// and computing the total server-side. New orders start in status new.
	CreateOrder(ctx context.Context, user *entity.User, input *CreateOrderInput) (*entity.Order, error)

	// ListOrders returns the user's own orders, newest first.
	ListOrders(ctx context.Context, user *entity.User) ([]*entity.Order, error)

	// GetOrder returns one order. Another user's order is Forbidden unless
	// the caller can manage orders.
	GetOrder(ctx context.Context, user *entity.User, id uuid.UUID) (*entity.Order, error)

	// UpdateOrderStatus transitions an order. Restricted to roles that can
	// manage orders.
	UpdateOrderStatus(ctx context.Context, user *entity.User, id uuid.UUID, status entity.OrderStatus) error
}
