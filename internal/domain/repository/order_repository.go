package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Create persists the order and all of its items atomically.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns the order with items loaded, or ErrOrderNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns the user's orders with items loaded, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus transitions the order to the given status, or returns
	// ErrOrderNotFound when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
