package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// ProductRepository defines persistence operations for products. Eager
// loading is explicit per access pattern so fetch cost stays visible.
type ProductRepository interface {
	// Create persists a new product together with its images and
	// attribute bindings.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID returns the bare product row, or ErrProductNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDWithDetails returns the product with images and attributes
	// loaded, or ErrProductNotFound.
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns products with images loaded. Pagination is applied
	// only when both bounds are present.
	List(ctx context.Context, offset, limit *int) ([]*entity.Product, error)
}
