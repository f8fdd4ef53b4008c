package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// ReviewRepository defines persistence operations for product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.ProductReview) error

	// ListByProduct returns reviews for a product. Pagination is applied
	// only when both bounds are present.
	ListByProduct(ctx context.Context, productID uuid.UUID, offset, limit *int) ([]*entity.ProductReview, error)
}
