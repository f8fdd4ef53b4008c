package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// CreateReviewInput defines the data required to review a product.
type CreateReviewInput struct {
	ProductID uuid.UUID
	Text      string
	Rating    int
}

// ReviewUsecase defines the interface for product review operations.
type ReviewUsecase interface {
	// CreateReview attaches a review to an existing product. Rating is
	// constrained to the 1..5 range.
	CreateReview(ctx context.Context, user *entity.User, input *CreateReviewInput) (*entity.ProductReview, error)

	// ListProductReviews returns reviews for a product, newest first.
	ListProductReviews(ctx context.Context, productID uuid.UUID, opts ListOptions) ([]*entity.ProductReview, error)
}
