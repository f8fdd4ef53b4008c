package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the domain ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new product review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.ProductReview) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown product or user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// ListByProduct returns reviews for a product, newest first. Pagination
// applies only when both bounds are present.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID, offset, limit *int) ([]*entity.ProductReview, error) {
	tx := repo.db.WithContext(ctx).
		Where(map[string]any{"product_id": productID}).
		Order("created_at DESC")
	if offset != nil && limit != nil {
		tx = tx.Offset(*offset).Limit(*limit)
	}

	var reviewMs []model.ProductReviewModel
	if err := tx.Find(&reviewMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.ProductReview, 0, len(reviewMs))
	for i := range reviewMs {
		reviews = append(reviews, toReviewDomain(&reviewMs[i]))
	}

	return reviews, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ProductReviewModel to a domain entity.
func toReviewDomain(data *model.ProductReviewModel) *entity.ProductReview {
	if data == nil {
		return nil
	}

	return &entity.ProductReview{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Text:      data.Text,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromReviewDomain converts a domain entity to a GORM ProductReviewModel.
func fromReviewDomain(data *entity.ProductReview) *model.ProductReviewModel {
	if data == nil {
		return nil
	}

	return &model.ProductReviewModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Text:      data.Text,
		Rating:    data.Rating,
	}
}
