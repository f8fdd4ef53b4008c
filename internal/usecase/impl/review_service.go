package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview attaches a review to an existing product.
func (srv *reviewService) CreateReview(ctx context.Context, user *entity.User, input *usecase.CreateReviewInput) (*entity.ProductReview, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to load product for review")
	}

	review := &entity.ProductReview{
		UserID:    user.ID,
		ProductID: input.ProductID,
		Text:      input.Text,
		Rating:    input.Rating,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Error("Failed to create review", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID))

	return review, nil
}

// ListProductReviews returns reviews for a product.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID, opts usecase.ListOptions) ([]*entity.ProductReview, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to load product for reviews")
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID, opts.Offset, opts.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
