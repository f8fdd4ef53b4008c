package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(reviews *fakeReviewRepo, products *fakeProductRepo) usecase.ReviewUsecase {
	return NewReviewService(ReviewServiceParams{
		ReviewRepo:  reviews,
		ProductRepo: products,
		Logger:      slog.Default(),
	})
}

func TestReviewService_CreateReview(t *testing.T) {
	author := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	productID := uuid.New()
	products := &fakeProductRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.Product, error) {
			return &entity.Product{ID: id}, nil
		},
	}

	t.Run("Success", func(t *testing.T) {
		srv := newReviewService(&fakeReviewRepo{}, products)

		review, err := srv.CreateReview(context.Background(), author, &usecase.CreateReviewInput{
			ProductID: productID,
			Text:      "Solid build, fast delivery.",
			Rating:    5,
		})
		require.NoError(t, err)
		assert.Equal(t, author.ID, review.UserID)
		assert.Equal(t, productID, review.ProductID)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("RatingBounds", func(t *testing.T) {
		srv := newReviewService(&fakeReviewRepo{}, products)

		for _, rating := range []int{0, -1, 6} {
			review, err := srv.CreateReview(context.Background(), author, &usecase.CreateReviewInput{
				ProductID: productID,
				Text:      "x",
				Rating:    rating,
			})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, review)
		}
	})

	t.Run("MissingProduct", func(t *testing.T) {
		srv := newReviewService(&fakeReviewRepo{}, &fakeProductRepo{})

		review, err := srv.CreateReview(context.Background(), author, &usecase.CreateReviewInput{
			ProductID: uuid.New(),
			Text:      "x",
			Rating:    3,
		})
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
		assert.Nil(t, review)
	})
}

func TestReviewService_ListProductReviews(t *testing.T) {
	productID := uuid.New()
	products := &fakeProductRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.Product, error) {
			return &entity.Product{ID: id}, nil
		},
	}
	reviews := &fakeReviewRepo{
		listFn: func(_ context.Context, id uuid.UUID, _, _ *int) ([]*entity.ProductReview, error) {
			return []*entity.ProductReview{{ID: uuid.New(), ProductID: id, Rating: 4}}, nil
		},
	}
	srv := newReviewService(reviews, products)

	out, err := srv.ListProductReviews(context.Background(), productID, usecase.ListOptions{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, productID, out[0].ProductID)
}
