package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for product review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type reviewView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

func toReviewView(review *entity.ProductReview) reviewView {
	return reviewView{
		ID:        review.ID,
		UserID:    review.UserID,
		ProductID: review.ProductID,
		Text:      review.Text,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}

type createReviewRequest struct {
	Text   string `json:"text" validate:"max=2000"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

// CreateReview attaches a review to a product for the authenticated user.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), user, &usecase.CreateReviewInput{
		ProductID: productID,
		Text:      req.Text,
		Rating:    req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewView(review), "Review created successfully")
}

// ListReviews returns reviews for a product, newest first.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListProductReviews(c.Request().Context(), productID, parseListOptions(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]reviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, toReviewView(review))
	}

	return response.Success(c, http.StatusOK, views, "")
}
