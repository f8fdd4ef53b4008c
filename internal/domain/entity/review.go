package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductReview is a rating with text a user leaves on a product.
// Rating is constrained to the 1..5 range by the use case layer.
type ProductReview struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Text      string
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
