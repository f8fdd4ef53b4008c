package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductReviewModel mirrors the 'product_reviews' table.
type ProductReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductReviewModel) TableName() string {
	return "product_reviews"
}
