package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for browsing.
type Category struct {
	ID        uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Country is a product's country of origin.
type Country struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manufacturer is the producer of a product.
type Manufacturer struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentMethod is a way an order can be paid, e.g. "card" or "cash".
type PaymentMethod struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeliveryMethod is a carrier an order can be shipped with,
// e.g. "novaposhta" or "ukrposhta".
type DeliveryMethod struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
