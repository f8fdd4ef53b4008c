package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. Price is a fixed-point decimal mapped
// to a NUMERIC(10,2) column; float arithmetic is never used for money.
type Product struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Price          decimal.Decimal
	StockQuantity  int
	IsAvailable    bool
	CategoryID     uuid.UUID
	CountryID      uuid.UUID // Country of origin.
	ManufacturerID uuid.UUID
	Images         []Image     // Populated only by explicit eager-load methods.
	Attributes     []Attribute // Populated only by explicit eager-load methods.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Image is a single picture attached to a product.
type Image struct {
	ID        uuid.UUID
	URL       string
	ProductID uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attribute is a free-form name/value pair shared between products
// through a many-to-many association.
type Attribute struct {
	ID        uuid.UUID
	Title     string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
