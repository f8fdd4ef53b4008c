package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// LookupRepository is the shared shape of the catalog reference tables.
// Each lookup kind gets a dedicated alias so dependencies stay explicit
// at injection sites.
type LookupRepository[E any] interface {
	Create(ctx context.Context, item *E) error
	FindByID(ctx context.Context, id uuid.UUID) (*E, error)
	List(ctx context.Context, offset, limit *int) ([]*E, error)
}

type CategoryRepository interface {
	LookupRepository[entity.Category]
}

type CountryRepository interface {
	LookupRepository[entity.Country]
}

type ManufacturerRepository interface {
	LookupRepository[entity.Manufacturer]
}

type AttributeRepository interface {
	LookupRepository[entity.Attribute]
}

type PaymentMethodRepository interface {
	LookupRepository[entity.PaymentMethod]
}

type DeliveryMethodRepository interface {
	LookupRepository[entity.DeliveryMethod]
}
