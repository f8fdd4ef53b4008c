package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// ListOptions carries optional pagination bounds. Pagination is applied
// only when both bounds are present.
type ListOptions struct {
	Offset *int
	Limit  *int
}

// CreateProductInput defines the data required to add a catalog item.
type CreateProductInput struct {
	Title          string
	Description    string
	Price          decimal.Decimal
	StockQuantity  int
	IsAvailable    bool
	CategoryID     uuid.UUID
	CountryID      uuid.UUID
	ManufacturerID uuid.UUID
	ImageURLs      []string
	AttributeIDs   []uuid.UUID
}

// CreateAttributeInput defines the data required to add an attribute.
type CreateAttributeInput struct {
	Title string
	Value string
}

// CatalogUsecase defines the interface for catalog management operations.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, opts ListOptions) ([]*entity.Product, error)

	CreateCategory(ctx context.Context, title string) (*entity.Category, error)
	ListCategories(ctx context.Context, opts ListOptions) ([]*entity.Category, error)

	CreateCountry(ctx context.Context, name string) (*entity.Country, error)
	ListCountries(ctx context.Context, opts ListOptions) ([]*entity.Country, error)

	CreateManufacturer(ctx context.Context, name string) (*entity.Manufacturer, error)
	ListManufacturers(ctx context.Context, opts ListOptions) ([]*entity.Manufacturer, error)

	CreateAttribute(ctx context.Context, input *CreateAttributeInput) (*entity.Attribute, error)
	ListAttributes(ctx context.Context, opts ListOptions) ([]*entity.Attribute, error)

	CreatePaymentMethod(ctx context.Context, name string) (*entity.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, opts ListOptions) ([]*entity.PaymentMethod, error)

	CreateDeliveryMethod(ctx context.Context, name string) (*entity.DeliveryMethod, error)
	ListDeliveryMethods(ctx context.Context, opts ListOptions) ([]*entity.DeliveryMethod, error)
}
