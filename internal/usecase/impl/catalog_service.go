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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo        repository.ProductRepository
	categoryRepo       repository.CategoryRepository
	countryRepo        repository.CountryRepository
	manufacturerRepo   repository.ManufacturerRepository
	attributeRepo      repository.AttributeRepository
	paymentMethodRepo  repository.PaymentMethodRepository
	deliveryMethodRepo repository.DeliveryMethodRepository
	logger             *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo        repository.ProductRepository
	CategoryRepo       repository.CategoryRepository
	CountryRepo        repository.CountryRepository
	ManufacturerRepo   repository.ManufacturerRepository
	AttributeRepo      repository.AttributeRepository
	PaymentMethodRepo  repository.PaymentMethodRepository
	DeliveryMethodRepo repository.DeliveryMethodRepository
	Logger             *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:        params.ProductRepo,
		categoryRepo:       params.CategoryRepo,
		countryRepo:        params.CountryRepo,
		manufacturerRepo:   params.ManufacturerRepo,
		attributeRepo:      params.AttributeRepo,
		paymentMethodRepo:  params.PaymentMethodRepo,
		deliveryMethodRepo: params.DeliveryMethodRepo,
		logger:             params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a catalog item. Referenced category, country and
// manufacturer must exist; attribute bindings are resolved by ID.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("title", input.Title))

	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if input.StockQuantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stock quantity must not be negative")
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, errors.Wrap(err, "unknown category")
	}
	if _, err := srv.countryRepo.FindByID(ctx, input.CountryID); err != nil {
		return nil, errors.Wrap(err, "unknown country")
	}
	if _, err := srv.manufacturerRepo.FindByID(ctx, input.ManufacturerID); err != nil {
		return nil, errors.Wrap(err, "unknown manufacturer")
	}

	attributes := make([]entity.Attribute, 0, len(input.AttributeIDs))
	for _, attrID := range input.AttributeIDs {
		attr, err := srv.attributeRepo.FindByID(ctx, attrID)
		if err != nil {
			return nil, errors.Wrap(err, "unknown attribute")
		}
		attributes = append(attributes, *attr)
	}

	images := make([]entity.Image, 0, len(input.ImageURLs))
	for _, url := range input.ImageURLs {
		images = append(images, entity.Image{URL: url})
	}

	product := &entity.Product{
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		StockQuantity:  input.StockQuantity,
		IsAvailable:    input.IsAvailable,
		CategoryID:     input.CategoryID,
		CountryID:      input.CountryID,
		ManufacturerID: input.ManufacturerID,
		Images:         images,
		Attributes:     attributes,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// GetProduct returns a product with images and attributes loaded.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ListProducts returns the catalog with images loaded.
func (srv *catalogService) ListProducts(ctx context.Context, opts usecase.ListOptions) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, opts.Offset, opts.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateCategory adds a product category.
func (srv *catalogService) CreateCategory(ctx context.Context, title string) (*entity.Category, error) {
	category := &entity.Category{Title: title}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// ListCategories returns product categories.
func (srv *catalogService) ListCategories(ctx context.Context, opts usecase.ListOptions) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx, opts.Offset, opts.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCountry adds a country of origin.
func (srv *catalogService) CreateCountry(ctx context.Context, name string) (*entity.Country, error) {
	country := &entity.Country{Name: name}
	if err := srv.countryRepo.Create(ctx, country); err != nil {
		return nil, errors.Wrap(err, "failed to create country")
	}

	return country, nil
}

// ListCountries returns countries of origin.
func (srv *catalogService) ListCountries(ctx context.Context, opts usecase.ListOptions) ([]*entity.Country, error) {
	countries, err := srv.countryRepo.List(ctx, opts.Offset, opts.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	return countries, nil
}

// CreateManufacturer adds a manufacturer.
func (srv *catalogService) CreateManufacturer(ctx context.Context, name string) (*entity.Manufacturer, error) {
	manufacturer := &entity.Manufacturer{Name: name}
	if err := srv.manufacturerRepo.Create(ctx, manufacturer); err != nil {
		return nil, errors.Wrap(err, "failed to create manufacturer")
	}

	return manufacturer, nil
}

// ListManufacturers returns manufacturers.
func (srv *catalogService) ListManufacturers(ctx context.Context, opts usecase.ListOptions) ([]*entity.Manufacturer, error) {
	manufacturers, err := srv.manufacturerRepo.List(ctx, opts.Offset, opts.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list manufacturers")
	}

	return manufacturers, nil
}

// CreateAttribute adds a shared product attribute.
func (srv *catalogService) CreateAttribute(ctx context.Context, input *usecase.CreateAttributeInput) (*entity.Attribute, error) {
	attribute := &entity.Attribute{Title: input.Title, Value: input.Value}
	if err := srv.attributeRepo.Create(ctx, attribute); err != nil {
		return nil, errors.Wrap(err, "failed to create attribute")
	}

	return attribute, nil
}

// ListAttributes returns shared product attributes.
func (srv *catalogService) ListAttributes(ctx context.Context, opts usecase.ListOptions) ([]*entity.Attribute, error) {
	attributes, err := srv.attributeRepo.List(ctx, opts.Offset, opts.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attributes")
	}

	return attributes, nil
}

// CreatePaymentMethod adds a payment method.
func (srv *catalogService) CreatePaymentMethod(ctx context.Context, name string) (*entity.PaymentMethod, error) {
	method := &entity.PaymentMethod{Name: name}
	if err := srv.paymentMethodRepo.Create(ctx, method); err != nil {
		return nil, errors.Wrap(err, "failed to create payment method")
	}

	return method, nil
}

// ListPaymentMethods returns the ways an order can be paid.
func (srv *catalogService) ListPaymentMethods(ctx context.Context, opts usecase.ListOptions) ([]*entity.PaymentMethod, error) {
	methods, err := srv.paymentMethodRepo.List(ctx, opts.Offset, opts.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	return methods, nil
}

// CreateDeliveryMethod adds a delivery method.
func (srv *catalogService) CreateDeliveryMethod(ctx context.Context, name string) (*entity.DeliveryMethod, error) {
	method := &entity.DeliveryMethod{Name: name}
	if err := srv.deliveryMethodRepo.Create(ctx, method); err != nil {
		return nil, errors.Wrap(err, "failed to create delivery method")
	}

	return method, nil
}

// ListDeliveryMethods returns the carriers an order can ship with.
func (srv *catalogService) ListDeliveryMethods(ctx context.Context, opts usecase.ListOptions) ([]*entity.DeliveryMethod, error) {
	methods, err := srv.deliveryMethodRepo.List(ctx, opts.Offset, opts.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery methods")
	}

	return methods, nil
}
