package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product together with its images and attribute
// bindings. GORM's association handling inserts the related rows in a
// single transaction.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown category, country or manufacturer")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves the bare product row without associations.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).Where(map[string]any{"id": id}).Take(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDWithDetails retrieves the product with images and attributes loaded.
func (repo *productRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images").
		Preload("Attributes").
		Where(map[string]any{"id": id}).
		Take(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product with details")
	}

	return toProductDomain(&productM), nil
}

// List returns products with images loaded. Pagination applies only when
// both bounds are present.
func (repo *productRepository) List(ctx context.Context, offset, limit *int) ([]*entity.Product, error) {
	tx := repo.db.WithContext(ctx).Preload("Images")
	if offset != nil && limit != nil {
		tx = tx.Offset(*offset).Limit(*limit)
	}

	var productMs []model.ProductModel
	if err := tx.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]entity.Image, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, entity.Image{
			ID:        img.ID,
			URL:       img.URL,
			ProductID: img.ProductID,
			CreatedAt: img.CreatedAt,
			UpdatedAt: img.UpdatedAt,
		})
	}

	attributes := make([]entity.Attribute, 0, len(data.Attributes))
	for _, attr := range data.Attributes {
		attributes = append(attributes, entity.Attribute{
			ID:        attr.ID,
			Title:     attr.Title,
			Value:     attr.Value,
			CreatedAt: attr.CreatedAt,
			UpdatedAt: attr.UpdatedAt,
		})
	}

	return &entity.Product{
		ID:             data.ID,
		Title:          data.Title,
		Description:    data.Description,
		Price:          data.Price,
		StockQuantity:  data.StockQuantity,
		IsAvailable:    data.IsAvailable,
		CategoryID:     data.CategoryID,
		CountryID:      data.CountryID,
		ManufacturerID: data.ManufacturerID,
		Images:         images,
		Attributes:     attributes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := make([]model.ImageModel, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, model.ImageModel{
			ID:  img.ID,
			URL: img.URL,
		})
	}

	attributes := make([]model.AttributeModel, 0, len(data.Attributes))
	for _, attr := range data.Attributes {
		attributes = append(attributes, model.AttributeModel{
			ID:    attr.ID,
			Title: attr.Title,
			Value: attr.Value,
		})
	}

	return &model.ProductModel{
		ID:             data.ID,
		Title:          data.Title,
		Description:    data.Description,
		Price:          data.Price,
		StockQuantity:  data.StockQuantity,
		IsAvailable:    data.IsAvailable,
		CategoryID:     data.CategoryID,
		CountryID:      data.CountryID,
		ManufacturerID: data.ManufacturerID,
		Images:         images,
		Attributes:     attributes,
	}
}
