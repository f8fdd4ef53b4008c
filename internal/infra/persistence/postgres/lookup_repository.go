package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// lookupRepository serves a catalog reference table through the generic
// repository, translating between persistence models and domain entities.
type lookupRepository[M, E any] struct {
	repo       repository.Repository[M]
	toDomain   func(*M) *E
	fromDomain func(*E) *M
	syncBack   func(src *M, dst *E)
}

func (repo *lookupRepository[M, E]) Create(ctx context.Context, item *E) error {
	record := repo.fromDomain(item)
	if err := repo.repo.Create(ctx, record); err != nil {
		return err
	}
	repo.syncBack(record, item)

	return nil
}

func (repo *lookupRepository[M, E]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	record, err := repo.repo.FindOne(ctx, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domainerrors.ErrNotFound
	}

	return repo.toDomain(record), nil
}

func (repo *lookupRepository[M, E]) List(ctx context.Context, offset, limit *int) ([]*E, error) {
	records, err := repo.repo.FindMany(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*E, 0, len(records))
	for i := range records {
		items = append(items, repo.toDomain(&records[i]))
	}

	return items, nil
}

// NewCategoryRepository is the constructor for the category lookup table.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &lookupRepository[model.CategoryModel, entity.Category]{
		repo: NewRepository[model.CategoryModel](db),
		toDomain: func(m *model.CategoryModel) *entity.Category {
			return &entity.Category{ID: m.ID, Title: m.Title, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
		},
		fromDomain: func(e *entity.Category) *model.CategoryModel {
			return &model.CategoryModel{ID: e.ID, Title: e.Title}
		},
		syncBack: func(m *model.CategoryModel, e *entity.Category) {
			e.ID, e.CreatedAt, e.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
		},
	}
}

// NewCountryRepository is the constructor for the country lookup table.
func NewCountryRepository(db *gorm.DB) repository.CountryRepository {
	return &lookupRepository[model.CountryModel, entity.Country]{
		repo: NewRepository[model.CountryModel](db),
		toDomain: func(m *model.CountryModel) *entity.Country {
			return &entity.Country{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
		},
		fromDomain: func(e *entity.Country) *model.CountryModel {
			return &model.CountryModel{ID: e.ID, Name: e.Name}
		},
		syncBack: func(m *model.CountryModel, e *entity.Country) {
			e.ID, e.CreatedAt, e.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
		},
	}
}

// NewManufacturerRepository is the constructor for the manufacturer lookup table.
func NewManufacturerRepository(db *gorm.DB) repository.ManufacturerRepository {
	return &lookupRepository[model.ManufacturerModel, entity.Manufacturer]{
		repo: NewRepository[model.ManufacturerModel](db),
		toDomain: func(m *model.ManufacturerModel) *entity.Manufacturer {
			return &entity.Manufacturer{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
		},
		fromDomain: func(e *entity.Manufacturer) *model.ManufacturerModel {
			return &model.ManufacturerModel{ID: e.ID, Name: e.Name}
		},
		syncBack: func(m *model.ManufacturerModel, e *entity.Manufacturer) {
			e.ID, e.CreatedAt, e.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
		},
	}
}

// NewAttributeRepository is the constructor for the attribute lookup table.
func NewAttributeRepository(db *gorm.DB) repository.AttributeRepository {
	return &lookupRepository[model.AttributeModel, entity.Attribute]{
		repo: NewRepository[model.AttributeModel](db),
		toDomain: func(m *model.AttributeModel) *entity.Attribute {
			return &entity.Attribute{ID: m.ID, Title: m.Title, Value: m.Value, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
		},
		fromDomain: func(e *entity.Attribute) *model.AttributeModel {
			return &model.AttributeModel{ID: e.ID, Title: e.Title, Value: e.Value}
		},
		syncBack: func(m *model.AttributeModel, e *entity.Attribute) {
			e.ID, e.CreatedAt, e.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
		},
	}
}

// NewPaymentMethodRepository is the constructor for the payment method lookup table.
func NewPaymentMethodRepository(db *gorm.DB) repository.PaymentMethodRepository {
	return &lookupRepository[model.PaymentMethodModel, entity.PaymentMethod]{
		repo: NewRepository[model.PaymentMethodModel](db),
		toDomain: func(m *model.PaymentMethodModel) *entity.PaymentMethod {
			return &entity.PaymentMethod{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
		},
		fromDomain: func(e *entity.PaymentMethod) *model.PaymentMethodModel {
			return &model.PaymentMethodModel{ID: e.ID, Name: e.Name}
		},
		syncBack: func(m *model.PaymentMethodModel, e *entity.PaymentMethod) {
			e.ID, e.CreatedAt, e.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
		},
	}
}

// NewDeliveryMethodRepository is the constructor for the delivery method lookup table.
func NewDeliveryMethodRepository(db *gorm.DB) repository.DeliveryMethodRepository {
	return &lookupRepository[model.DeliveryMethodModel, entity.DeliveryMethod]{
		repo: NewRepository[model.DeliveryMethodModel](db),
		toDomain: func(m *model.DeliveryMethodModel) *entity.DeliveryMethod {
			return &entity.DeliveryMethod{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
		},
		fromDomain: func(e *entity.DeliveryMethod) *model.DeliveryMethodModel {
			return &model.DeliveryMethodModel{ID: e.ID, Name: e.Name}
		},
		syncBack: func(m *model.DeliveryMethodModel, e *entity.DeliveryMethod) {
			e.ID, e.CreatedAt, e.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
		},
	}
}
