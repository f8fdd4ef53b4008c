package postgres

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormRepository is the generic read/create implementation shared by the
// lookup tables. M is a persistence model with a TableName method.
type gormRepository[M any] struct {
	db *gorm.DB
}

// NewRepository builds a generic repository over a single model type.
func NewRepository[M any](db *gorm.DB) repository.Repository[M] {
	return &gormRepository[M]{db: db}
}

// FindMany returns rows of M. Offset and limit apply only when both are
// present; a lone bound is ignored.
func (repo *gormRepository[M]) FindMany(ctx context.Context, offset, limit *int) ([]M, error) {
	tx := repo.db.WithContext(ctx)
	if offset != nil && limit != nil {
		tx = tx.Offset(*offset).Limit(*limit)
	}

	var records []M
	if err := tx.Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	return records, nil
}

// FindOne returns the first row matching all field=value pairs, or
// (nil, nil) when no row matches. Take is used so no ORDER BY is emitted.
func (repo *gormRepository[M]) FindOne(ctx context.Context, filters map[string]any) (*M, error) {
	record := new(M)
	err := repo.db.WithContext(ctx).Where(filters).Take(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find record")
	}

	return record, nil
}

// FindOneOrFail behaves like FindOne but fails loudly when no row matches.
func (repo *gormRepository[M]) FindOneOrFail(ctx context.Context, filters map[string]any) (*M, error) {
	record, err := repo.FindOne(ctx, filters)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domainerrors.ErrNotFound
	}

	return record, nil
}

// Create persists the record and populates its generated fields.
func (repo *gormRepository[M]) Create(ctx context.Context, record *M) error {
	if err := repo.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("record already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create record")
	}

	return nil
}
