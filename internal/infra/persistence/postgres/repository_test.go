package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(pgDriver.New(pgDriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormRepository_FindMany(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository[model.CategoryModel](db)

	t.Run("NoPagination", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}).
			AddRow(uuid.New(), "Books", time.Now(), time.Now()).
			AddRow(uuid.New(), "Games", time.Now(), time.Now())

		mock.ExpectQuery(`^SELECT \* FROM "categories"$`).WillReturnRows(rows)

		records, err := repo.FindMany(context.Background(), nil, nil)
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "Books", records[0].Title)
	})

	t.Run("WithPagination", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}).
			AddRow(uuid.New(), "Games", time.Now(), time.Now())

		mock.ExpectQuery(`SELECT \* FROM "categories" LIMIT \$1 OFFSET \$2`).
			WithArgs(1, 1).
			WillReturnRows(rows)

		offset, limit := 1, 1
		records, err := repo.FindMany(context.Background(), &offset, &limit)
		assert.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("LoneBoundIgnored", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}).
			AddRow(uuid.New(), "Books", time.Now(), time.Now())

		// A limit without an offset must not paginate.
		mock.ExpectQuery(`^SELECT \* FROM "categories"$`).WillReturnRows(rows)

		limit := 5
		records, err := repo.FindMany(context.Background(), nil, &limit)
		assert.NoError(t, err)
		assert.Len(t, records, 1)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_FindOne(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository[model.CategoryModel](db)

	t.Run("Found", func(t *testing.T) {
		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}).
			AddRow(id, "Books", time.Now(), time.Now())

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE "title" = \$1 LIMIT \$2`).
			WithArgs("Books", 1).
			WillReturnRows(rows)

		record, err := repo.FindOne(context.Background(), map[string]any{"title": "Books"})
		assert.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, id, record.ID)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE "title" = \$1 LIMIT \$2`).
			WithArgs("Nope", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}))

		record, err := repo.FindOne(context.Background(), map[string]any{"title": "Nope"})
		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_FindOneOrFail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository[model.CategoryModel](db)

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE "title" = \$1 LIMIT \$2`).
		WithArgs("Nope", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at"}))

	record, err := repo.FindOneOrFail(context.Background(), map[string]any{"title": "Nope"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Nil(t, record)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository[model.CategoryModel](db)

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(`INSERT INTO "categories"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

		record := &model.CategoryModel{Title: "Books"}
		err := repo.Create(context.Background(), record)
		assert.NoError(t, err)
		assert.Equal(t, id, record.ID)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO "categories"`).
			WillReturnError(gorm.ErrDuplicatedKey)

		err := repo.Create(context.Background(), &model.CategoryModel{Title: "Books"})
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	t.Run("Found", func(t *testing.T) {
		id := uuid.New()
		rows := sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "phone_number",
			"password_hash", "role", "is_active", "created_at", "updated_at",
		}).AddRow(id, "Jane", "Doe", "jane@example.com", "380000000000",
			"$2a$10$hash", "user", true, time.Now(), time.Now())

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "email" = \$1 LIMIT \$2`).
			WithArgs("jane@example.com", 1).
			WillReturnRows(rows)

		user, err := repo.FindByEmail(context.Background(), "jane@example.com")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, entity.RoleUser, user.Role)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "email" = \$1 LIMIT \$2`).
			WithArgs("ghost@example.com", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

		user, err := repo.FindByEmail(context.Background(), "ghost@example.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(gorm.ErrDuplicatedKey)

	err := repo.Create(context.Background(), &entity.User{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		PhoneNumber:  "380000000000",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleUser,
		IsActive:     true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAccountExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
