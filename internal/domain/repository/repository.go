// Package repository defines the persistence contracts the use cases depend
// on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// Sentinel lookup failures returned by repositories. Use cases translate
// these into the AppError taxonomy.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// Repository is the generic read/create contract over a single model type.
// Filtering is exact-match equality only; no sorting or partial matching.
type Repository[M any] interface {
	// FindMany returns rows of M. Pagination is applied only when both
	// offset and limit are present.
	FindMany(ctx context.Context, offset, limit *int) ([]M, error)

	// FindOne returns the first row matching all field=value pairs, or
	// (nil, nil) when no row matches.
	FindOne(ctx context.Context, filters map[string]any) (*M, error)

	// FindOneOrFail behaves like FindOne but fails with a NotFound
	// application error when no row matches.
	FindOneOrFail(ctx context.Context, filters map[string]any) (*M, error)

	// Create persists the record and populates its generated fields.
	Create(ctx context.Context, record *M) error
}
