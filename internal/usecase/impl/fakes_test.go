package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// Hand-written fakes shared by the service tests. Each method delegates to
// an optional function field so tests only stub what they use.

type fakeUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createFn == nil {
		user.ID = uuid.New()

		return nil
	}

	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findByEmailFn == nil {
		return nil, repository.ErrUserNotFound
	}

	return f.findByEmailFn(ctx, email)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.findByIDFn == nil {
		return nil, repository.ErrUserNotFound
	}

	return f.findByIDFn(ctx, id)
}

type fakeHasher struct {
	hashFn  func(password string) (string, error)
	checkFn func(password, hash string) bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashFn == nil {
		return "hashed:" + password, nil
	}

	return f.hashFn(password)
}

func (f *fakeHasher) Check(password, hash string) bool {
	if f.checkFn == nil {
		return hash == "hashed:"+password
	}

	return f.checkFn(password, hash)
}

type fakeTokenService struct {
	issueFn    func(subject string, ttl time.Duration) (string, error)
	validateFn func(tokenString string) (string, error)
}

func (f *fakeTokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if f.issueFn == nil {
		return "token-for-" + subject, nil
	}

	return f.issueFn(subject, ttl)
}

func (f *fakeTokenService) Validate(tokenString string) (string, error) {
	if f.validateFn == nil {
		return "", nil
	}

	return f.validateFn(tokenString)
}

type fakeProductRepo struct {
	createFn    func(ctx context.Context, product *entity.Product) error
	findByIDFn  func(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	withDetails func(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	listFn      func(ctx context.Context, offset, limit *int) ([]*entity.Product, error)
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if f.createFn == nil {
		product.ID = uuid.New()

		return nil
	}

	return f.createFn(ctx, product)
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if f.findByIDFn == nil {
		return nil, repository.ErrProductNotFound
	}

	return f.findByIDFn(ctx, id)
}

func (f *fakeProductRepo) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if f.withDetails == nil {
		return nil, repository.ErrProductNotFound
	}

	return f.withDetails(ctx, id)
}

func (f *fakeProductRepo) List(ctx context.Context, offset, limit *int) ([]*entity.Product, error) {
	if f.listFn == nil {
		return nil, nil
	}

	return f.listFn(ctx, offset, limit)
}

type fakeOrderRepo struct {
	createFn       func(ctx context.Context, order *entity.Order) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	listByUserFn   func(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if f.createFn == nil {
		order.ID = uuid.New()

		return nil
	}

	return f.createFn(ctx, order)
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.findByIDFn == nil {
		return nil, repository.ErrOrderNotFound
	}

	return f.findByIDFn(ctx, id)
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	if f.listByUserFn == nil {
		return nil, nil
	}

	return f.listByUserFn(ctx, userID)
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	if f.updateStatusFn == nil {
		return nil
	}

	return f.updateStatusFn(ctx, id, status)
}

type fakeReviewRepo struct {
	createFn func(ctx context.Context, review *entity.ProductReview) error
	listFn   func(ctx context.Context, productID uuid.UUID, offset, limit *int) ([]*entity.ProductReview, error)
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.ProductReview) error {
	if f.createFn == nil {
		review.ID = uuid.New()

		return nil
	}

	return f.createFn(ctx, review)
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID uuid.UUID, offset, limit *int) ([]*entity.ProductReview, error) {
	if f.listFn == nil {
		return nil, nil
	}

	return f.listFn(ctx, productID, offset, limit)
}

// fakeLookupRepo serves any lookup kind.
type fakeLookupRepo[E any] struct {
	createFn   func(ctx context.Context, item *E) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*E, error)
	listFn     func(ctx context.Context, offset, limit *int) ([]*E, error)
}

func (f *fakeLookupRepo[E]) Create(ctx context.Context, item *E) error {
	if f.createFn == nil {
		return nil
	}

	return f.createFn(ctx, item)
}

func (f *fakeLookupRepo[E]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	if f.findByIDFn == nil {
		return new(E), nil
	}

	return f.findByIDFn(ctx, id)
}

func (f *fakeLookupRepo[E]) List(ctx context.Context, offset, limit *int) ([]*E, error) {
	if f.listFn == nil {
		return nil, nil
	}

	return f.listFn(ctx, offset, limit)
}
