package postgres

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Rows the order flow depends on. Seeding is idempotent: rows that already
// exist are left untouched.
var (
	defaultPaymentMethods  = []string{"card", "cash"}
	defaultDeliveryMethods = []string{"novaposhta", "ukrposhta"}
)

// LookupSeederParams holds dependencies for the lookup seeder, injected by Fx.
type LookupSeederParams struct {
	fx.In
	fx.Lifecycle

	PaymentMethodRepo  repository.PaymentMethodRepository
	DeliveryMethodRepo repository.DeliveryMethodRepository
	Logger             *slog.Logger
}

type lookupSeeder struct {
	paymentMethodRepo  repository.PaymentMethodRepository
	deliveryMethodRepo repository.DeliveryMethodRepository
	logger             *slog.Logger
}

// RegisterLookupSeeder fills the payment and delivery method tables on
// startup so order creation works against a fresh database.
func RegisterLookupSeeder(params LookupSeederParams) {
	seeder := &lookupSeeder{
		paymentMethodRepo:  params.PaymentMethodRepo,
		deliveryMethodRepo: params.DeliveryMethodRepo,
		logger:             params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: seeder.Seed,
	})
}

// Seed creates any missing default payment and delivery methods.
func (s *lookupSeeder) Seed(ctx context.Context) error {
	if err := seedLookup(ctx, s.paymentMethodRepo, defaultPaymentMethods,
		func(m *entity.PaymentMethod) string { return m.Name },
		func(name string) *entity.PaymentMethod { return &entity.PaymentMethod{Name: name} },
	); err != nil {
		return errors.Wrap(err, "failed to seed payment methods")
	}

	if err := seedLookup(ctx, s.deliveryMethodRepo, defaultDeliveryMethods,
		func(m *entity.DeliveryMethod) string { return m.Name },
		func(name string) *entity.DeliveryMethod { return &entity.DeliveryMethod{Name: name} },
	); err != nil {
		return errors.Wrap(err, "failed to seed delivery methods")
	}

	s.logger.Info("Lookup tables seeded",
		slog.Any("paymentMethods", defaultPaymentMethods),
		slog.Any("deliveryMethods", defaultDeliveryMethods))

	return nil
}

func seedLookup[E any](
	ctx context.Context,
	repo repository.LookupRepository[E],
	names []string,
	nameOf func(*E) string,
	build func(string) *E,
) error {
	existing, err := repo.List(ctx, nil, nil)
	if err != nil {
		return errors.Wrap(err, "failed to list existing rows")
	}

	have := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		have[nameOf(item)] = struct{}{}
	}

	for _, name := range names {
		if _, ok := have[name]; ok {
			continue
		}

		if err := repo.Create(ctx, build(name)); err != nil {
			// Another instance may have seeded the row between the list
			// and the insert.
			if errors.Is(err, domainerrors.ErrConflict) {
				continue
			}

			return errors.Wrapf(err, "failed to create %q", name)
		}
	}

	return nil
}
