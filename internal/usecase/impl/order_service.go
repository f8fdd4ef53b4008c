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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo          repository.OrderRepository
	productRepo        repository.ProductRepository
	paymentMethodRepo  repository.PaymentMethodRepository
	deliveryMethodRepo repository.DeliveryMethodRepository
	logger             *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo          repository.OrderRepository
	ProductRepo        repository.ProductRepository
	PaymentMethodRepo  repository.PaymentMethodRepository
	DeliveryMethodRepo repository.DeliveryMethodRepository
	Logger             *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:          params.OrderRepo,
		productRepo:        params.ProductRepo,
		paymentMethodRepo:  params.PaymentMethodRepo,
		deliveryMethodRepo: params.DeliveryMethodRepo,
		logger:             params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order. Unit prices are snapshotted from the current
// product rows and the total is the sum of line subtotals; the client never
// supplies prices.
func (srv *orderService) CreateOrder(ctx context.Context, user *entity.User, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("userID", user.ID), slog.Int("items", len(input.Items)))

	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order must contain at least one item")
	}

	if _, err := srv.paymentMethodRepo.FindByID(ctx, input.PaymentMethodID); err != nil {
		return nil, errors.Wrap(err, "unknown payment method")
	}
	if _, err := srv.deliveryMethodRepo.FindByID(ctx, input.DeliveryMethodID); err != nil {
		return nil, errors.Wrap(err, "unknown delivery method")
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	total := decimal.Zero
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("item quantity must be positive")
		}

		product, err := srv.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
			}

			return nil, errors.Wrap(err, "failed to load product for order")
		}

		if !product.IsAvailable || product.StockQuantity < line.Quantity {
			srv.log(ctx).Warn("Insufficient stock for order item",
				slog.Any("productID", product.ID),
				slog.Int("requested", line.Quantity),
				slog.Int("inStock", product.StockQuantity))

			return nil, errors.Wrap(domainerrors.ErrInsufficientStock, "insufficient stock")
		}

		item := entity.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	order := &entity.Order{
		UserID:           user.ID,
		TotalPrice:       total,
		DeliveryAddress:  input.DeliveryAddress,
		Status:           entity.OrderStatusNew,
		PaymentMethodID:  input.PaymentMethodID,
		DeliveryMethodID: input.DeliveryMethodID,
		Items:            items,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to create order", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Debug("Order created", slog.Any("orderID", order.ID), slog.String("total", total.String()))

	return order, nil
}

// ListOrders returns the user's own orders.
func (srv *orderService) ListOrders(ctx context.Context, user *entity.User) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order, enforcing ownership for regular users.
func (srv *orderService) GetOrder(ctx context.Context, user *entity.User, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.UserID != user.ID && !user.Role.CanManageOrders() {
		srv.log(ctx).Warn("Order access denied", slog.Any("orderID", id), slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to another user")
	}

	return order, nil
}

// UpdateOrderStatus transitions an order to a new lifecycle state.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, user *entity.User, id uuid.UUID, status entity.OrderStatus) error {
	if !user.Role.CanManageOrders() {
		return errors.Wrap(domainerrors.ErrForbidden, "role cannot manage orders")
	}
	if !status.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidOrderStatus, "unknown order status")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", id), slog.String("status", status.String()))

	return nil
}
