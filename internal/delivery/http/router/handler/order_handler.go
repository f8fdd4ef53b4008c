package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderItemView struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type orderView struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	DeliveryAddress  string          `json:"delivery_address"`
	Status           string          `json:"status"`
	PaymentMethodID  uuid.UUID       `json:"payment_method_id"`
	DeliveryMethodID uuid.UUID       `json:"delivery_method_id"`
	Items            []orderItemView `json:"items"`
	CreatedAt        time.Time       `json:"created_at"`
}

func toOrderView(order *entity.Order) orderView {
	items := make([]orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return orderView{
		ID:               order.ID,
		UserID:           order.UserID,
		TotalPrice:       order.TotalPrice,
		DeliveryAddress:  order.DeliveryAddress,
		Status:           order.Status.String(),
		PaymentMethodID:  order.PaymentMethodID,
		DeliveryMethodID: order.DeliveryMethodID,
		Items:            items,
		CreatedAt:        order.CreatedAt,
	}
}

type orderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items            []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress  string             `json:"delivery_address" validate:"required,max=512"`
	PaymentMethodID  uuid.UUID          `json:"payment_method_id" validate:"required"`
	DeliveryMethodID uuid.UUID          `json:"delivery_method_id" validate:"required"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateOrder places an order for the authenticated user.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), user, &usecase.CreateOrderInput{
		Items:            items,
		DeliveryAddress:  req.DeliveryAddress,
		PaymentMethodID:  req.PaymentMethodID,
		DeliveryMethodID: req.DeliveryMethodID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

// ListOrders returns the authenticated user's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetOrder returns one order, enforcing ownership for regular users.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), user, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "")
}

// UpdateOrderStatus transitions an order to a new status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateOrderStatus(c.Request().Context(), user, id, entity.OrderStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated successfully")
}
