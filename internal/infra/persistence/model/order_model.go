package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Items ride along through the
// association so an order and its lines persist in one transaction.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null"`
	TotalPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryAddress  string          `gorm:"type:varchar(512);not null"`
	Status           string          `gorm:"type:varchar(20);not null;default:new"`
	PaymentMethodID  uuid.UUID       `gorm:"type:uuid;not null"`
	DeliveryMethodID uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	PaymentMethod  *PaymentMethodModel  `gorm:"foreignKey:PaymentMethodID"`
	DeliveryMethod *DeliveryMethodModel `gorm:"foreignKey:DeliveryMethodID"`
	Items          []OrderItemModel     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. UnitPrice is the
// product price captured when the order was placed.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
