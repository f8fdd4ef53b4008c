package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Price is stored as NUMERIC
// to keep money exact.
type ProductModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title          string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:text"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	StockQuantity  int             `gorm:"not null;default:0"`
	IsAvailable    bool            `gorm:"not null;default:true"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null"`
	CountryID      uuid.UUID       `gorm:"type:uuid;not null"`
	ManufacturerID uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Category     *CategoryModel     `gorm:"foreignKey:CategoryID"`
	Country      *CountryModel      `gorm:"foreignKey:CountryID"`
	Manufacturer *ManufacturerModel `gorm:"foreignKey:ManufacturerID"`
	Images       []ImageModel       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Attributes   []AttributeModel   `gorm:"many2many:product_attributes;constraint:OnDelete:CASCADE"`
	Reviews      []ProductReviewModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ImageModel mirrors the 'images' table. Each row belongs to one product.
type ImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	URL       string    `gorm:"type:varchar(512);not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}

// AttributeModel mirrors the 'attributes' table. Products reference
// attributes through the product_attributes join table.
type AttributeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Value     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttributeModel) TableName() string {
	return "attributes"
}
