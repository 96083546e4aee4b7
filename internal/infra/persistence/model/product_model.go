package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. StockQuantity carries a check
// constraint so stock can never be stored negative.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string          `gorm:"type:varchar(150);not null"`
	Category      string          `gorm:"type:varchar(100)"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	StockQuantity int             `gorm:"not null;default:0;check:stock_quantity >= 0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
