package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionModel mirrors the 'promotions' table. A NULL RequiredPoints marks a
// general promotion selectable at order creation.
type PromotionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string          `gorm:"type:varchar(150);not null"`
	Description    string          `gorm:"type:text"`
	DiscountType   string          `gorm:"type:varchar(10);not null;check:discount_type IN ('PERCENT','FIXED')"`
	DiscountValue  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	StartDate      *time.Time      `gorm:"type:date"`
	EndDate        *time.Time      `gorm:"type:date"`
	RequiredPoints *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}
