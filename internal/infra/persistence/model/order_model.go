package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Deleting a customer nullifies the
// reference; employees and stores referenced by orders cannot be deleted.
type OrderModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID     *uuid.UUID      `gorm:"type:uuid"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid;not null"`
	StoreID        uuid.UUID       `gorm:"type:uuid;not null"`
	OrderTimestamp time.Time       `gorm:"not null"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PointsEarned   int             `gorm:"not null;default:0"`
	PointsRedeemed int             `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	Employee *EmployeeModel `gorm:"foreignKey:EmployeeID;constraint:OnDelete:RESTRICT"`
	Store    *StoreModel    `gorm:"foreignKey:StoreID;constraint:OnDelete:RESTRICT"`

	Items []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. PriceAtTimeOfOrder is the
// immutable price snapshot taken at commit time.
type OrderItemModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID            uuid.UUID       `gorm:"type:uuid;not null"`
	ProductID          uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity           int             `gorm:"not null;check:quantity >= 1"`
	PriceAtTimeOfOrder decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt          time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// AppliedPromotionModel mirrors the 'applied_promotions' table, the
// append-only audit trail of the promotion pass.
type AppliedPromotionModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID               uuid.UUID       `gorm:"type:uuid;not null"`
	PromotionID           uuid.UUID       `gorm:"type:uuid;not null"`
	DiscountAmountApplied decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt             time.Time

	Order     *OrderModel     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Promotion *PromotionModel `gorm:"foreignKey:PromotionID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (AppliedPromotionModel) TableName() string {
	return "applied_promotions"
}
