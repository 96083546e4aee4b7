package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeModel mirrors the 'employees' table. StoreID is nullified when the
// referenced store is deleted.
type EmployeeModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName  string          `gorm:"type:varchar(100);not null"`
	LastName   string          `gorm:"type:varchar(100);not null"`
	Position   string          `gorm:"type:varchar(100)"`
	HireDate   time.Time       `gorm:"type:date"`
	HourlyRate decimal.Decimal `gorm:"type:numeric(8,2)"`
	StoreID    *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
