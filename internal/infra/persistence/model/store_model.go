// Package model contains the GORM persistence models mirroring the relational
// schema. PostgreSQL generates UUID keys via uuid_generate_v7().
package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table.
type StoreModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Address   string    `gorm:"type:varchar(255)"`
	City      string    `gorm:"type:varchar(100)"`
	State     string    `gorm:"type:varchar(50)"`
	ZipCode   string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Employees []EmployeeModel `gorm:"foreignKey:StoreID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
