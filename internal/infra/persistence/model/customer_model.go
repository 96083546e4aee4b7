package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. LoyaltyPoints carries a check
// constraint so the balance can never be stored negative.
type CustomerModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	LastName      string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	PhoneNumber   string    `gorm:"type:varchar(50)"`
	JoinDate      time.Time `gorm:"type:date;not null"`
	LoyaltyPoints int       `gorm:"not null;default:0;check:loyalty_points >= 0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
