package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a loyalty-program member. Guest orders carry no customer
// at all, so every customer row is a real enrolled member.
type Customer struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	JoinDate      time.Time
	LoyaltyPoints int // Never negative; mutated only through the loyalty ledger.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
