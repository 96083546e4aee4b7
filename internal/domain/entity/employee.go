package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee represents a staff member. An employee may be unassigned from any
// store (StoreID nil), for example after their store closes.
type Employee struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Position   string
	HireDate   time.Time
	HourlyRate decimal.Decimal
	StoreID    *uuid.UUID // Nil when the employee is not assigned to a store.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
