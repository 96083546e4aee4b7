// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a single retail location of the chain.
type Store struct {
	ID        uuid.UUID // The unique identifier for the store.
	Name      string    // The store's display name.
	Address   string    // Street address.
	City      string
	State     string
	ZipCode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
