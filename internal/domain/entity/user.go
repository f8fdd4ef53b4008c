// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. PasswordHash is the bcrypt digest of
// the account password; the plaintext is never stored or logged.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string // Unique login identifier.
	PhoneNumber  string // Unique, normalized to the "38xxxxxxxxxx" form.
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
