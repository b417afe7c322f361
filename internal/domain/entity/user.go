// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the account identity in the system. It owns zero or more Orders
// and is resolved from the username claim of an access token during
// order attribution.
type User struct {
	ID           uint      `json:"id"`       // Auto-incremented numeric identifier.
	Username     string    `json:"username"` // Unique login handle, carried as the token subject claim.
	Email        string    `json:"email"`    // Unique contact email, used as the login identifier.
	PasswordHash string    `json:"-"`        // bcrypt hash of the password. Never serialized.
	IsStaff      bool      `json:"is_staff"` // Staff role flag. Ordinary accounts leave this false.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
