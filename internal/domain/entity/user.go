// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record at the center of the system. It is created
// once through registration, read on every authentication attempt, and never
// mutated by the authentication core itself.
type User struct {
	ID           uuid.UUID // The unique identifier for this record itself.
	Username     string    // The unique login identifier. Immutable once created.
	Email        string    // The user's contact email address.
	FullName     string    // The user's display name. May be empty.
	PasswordHash string    // The bcrypt-hashed password. Never exposed outward.
	Disabled     bool      // When true, the account cannot authenticate.
	CreatedAt    time.Time // Timestamp of when this record was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}

// PublicProfile is the outward-facing projection of a User.
// It carries everything a client may see and nothing it may not:
// the password hash is stripped.
type PublicProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Disabled bool   `json:"disabled"`
}

// Profile derives the public projection of this user.
func (u *User) Profile() *PublicProfile {
	return &PublicProfile{
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Disabled: u.Disabled,
	}
}
