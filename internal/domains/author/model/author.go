package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is a registered writer. Field names on the wire follow the
// public API contract (fname/lname).
type Author struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FirstName    string    `json:"fname" db:"first_name"`
	LastName     string    `json:"lname" db:"last_name"`
	Title        string    `json:"title" db:"title"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // never serialized
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
