package author

import (
	"context"

	"blogsite-backend/internal/domains/author/model"
)

// Service defines business logic operations for the author domain.
type Service interface {
	// Register validates the payload, checks email uniqueness and persists
	// the author with a hashed password.
	// Errors: validation errors, ErrEmailAlreadyExists.
	Register(ctx context.Context, req RegisterRequest) (*model.Author, error)

	// Login authenticates by email and password and issues a bearer token
	// bound to the author id.
	// Errors: validation errors, ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}
