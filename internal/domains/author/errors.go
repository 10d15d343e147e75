package author

import "errors"

// Repository-level errors
var (
	ErrAuthorNotFound     = errors.New("author not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Service-level (business logic) errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)
