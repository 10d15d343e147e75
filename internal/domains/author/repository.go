package author

import (
	"context"

	"github.com/google/uuid"

	"blogsite-backend/internal/domains/author/model"
)

// Repository defines the interface for author data access operations.
// The abstraction keeps the service testable and the store swappable.
type Repository interface {
	// Create inserts a new author.
	// Errors: ErrEmailAlreadyExists if the email is taken.
	Create(ctx context.Context, a *model.Author) error

	// FindByID retrieves an author by id.
	// Errors: ErrAuthorNotFound if not exists.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// FindByEmail retrieves an author by normalized email.
	// Errors: ErrAuthorNotFound if not exists.
	FindByEmail(ctx context.Context, email string) (*model.Author, error)

	// ExistsByEmail checks whether an email is already registered.
	// Useful for validation without fetching the full row.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
