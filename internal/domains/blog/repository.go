package blog

import (
	"context"

	"github.com/google/uuid"

	"blogsite-backend/internal/domains/blog/model"
)

// Repository defines the interface for blog data access operations.
// Every read excludes soft-deleted rows.
type Repository interface {
	// Create inserts a new blog.
	Create(ctx context.Context, b *model.Blog) error

	// FindByID retrieves a non-deleted blog by id.
	// Errors: ErrBlogNotFound if absent or soft-deleted.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)

	// Find retrieves non-deleted blogs matching the filter.
	Find(ctx context.Context, f Filter) ([]model.Blog, error)

	// Update applies the patch (overwrite set + array union) in a single
	// statement and returns the updated row.
	// Errors: ErrBlogNotFound if absent or soft-deleted.
	Update(ctx context.Context, id uuid.UUID, p Patch) (*model.Blog, error)

	// SoftDelete marks one blog deleted.
	// Errors: ErrBlogNotFound if absent or already deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// SoftDeleteMany marks the given blogs deleted and returns how many
	// rows were affected.
	SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}
