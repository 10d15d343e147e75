package blog

import (
	"context"

	"github.com/google/uuid"

	"blogsite-backend/internal/domains/blog/model"
)

// Service defines business logic operations for the blog domain.
type Service interface {
	// Create validates the payload, resolves the author and persists the
	// blog with normalized tag/subcategory lists.
	// Errors: validation errors, author.ErrAuthorNotFound.
	Create(ctx context.Context, req CreateBlogRequest) (*model.Blog, error)

	// List returns published, non-deleted blogs matching the optional
	// refinements. Published-only is enforced regardless of the query.
	// Errors: ErrNoBlogsFound on an empty result.
	List(ctx context.Context, q ListBlogsQuery) ([]model.Blog, error)

	// Update applies an owner-only partial update. An empty request is a
	// no-op returning the unmodified blog.
	// Errors: validation errors, ErrBlogNotFound, ErrNotOwner.
	Update(ctx context.Context, blogID string, authorID uuid.UUID, req UpdateBlogRequest) (*model.Blog, error)

	// Delete soft-deletes one blog, owner-only. A repeated delete reports
	// ErrBlogNotFound: deletion is not idempotent at the API level.
	Delete(ctx context.Context, blogID string, authorID uuid.UUID) error

	// DeleteByFilter soft-deletes the blogs matching the filter that are
	// owned by the authenticated author. Ownership is checked in memory on
	// the already-matched set, never inside the store query.
	// Errors: ErrFilterRequired, ErrNoBlogsFound.
	DeleteByFilter(ctx context.Context, q DeleteBlogsQuery, authorID uuid.UUID) (int64, error)
}
