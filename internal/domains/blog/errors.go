package blog

import "errors"

// Repository-level errors
var (
	ErrBlogNotFound = errors.New("blog not found")
)

// Service-level (business logic) errors
var (
	// ErrNoBlogsFound signals an empty result for list and bulk delete.
	ErrNoBlogsFound = errors.New("no blogs found")

	// ErrNotOwner signals an ownership mismatch on a mutation.
	ErrNotOwner = errors.New("author does not own this blog")

	// ErrFilterRequired signals a bulk delete issued without any filter.
	ErrFilterRequired = errors.New("at least one query parameter is required")
)
