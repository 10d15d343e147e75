package model

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a post owned by a single author. Soft-deleted rows stay in the
// table but are excluded from every read path.
type Blog struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Body        string     `json:"body" db:"body"`
	AuthorID    uuid.UUID  `json:"authorId" db:"author_id"`
	Tags        []string   `json:"tags" db:"tags"`
	Category    string     `json:"category" db:"category"`
	Subcategory []string   `json:"subcategory" db:"subcategory"`
	IsPublished bool       `json:"isPublished" db:"is_published"`
	PublishedAt *time.Time `json:"publishedAt" db:"published_at"`
	IsDeleted   bool       `json:"isDeleted" db:"is_deleted"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
