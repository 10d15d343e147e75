package blog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Filter is the store-side query built from optional parameters. Zero
// values mean "no constraint"; soft-deleted rows are always excluded by
// the repository itself.
type Filter struct {
	AuthorID    *uuid.UUID
	Category    string
	Tags        []string // contains-all match against the tag set
	Subcategory []string // contains-all match
	IsPublished *bool
}

// ApplyAuthorID sets the author constraint when the raw value is a valid
// identifier; anything else is ignored.
func (f *Filter) ApplyAuthorID(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if id, err := uuid.Parse(raw); err == nil {
		f.AuthorID = &id
	}
}

// Patch is the partial update applied to a blog: an overwrite set plus an
// append-unique union for the array fields. Both parts are applied in a
// single UPDATE against the store.
type Patch struct {
	// Overwrite set
	Title    *string
	Body     *string
	Category *string

	// IsPublished and PublishedAt form an atomically-coupled pair: whenever
	// IsPublished is set, PublishedAt is rewritten too (now on publish,
	// NULL on unpublish).
	IsPublished *bool
	PublishedAt *time.Time

	// Array union: added to the existing sets without duplicates, never
	// removing existing elements.
	AddTags        []string
	AddSubcategory []string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil &&
		p.Body == nil &&
		p.Category == nil &&
		p.IsPublished == nil &&
		len(p.AddTags) == 0 &&
		len(p.AddSubcategory) == 0
}
