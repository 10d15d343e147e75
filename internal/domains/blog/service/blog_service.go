package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"blogsite-backend/internal/domains/author"
	"blogsite-backend/internal/domains/blog"
	"blogsite-backend/internal/domains/blog/model"
)

// blogService implements blog.Service. It depends on the author repository
// to resolve authorship at creation time.
type blogService struct {
	repo       blog.Repository
	authorRepo author.Repository
}

func NewBlogService(repo blog.Repository, authorRepo author.Repository) blog.Service {
	return &blogService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

func (s *blogService) Create(ctx context.Context, req blog.CreateBlogRequest) (*model.Blog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Validate() guarantees the id parses.
	authorID := uuid.MustParse(req.AuthorID)

	// The author must exist; a missing author is a bad-input error on this
	// path, not a missing resource.
	if _, err := s.authorRepo.FindByID(ctx, authorID); err != nil {
		return nil, err
	}

	published := req.IsPublished != nil && *req.IsPublished

	now := time.Now()
	newBlog := &model.Blog{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(req.Title),
		Body:        strings.TrimSpace(req.Body),
		AuthorID:    authorID,
		Tags:        req.Tags.Normalized(),
		Category:    strings.TrimSpace(req.Category),
		Subcategory: req.Subcategory.Normalized(),
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if published {
		newBlog.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, newBlog); err != nil {
		return nil, err
	}

	return newBlog, nil
}

func (s *blogService) List(ctx context.Context, q blog.ListBlogsQuery) ([]model.Blog, error) {
	f := q.Filter()

	// Only published blogs are ever listed, regardless of the query.
	published := true
	f.IsPublished = &published

	blogs, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, blog.ErrNoBlogsFound
	}

	return blogs, nil
}

func (s *blogService) Update(ctx context.Context, blogID string, authorID uuid.UUID, req blog.UpdateBlogRequest) (*model.Blog, error) {
	b, err := s.loadOwned(ctx, blogID, authorID)
	if err != nil {
		return nil, err
	}

	// An empty or invalid body is a no-op success returning the
	// unmodified record.
	if req.IsEmpty() {
		return b, nil
	}

	patch := buildPatch(req)

	updated, err := s.repo.Update(ctx, b.ID, patch)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *blogService) Delete(ctx context.Context, blogID string, authorID uuid.UUID) error {
	b, err := s.loadOwned(ctx, blogID, authorID)
	if err != nil {
		return err
	}

	return s.repo.SoftDelete(ctx, b.ID)
}

func (s *blogService) DeleteByFilter(ctx context.Context, q blog.DeleteBlogsQuery, authorID uuid.UUID) (int64, error) {
	if !q.HasAny() {
		return 0, blog.ErrFilterRequired
	}

	// Stage 1: store-side filter over non-deleted blogs. Published-only is
	// NOT forced here, unlike listing.
	matched, err := s.repo.Find(ctx, q.Filter())
	if err != nil {
		return 0, err
	}
	if len(matched) == 0 {
		return 0, blog.ErrNoBlogsFound
	}

	// Stage 2: ownership predicate in memory, applied only to the matched
	// set. Another author's blog is never deleted.
	var owned []uuid.UUID
	for _, b := range matched {
		if b.AuthorID == authorID {
			owned = append(owned, b.ID)
		}
	}
	if len(owned) == 0 {
		return 0, blog.ErrNoBlogsFound
	}

	return s.repo.SoftDeleteMany(ctx, owned)
}

// loadOwned validates the id, loads the non-deleted blog and checks the
// caller owns it.
func (s *blogService) loadOwned(ctx context.Context, blogID string, authorID uuid.UUID) (*model.Blog, error) {
	if err := validation.Validate(blogID,
		validation.Required.Error("blogId is required"),
		is.UUID.Error(fmt.Sprintf("%s is invalid", blogID)),
	); err != nil {
		return nil, err
	}

	b, err := s.repo.FindByID(ctx, uuid.MustParse(blogID))
	if err != nil {
		return nil, err
	}

	if b.AuthorID != authorID {
		return nil, blog.ErrNotOwner
	}

	return b, nil
}

// buildPatch assembles the overwrite set and the array unions from the
// fields actually provided.
func buildPatch(req blog.UpdateBlogRequest) blog.Patch {
	var p blog.Patch

	if title := strings.TrimSpace(req.Title); title != "" {
		p.Title = &title
	}
	if body := strings.TrimSpace(req.Body); body != "" {
		p.Body = &body
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		p.Category = &category
	}

	// Any explicitly provided value counts, including false. PublishedAt
	// is recomputed as the coupled pair: now on publish, NULL otherwise.
	if req.IsPublished != nil {
		p.IsPublished = req.IsPublished
		if *req.IsPublished {
			now := time.Now()
			p.PublishedAt = &now
		}
	}

	p.AddTags = req.Tags.Normalized()
	p.AddSubcategory = req.Subcategory.Normalized()

	return p
}
