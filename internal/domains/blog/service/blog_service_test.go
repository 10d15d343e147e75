package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsite-backend/internal/domains/author"
	authormodel "blogsite-backend/internal/domains/author/model"
	"blogsite-backend/internal/domains/blog"
	"blogsite-backend/internal/domains/blog/model"
)

// ========================================
// IN-MEMORY MOCKS
// ========================================

type mockAuthorRepository struct {
	authors map[uuid.UUID]*authormodel.Author
}

func newMockAuthorRepository(ids ...uuid.UUID) *mockAuthorRepository {
	m := &mockAuthorRepository{authors: make(map[uuid.UUID]*authormodel.Author)}
	for _, id := range ids {
		m.authors[id] = &authormodel.Author{ID: id, Email: id.String() + "@example.com"}
	}
	return m
}

func (m *mockAuthorRepository) Create(ctx context.Context, a *authormodel.Author) error {
	m.authors[a.ID] = a
	return nil
}

func (m *mockAuthorRepository) FindByID(ctx context.Context, id uuid.UUID) (*authormodel.Author, error) {
	a, ok := m.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}

func (m *mockAuthorRepository) FindByEmail(ctx context.Context, email string) (*authormodel.Author, error) {
	for _, a := range m.authors {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (m *mockAuthorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.FindByEmail(ctx, email)
	return err == nil, nil
}

// mockBlogRepository mirrors the store semantics: reads exclude deleted
// rows, Find applies the filter, Update applies the patch with set-union
// on the array fields.
type mockBlogRepository struct {
	blogs       map[uuid.UUID]*model.Blog
	lastFilter  *blog.Filter
	updateCalls int
	lastPatch   blog.Patch
}

func newMockBlogRepository() *mockBlogRepository {
	return &mockBlogRepository{blogs: make(map[uuid.UUID]*model.Blog)}
}

func (m *mockBlogRepository) Create(ctx context.Context, b *model.Blog) error {
	clone := *b
	m.blogs[b.ID] = &clone
	return nil
}

func (m *mockBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	b, ok := m.blogs[id]
	if !ok || b.IsDeleted {
		return nil, blog.ErrBlogNotFound
	}
	clone := *b
	return &clone, nil
}

func (m *mockBlogRepository) Find(ctx context.Context, f blog.Filter) ([]model.Blog, error) {
	m.lastFilter = &f

	var out []model.Blog
	for _, b := range m.blogs {
		if b.IsDeleted {
			continue
		}
		if f.IsPublished != nil && b.IsPublished != *f.IsPublished {
			continue
		}
		if f.AuthorID != nil && b.AuthorID != *f.AuthorID {
			continue
		}
		if f.Category != "" && b.Category != f.Category {
			continue
		}
		if !containsAll(b.Tags, f.Tags) || !containsAll(b.Subcategory, f.Subcategory) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (m *mockBlogRepository) Update(ctx context.Context, id uuid.UUID, p blog.Patch) (*model.Blog, error) {
	m.updateCalls++
	m.lastPatch = p

	b, ok := m.blogs[id]
	if !ok || b.IsDeleted {
		return nil, blog.ErrBlogNotFound
	}

	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Body != nil {
		b.Body = *p.Body
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.IsPublished != nil {
		b.IsPublished = *p.IsPublished
		b.PublishedAt = p.PublishedAt
	}
	b.Tags = union(b.Tags, p.AddTags)
	b.Subcategory = union(b.Subcategory, p.AddSubcategory)
	b.UpdatedAt = time.Now()

	clone := *b
	return &clone, nil
}

func (m *mockBlogRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	b, ok := m.blogs[id]
	if !ok || b.IsDeleted {
		return blog.ErrBlogNotFound
	}
	now := time.Now()
	b.IsDeleted = true
	b.DeletedAt = &now
	return nil
}

func (m *mockBlogRepository) SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var n int64
	for _, id := range ids {
		if err := m.SoftDelete(ctx, id); err == nil {
			n++
		}
	}
	return n, nil
}

func containsAll(haystack, needles []string) bool {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if h == n {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func union(existing, add []string) []string {
	out := append([]string{}, existing...)
	for _, v := range add {
		dup := false
		for _, e := range out {
			if e == v {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}

// ========================================
// FIXTURES
// ========================================

func seedBlog(repo *mockBlogRepository, authorID uuid.UUID, mutate func(*model.Blog)) *model.Blog {
	now := time.Now()
	b := &model.Blog{
		ID:          uuid.New(),
		Title:       "A title",
		Body:        "A body",
		AuthorID:    authorID,
		Category:    "tech",
		IsPublished: true,
		PublishedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if mutate != nil {
		mutate(b)
	}
	repo.blogs[b.ID] = b
	return b
}

func createRequest(authorID uuid.UUID) blog.CreateBlogRequest {
	return blog.CreateBlogRequest{
		Title:    "A title",
		Body:     "A body",
		AuthorID: authorID.String(),
		Category: "tech",
	}
}

// ========================================
// CREATE
// ========================================

func TestCreate_ScalarTagBecomesSingletonList(t *testing.T) {
	authorID := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(authorID))

	req := createRequest(authorID)
	req.Tags = blog.StringList{"a"}

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, created.Tags)
}

func TestCreate_ListTagsCopied(t *testing.T) {
	authorID := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(authorID))

	req := createRequest(authorID)
	req.Tags = blog.StringList{"a", "b"}
	req.Subcategory = blog.StringList{"x"}

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, created.Tags)
	assert.Equal(t, []string{"x"}, created.Subcategory)
}

func TestCreate_UnknownAuthorRejected(t *testing.T) {
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository())

	_, err := svc.Create(context.Background(), createRequest(uuid.New()))
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	assert.Empty(t, repo.blogs)
}

func TestCreate_PublishedAtFollowsIsPublished(t *testing.T) {
	authorID := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(authorID))

	published := true
	req := createRequest(authorID)
	req.IsPublished = &published

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, created.IsPublished)
	assert.NotNil(t, created.PublishedAt)

	// Default is unpublished with no timestamp.
	created, err = svc.Create(context.Background(), createRequest(authorID))
	require.NoError(t, err)
	assert.False(t, created.IsPublished)
	assert.Nil(t, created.PublishedAt)
}

// ========================================
// LIST
// ========================================

func TestList_OnlyPublishedNonDeleted(t *testing.T) {
	authorID := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(authorID))

	published := seedBlog(repo, authorID, nil)
	seedBlog(repo, authorID, func(b *model.Blog) { b.IsPublished = false; b.PublishedAt = nil })
	seedBlog(repo, authorID, func(b *model.Blog) { b.IsDeleted = true })

	blogs, err := svc.List(context.Background(), blog.ListBlogsQuery{})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, published.ID, blogs[0].ID)

	// published-only is forced into the store filter regardless of query
	require.NotNil(t, repo.lastFilter.IsPublished)
	assert.True(t, *repo.lastFilter.IsPublished)
}

func TestList_TagsContainsAll(t *testing.T) {
	authorID := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(authorID))

	superset := seedBlog(repo, authorID, func(b *model.Blog) { b.Tags = []string{"a", "b", "c"} })
	seedBlog(repo, authorID, func(b *model.Blog) { b.Tags = []string{"a"} })

	blogs, err := svc.List(context.Background(), blog.ListBlogsQuery{Tags: "a,b"})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, superset.ID, blogs[0].ID)
}

func TestList_EmptyResultIsNotFound(t *testing.T) {
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository())

	_, err := svc.List(context.Background(), blog.ListBlogsQuery{Category: "nothing"})
	assert.ErrorIs(t, err, blog.ErrNoBlogsFound)
}

// ========================================
// UPDATE
// ========================================

func TestUpdate_NonOwnerRejectedAndUnchanged(t *testing.T) {
	owner := uuid.New()
	intruder := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner, intruder))

	b := seedBlog(repo, owner, nil)

	_, err := svc.Update(context.Background(), b.ID.String(), intruder, blog.UpdateBlogRequest{Title: "hacked"})
	assert.ErrorIs(t, err, blog.ErrNotOwner)
	assert.Zero(t, repo.updateCalls)
	assert.Equal(t, "A title", repo.blogs[b.ID].Title)
}

func TestUpdate_MalformedBlogID(t *testing.T) {
	owner := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner))

	_, err := svc.Update(context.Background(), "abc", owner, blog.UpdateBlogRequest{})
	require.Error(t, err)
	assert.Equal(t, "abc is invalid", err.Error())
}

func TestUpdate_EmptyRequestIsNoOp(t *testing.T) {
	owner := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner))

	b := seedBlog(repo, owner, nil)

	got, err := svc.Update(context.Background(), b.ID.String(), owner, blog.UpdateBlogRequest{})
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdate_PublishTogglesPublishedAt(t *testing.T) {
	owner := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner))

	b := seedBlog(repo, owner, func(b *model.Blog) { b.IsPublished = false; b.PublishedAt = nil })

	published := true
	got, err := svc.Update(context.Background(), b.ID.String(), owner, blog.UpdateBlogRequest{IsPublished: &published})
	require.NoError(t, err)
	assert.True(t, got.IsPublished)
	assert.NotNil(t, got.PublishedAt)

	unpublished := false
	got, err = svc.Update(context.Background(), b.ID.String(), owner, blog.UpdateBlogRequest{IsPublished: &unpublished})
	require.NoError(t, err)
	assert.False(t, got.IsPublished)
	assert.Nil(t, got.PublishedAt)
}

func TestUpdate_OmittedIsPublishedLeftAlone(t *testing.T) {
	owner := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner))

	b := seedBlog(repo, owner, nil)
	before := *repo.blogs[b.ID].PublishedAt

	got, err := svc.Update(context.Background(), b.ID.String(), owner, blog.UpdateBlogRequest{Title: "renamed"})
	require.NoError(t, err)
	assert.True(t, got.IsPublished)
	require.NotNil(t, got.PublishedAt)
	assert.Equal(t, before, *got.PublishedAt)
	assert.Nil(t, repo.lastPatch.IsPublished)
}

func TestUpdate_TagsAreUnioned(t *testing.T) {
	owner := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner))

	b := seedBlog(repo, owner, func(b *model.Blog) { b.Tags = []string{"a"} })

	got, err := svc.Update(context.Background(), b.ID.String(), owner, blog.UpdateBlogRequest{
		Tags: blog.StringList{"c", "a"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, got.Tags)
}

// ========================================
// DELETE (SINGLE)
// ========================================

func TestDelete_SoftDeleteThenGone(t *testing.T) {
	owner := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner))

	b := seedBlog(repo, owner, nil)

	require.NoError(t, svc.Delete(context.Background(), b.ID.String(), owner))
	assert.True(t, repo.blogs[b.ID].IsDeleted)
	assert.NotNil(t, repo.blogs[b.ID].DeletedAt)

	// listing no longer sees it, even filtered by its author
	_, err := svc.List(context.Background(), blog.ListBlogsQuery{AuthorID: owner.String()})
	assert.ErrorIs(t, err, blog.ErrNoBlogsFound)

	// second delete reports not found, not "already deleted"
	err = svc.Delete(context.Background(), b.ID.String(), owner)
	assert.ErrorIs(t, err, blog.ErrBlogNotFound)
}

func TestDelete_NonOwnerRejected(t *testing.T) {
	owner := uuid.New()
	intruder := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner, intruder))

	b := seedBlog(repo, owner, nil)

	err := svc.Delete(context.Background(), b.ID.String(), intruder)
	assert.ErrorIs(t, err, blog.ErrNotOwner)
	assert.False(t, repo.blogs[b.ID].IsDeleted)
}

// ========================================
// DELETE (BULK)
// ========================================

func TestDeleteByFilter_RequiresAFilter(t *testing.T) {
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository())

	_, err := svc.DeleteByFilter(context.Background(), blog.DeleteBlogsQuery{}, uuid.New())
	assert.ErrorIs(t, err, blog.ErrFilterRequired)
}

func TestDeleteByFilter_OnlyOwnedBlogsDeleted(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner, other))

	mine := seedBlog(repo, owner, func(b *model.Blog) { b.Category = "tech" })
	theirs := seedBlog(repo, other, func(b *model.Blog) { b.Category = "tech" })

	n, err := svc.DeleteByFilter(context.Background(), blog.DeleteBlogsQuery{
		ListBlogsQuery: blog.ListBlogsQuery{Category: "tech"},
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.True(t, repo.blogs[mine.ID].IsDeleted)
	assert.False(t, repo.blogs[theirs.ID].IsDeleted)
}

func TestDeleteByFilter_MatchesButNoneOwned(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner, other))

	theirs := seedBlog(repo, other, func(b *model.Blog) { b.Category = "tech" })

	_, err := svc.DeleteByFilter(context.Background(), blog.DeleteBlogsQuery{
		ListBlogsQuery: blog.ListBlogsQuery{Category: "tech"},
	}, owner)
	assert.ErrorIs(t, err, blog.ErrNoBlogsFound)
	assert.False(t, repo.blogs[theirs.ID].IsDeleted)
}

func TestDeleteByFilter_DoesNotForcePublished(t *testing.T) {
	owner := uuid.New()
	repo := newMockBlogRepository()
	svc := NewBlogService(repo, newMockAuthorRepository(owner))

	draft := seedBlog(repo, owner, func(b *model.Blog) {
		b.Category = "tech"
		b.IsPublished = false
		b.PublishedAt = nil
	})

	n, err := svc.DeleteByFilter(context.Background(), blog.DeleteBlogsQuery{
		ListBlogsQuery: blog.ListBlogsQuery{Category: "tech"},
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.True(t, repo.blogs[draft.ID].IsDeleted)
	assert.Nil(t, repo.lastFilter.IsPublished)
}
