package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogsite-backend/internal/domains/blog"
	"blogsite-backend/internal/domains/blog/model"
)

const blogColumns = `id, title, body, author_id, tags, category, subcategory,
		is_published, published_at, is_deleted, deleted_at, created_at, updated_at`

// postgresRepository is the concrete implementation of blog.Repository.
// tags and subcategory live in text[] columns; @> gives the contains-all
// filter and array concat + dedup gives the set-union update.
type postgresRepository struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

func NewPostgresRepository(pool *pgxpool.Pool, queryTimeout time.Duration) blog.Repository {
	return &postgresRepository{
		pool:         pool,
		queryTimeout: queryTimeout,
	}
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Blog) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `
		INSERT INTO blogs (
			id, title, body, author_id, tags, category, subcategory,
			is_published, published_at, is_deleted, deleted_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Body,
		b.AuthorID,
		b.Tags,
		b.Category,
		b.Subcategory,
		b.IsPublished,
		b.PublishedAt,
		b.IsDeleted,
		b.DeletedAt,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM blogs
		WHERE id = $1 AND is_deleted = FALSE
	`, blogColumns)

	return scanBlog(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) Find(ctx context.Context, f blog.Filter) ([]model.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	where, args := buildWhereClause(f)

	query := fmt.Sprintf(`
		SELECT %s
		FROM blogs
		WHERE %s
		ORDER BY created_at DESC
	`, blogColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer rows.Close()

	var blogs []model.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blogs: %w", err)
	}

	return blogs, nil
}

// Update applies the overwrite set and the array unions as one statement,
// relying on the store's per-row atomicity.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, p blog.Patch) (*model.Blog, error) {
	if p.IsZero() {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	addSet := func(clause string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf(clause, len(args)))
	}

	if p.Title != nil {
		addSet("title = $%d", *p.Title)
	}
	if p.Body != nil {
		addSet("body = $%d", *p.Body)
	}
	if p.Category != nil {
		addSet("category = $%d", *p.Category)
	}
	if p.IsPublished != nil {
		addSet("is_published = $%d", *p.IsPublished)
		// PublishedAt travels with IsPublished; nil clears the column.
		addSet("published_at = $%d", p.PublishedAt)
	}
	if len(p.AddTags) > 0 {
		addSet("tags = (SELECT COALESCE(array_agg(DISTINCT t), '{}') FROM unnest(tags || $%d::text[]) AS t)", p.AddTags)
	}
	if len(p.AddSubcategory) > 0 {
		addSet("subcategory = (SELECT COALESCE(array_agg(DISTINCT s), '{}') FROM unnest(subcategory || $%d::text[]) AS s)", p.AddSubcategory)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE blogs
		SET %s
		WHERE id = $%d AND is_deleted = FALSE
		RETURNING %s
	`, strings.Join(sets, ", "), len(args), blogColumns)

	return scanBlog(r.pool.QueryRow(ctx, query, args...))
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `
		UPDATE blogs
		SET is_deleted = TRUE, deleted_at = $1, updated_at = $1
		WHERE id = $2 AND is_deleted = FALSE
	`

	tag, err := r.pool.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("soft delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}

	return nil
}

func (r *postgresRepository) SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `
		UPDATE blogs
		SET is_deleted = TRUE, deleted_at = $1, updated_at = $1
		WHERE id = ANY($2) AND is_deleted = FALSE
	`

	tag, err := r.pool.Exec(ctx, query, time.Now(), ids)
	if err != nil {
		return 0, fmt.Errorf("soft delete blogs: %w", err)
	}

	return tag.RowsAffected(), nil
}

// buildWhereClause constructs the WHERE clause dynamically. The base
// condition always excludes soft-deleted rows; each refinement appends a
// condition only when the filter carries it.
func buildWhereClause(f blog.Filter) (string, []interface{}) {
	conditions := []string{"is_deleted = FALSE"}
	var args []interface{}

	addCond := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if f.IsPublished != nil {
		addCond("is_published = $%d", *f.IsPublished)
	}
	if f.AuthorID != nil {
		addCond("author_id = $%d", *f.AuthorID)
	}
	if f.Category != "" {
		addCond("category = $%d", f.Category)
	}
	if len(f.Tags) > 0 {
		addCond("tags @> $%d::text[]", f.Tags)
	}
	if len(f.Subcategory) > 0 {
		addCond("subcategory @> $%d::text[]", f.Subcategory)
	}

	return strings.Join(conditions, " AND "), args
}

func scanBlog(row pgx.Row) (*model.Blog, error) {
	var b model.Blog
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Body,
		&b.AuthorID,
		&b.Tags,
		&b.Category,
		&b.Subcategory,
		&b.IsPublished,
		&b.PublishedAt,
		&b.IsDeleted,
		&b.DeletedAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, fmt.Errorf("scan blog: %w", err)
	}
	return &b, nil
}
