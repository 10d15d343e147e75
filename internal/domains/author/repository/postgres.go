package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogsite-backend/internal/domains/author"
	"blogsite-backend/internal/domains/author/model"
	"blogsite-backend/pkg/cache"
)

const authorCacheTTL = 10 * time.Minute

// postgresRepository is the concrete implementation of author.Repository.
type postgresRepository struct {
	pool         *pgxpool.Pool
	cache        cache.Cache
	queryTimeout time.Duration
}

// NewPostgresRepository returns the repository behind the domain interface.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, queryTimeout time.Duration) author.Repository {
	return &postgresRepository{
		pool:         pool,
		cache:        c,
		queryTimeout: queryTimeout,
	}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `
		INSERT INTO authors (
			id, first_name, last_name, title, email, password_hash,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.FirstName,
		a.LastName,
		a.Title,
		a.Email,
		a.PasswordHash,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		// 23505 = unique_violation. The exists-then-insert check in the
		// service is racy under concurrent registrations; the unique index
		// is the backstop, mapped to the same domain error.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return author.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert author: %w", err)
	}

	return nil
}

// FindByID uses the cache-aside pattern: blog creation resolves authors on
// every request, so hot authors are served from Redis.
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := fmt.Sprintf("author:%s", id.String())

	var cached model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `
		SELECT id, first_name, last_name, title, email, password_hash,
			created_at, updated_at
		FROM authors
		WHERE id = $1
	`

	a, err := r.scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	// Cache write failures are not fatal; the next read falls through to
	// the database again.
	_ = r.cache.Set(ctx, cacheKey, a, authorCacheTTL)

	return a, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `
		SELECT id, first_name, last_name, title, email, password_hash,
			created_at, updated_at
		FROM authors
		WHERE email = $1
	`

	return r.scanAuthor(r.pool.QueryRow(ctx, query, email))
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Title,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("scan author: %w", err)
	}
	return &a, nil
}
