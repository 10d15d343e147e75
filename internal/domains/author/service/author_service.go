package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blogsite-backend/internal/domains/author"
	"blogsite-backend/internal/domains/author/model"
	"blogsite-backend/pkg/jwt"
)

// authorService implements author.Service
type authorService struct {
	repo       author.Repository
	jwtManager *jwt.Manager
	titleEnum  []string
}

// NewAuthorService creates the service instance. The title enum comes from
// configuration, injected at construction.
func NewAuthorService(repo author.Repository, jwtManager *jwt.Manager, titleEnum []string) author.Service {
	return &authorService{
		repo:       repo,
		jwtManager: jwtManager,
		titleEnum:  titleEnum,
	}
}

func (s *authorService) Register(ctx context.Context, req author.RegisterRequest) (*model.Author, error) {
	// 1. VALIDATE INPUT (fixed field order, first failure wins)
	if err := req.Validate(s.titleEnum); err != nil {
		return nil, err
	}

	email := req.NormalizedEmail()

	// 2. BUSINESS RULE: email must be unique. The unique index on
	// authors.email catches the race between this check and the insert.
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, author.ErrEmailAlreadyExists
	}

	// 3. HASH PASSWORD
	// bcrypt cost 12: balance between security and performance
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. PERSIST
	now := time.Now()
	newAuthor := &model.Author{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Title:        req.Title,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, newAuthor); err != nil {
		return nil, err
	}

	return newAuthor, nil
}

func (s *authorService) Login(ctx context.Context, req author.LoginRequest) (*author.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByEmail(ctx, req.NormalizedEmail())
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, author.ErrInvalidCredentials
	}

	// Constant-time comparison against the stored hash.
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, author.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(a.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &author.LoginResponse{Token: token}, nil
}
