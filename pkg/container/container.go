package container

import (
	"context"
	"fmt"
	"time"

	"blogsite-backend/internal/config"
	infraCache "blogsite-backend/internal/infrastructure/cache"
	"blogsite-backend/internal/infrastructure/database"
	"blogsite-backend/pkg/cache"
	"blogsite-backend/pkg/jwt"
	"blogsite-backend/pkg/logger"

	"blogsite-backend/internal/domains/author"
	authorHandler "blogsite-backend/internal/domains/author/handler"
	authorRepo "blogsite-backend/internal/domains/author/repository"
	authorService "blogsite-backend/internal/domains/author/service"

	"blogsite-backend/internal/domains/blog"
	blogHandler "blogsite-backend/internal/domains/blog/handler"
	blogRepo "blogsite-backend/internal/domains/blog/repository"
	blogService "blogsite-backend/internal/domains/blog/service"
)

// Container holds every dependency of the application; it is the root of
// the dependency graph. All components are stateless singletons.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	AuthorRepo author.Repository
	BlogRepo   blog.Repository

	// Services
	AuthorService author.Service
	BlogService   blog.Service

	// Handlers
	AuthorHandler *authorHandler.AuthorHandler
	BlogHandler   *blogHandler.BlogHandler

	redisClient *infraCache.RedisClient
}

// NewContainer initializes the whole dependency graph. A database failure
// aborts startup; an unreachable Redis only logs a warning because every
// cache read degrades to a miss.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, cache reads will miss", map[string]interface{}{
			"error": err.Error(),
		})
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	c := &Container{
		Config:      cfg,
		DB:          db,
		Cache:       redisClient,
		JWTManager:  jwtManager,
		redisClient: redisClient,
	}

	// Repositories
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache, cfg.Database.QueryTimeout)
	c.BlogRepo = blogRepo.NewPostgresRepository(db.Pool, cfg.Database.QueryTimeout)

	// Services
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, jwtManager, cfg.Author.TitleEnum)
	c.BlogService = blogService.NewBlogService(c.BlogRepo, c.AuthorRepo)

	// Handlers
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			logger.Error("close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
