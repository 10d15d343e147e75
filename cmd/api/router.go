package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blogsite-backend/internal/shared/middleware"
	"blogsite-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	// Registration and login are the only unauthenticated endpoints.
	router.POST("/authors", c.AuthorHandler.Register)
	router.POST("/login", c.AuthorHandler.Login)

	// Every blog route sits behind the auth gate.
	blogs := router.Group("/blogs")
	blogs.Use(middleware.Auth(c.JWTManager))
	{
		blogs.POST("", c.BlogHandler.CreateBlog)
		blogs.GET("", c.BlogHandler.ListBlogs)
		blogs.PUT("/:blogId", c.BlogHandler.UpdateBlog)
		blogs.DELETE("/:blogId", c.BlogHandler.DeleteBlog)
		blogs.DELETE("", c.BlogHandler.DeleteBlogs)
	}

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error"
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = "error"
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
