package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blogsite-backend/internal/shared/response"
	"blogsite-backend/pkg/jwt"
)

// APIKeyHeader is the request header carrying the bearer credential.
// The public API uses x-api-key rather than the Authorization scheme.
const APIKeyHeader = "x-api-key"

const authorIDKey = "authorID"

// Auth verifies the bearer credential and injects the authenticated
// author id into the request context. Guards every /blogs route.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(APIKeyHeader)
		if token == "" {
			response.Forbidden(c, "Missing Authentication token in request")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			response.Forbidden(c, "Invalid Authentication token in request")
			c.Abort()
			return
		}

		authorID, err := uuid.Parse(claims.AuthorID)
		if err != nil {
			response.Forbidden(c, "Invalid Authentication token in request")
			c.Abort()
			return
		}

		c.Set(authorIDKey, authorID)
		c.Next()
	}
}

// GetAuthorID returns the authenticated author id set by Auth.
func GetAuthorID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(authorIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
