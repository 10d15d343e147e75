package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogsite-backend/internal/domains/author"
	"blogsite-backend/internal/shared/middleware"
	"blogsite-backend/internal/shared/response"
	"blogsite-backend/pkg/logger"
)

// AuthorHandler exposes the registration and login endpoints.
type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Register handles POST /authors
func (h *AuthorHandler) Register(c *gin.Context) {
	var req author.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request parameters. Please provide details")
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, author.ErrEmailAlreadyExists) {
			response.BadRequest(c, fmt.Sprintf("%s is already registered", req.NormalizedEmail()))
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Author created successfully", created)
}

// Login handles POST /login
func (h *AuthorHandler) Login(c *gin.Context) {
	var req author.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request parameters. Please provide details")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, author.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid Login Credentials")
			return
		}
		h.handleError(c, err)
		return
	}

	// The token is echoed in the same header clients send it back on.
	c.Header(middleware.APIKeyHeader, res.Token)
	response.Success(c, http.StatusOK, "Author Login Successful", res)
}

// handleError maps remaining domain errors onto the response envelope.
func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	var fieldErr validation.ErrorObject
	var structErrs validation.Errors
	if errors.As(err, &fieldErr) || errors.As(err, &structErrs) {
		response.BadRequest(c, err.Error())
		return
	}

	logger.Error("author handler: unexpected error", err)
	response.InternalServerError(c, "Internal server error")
}
