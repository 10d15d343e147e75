package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogsite-backend/internal/domains/author"
	"blogsite-backend/internal/domains/blog"
	"blogsite-backend/internal/shared/middleware"
	"blogsite-backend/internal/shared/response"
	"blogsite-backend/pkg/logger"
)

// BlogHandler exposes the blog endpoints. All of them sit behind the auth
// gate, which guarantees an author id in the context.
type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// CreateBlog handles POST /blogs
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req blog.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request parameters. Please provide details")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "New Blog Created successfully", created)
}

// ListBlogs handles GET /blogs
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	q := blog.ListBlogsQuery{
		AuthorID:    c.Query("authorId"),
		Category:    c.Query("category"),
		Tags:        c.Query("tags"),
		Subcategory: c.Query("subcategory"),
	}

	blogs, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, blog.ErrNoBlogsFound) {
			response.NotFound(c, "no blogs found")
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Blogs List", blogs)
}

// UpdateBlog handles PUT /blogs/:blogId
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	authorID, ok := middleware.GetAuthorID(c)
	if !ok {
		response.Forbidden(c, "Missing Authentication token in request")
		return
	}

	// An unparseable body is treated the same as an empty one: the update
	// becomes a no-op returning the unmodified record.
	var req blog.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = blog.UpdateBlogRequest{}
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("blogId"), authorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	message := "Blog Updated Successfully"
	if req.IsEmpty() {
		message = "Blog Unmodified"
	}
	response.Success(c, http.StatusOK, message, updated)
}

// DeleteBlog handles DELETE /blogs/:blogId
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	authorID, ok := middleware.GetAuthorID(c)
	if !ok {
		response.Forbidden(c, "Missing Authentication token in request")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("blogId"), authorID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Blog Deleted Successfully", nil)
}

// DeleteBlogs handles DELETE /blogs
func (h *BlogHandler) DeleteBlogs(c *gin.Context) {
	authorID, ok := middleware.GetAuthorID(c)
	if !ok {
		response.Forbidden(c, "Missing Authentication token in request")
		return
	}

	q := blog.DeleteBlogsQuery{
		ListBlogsQuery: blog.ListBlogsQuery{
			AuthorID:    c.Query("authorId"),
			Category:    c.Query("category"),
			Tags:        c.Query("tags"),
			Subcategory: c.Query("subcategory"),
		},
		IsPublished: c.Query("isPublished"),
	}

	if _, err := h.service.DeleteByFilter(c.Request.Context(), q, authorID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Blog(s) deleted successfully", nil)
}

// handleError maps domain errors onto the response envelope.
func (h *BlogHandler) handleError(c *gin.Context, err error) {
	var fieldErr validation.ErrorObject
	var structErrs validation.Errors
	switch {
	case errors.As(err, &fieldErr), errors.As(err, &structErrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, author.ErrAuthorNotFound):
		// Bad input at creation time, deliberately 400 rather than 404.
		response.BadRequest(c, "Author does not exist")
	case errors.Is(err, blog.ErrFilterRequired):
		response.BadRequest(c, "No query params received. Blog cannot be deleted")
	case errors.Is(err, blog.ErrBlogNotFound):
		response.NotFound(c, "Blog not found")
	case errors.Is(err, blog.ErrNoBlogsFound):
		response.NotFound(c, "No matching blogs found")
	case errors.Is(err, blog.ErrNotOwner):
		response.Unauthorized(c, "Unauthorised Access! Owner info does not match")
	default:
		logger.Error("blog handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
