package blog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// StringList accepts either a JSON string or a JSON array of strings and
// normalizes both to a list. Any other shape is rejected at decode time
// rather than silently dropped.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*s = StringList(many)
		return nil
	}

	return errors.New("must be a string or an array of strings")
}

// Normalized returns the trimmed elements with blanks dropped.
func (s StringList) Normalized() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for _, v := range s {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ========================================
// REQUEST DTOs
// ========================================

// CreateBlogRequest carries the blog creation payload.
type CreateBlogRequest struct {
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	AuthorID    string     `json:"authorId"`
	Tags        StringList `json:"tags"`
	Category    string     `json:"category"`
	Subcategory StringList `json:"subcategory"`
	IsPublished *bool      `json:"isPublished"`
}

// Validate checks the fields one at a time so the response names the first
// failing field.
func (r CreateBlogRequest) Validate() error {
	if err := validation.Validate(r.Title,
		validation.Required.Error("Blog title is required"),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.Body,
		validation.Required.Error("Blog body is required"),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.AuthorID,
		validation.Required.Error("authorId is required"),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.AuthorID,
		is.UUID.Error(fmt.Sprintf("%s is invalid", r.AuthorID)),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.Category,
		validation.Required.Error("Blog category is required"),
	); err != nil {
		return err
	}

	return nil
}

// UpdateBlogRequest carries the partial-update payload. Every field is
// optional; absent fields leave the stored values untouched.
type UpdateBlogRequest struct {
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Category    string     `json:"category"`
	Tags        StringList `json:"tags"`
	Subcategory StringList `json:"subcategory"`
	IsPublished *bool      `json:"isPublished"`
}

// IsEmpty reports whether the request changes nothing. An empty update is
// a no-op success, not an error.
func (r UpdateBlogRequest) IsEmpty() bool {
	return strings.TrimSpace(r.Title) == "" &&
		strings.TrimSpace(r.Body) == "" &&
		strings.TrimSpace(r.Category) == "" &&
		len(r.Tags.Normalized()) == 0 &&
		len(r.Subcategory.Normalized()) == 0 &&
		r.IsPublished == nil
}

// ========================================
// QUERY DTOs
// ========================================

// ListBlogsQuery holds the optional listing refinements, raw from the URL.
type ListBlogsQuery struct {
	AuthorID    string
	Category    string
	Tags        string
	Subcategory string
}

// Filter translates the query into a store filter. Each refinement is
// applied only when present and valid; an invalid authorId is skipped, not
// an error, matching the public API behavior.
func (q ListBlogsQuery) Filter() Filter {
	var f Filter

	f.ApplyAuthorID(q.AuthorID)

	if category := strings.TrimSpace(q.Category); category != "" {
		f.Category = category
	}

	f.Tags = splitCSV(q.Tags)
	f.Subcategory = splitCSV(q.Subcategory)

	return f
}

// HasAny reports whether at least one refinement was supplied.
func (q ListBlogsQuery) HasAny() bool {
	return strings.TrimSpace(q.AuthorID) != "" ||
		strings.TrimSpace(q.Category) != "" ||
		strings.TrimSpace(q.Tags) != "" ||
		strings.TrimSpace(q.Subcategory) != ""
}

// DeleteBlogsQuery holds the bulk-delete filter parameters. Unlike listing
// it carries an optional isPublished match and never forces published-only.
type DeleteBlogsQuery struct {
	ListBlogsQuery
	IsPublished string
}

func (q DeleteBlogsQuery) Filter() Filter {
	f := q.ListBlogsQuery.Filter()

	if v := strings.TrimSpace(q.IsPublished); v != "" {
		if published, err := strconv.ParseBool(v); err == nil {
			f.IsPublished = &published
		}
	}

	return f
}

func (q DeleteBlogsQuery) HasAny() bool {
	return q.ListBlogsQuery.HasAny() || strings.TrimSpace(q.IsPublished) != ""
}

// splitCSV turns "a, b,c" into {"a","b","c"}; matches use contains-all
// semantics downstream.
func splitCSV(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
