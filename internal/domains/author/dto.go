package author

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest carries the author registration payload.
type RegisterRequest struct {
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Validate checks the fields one at a time so the response names the first
// failing field. titleEnum is the configured allowed title set.
func (r RegisterRequest) Validate(titleEnum []string) error {
	if err := validation.Validate(r.FirstName,
		validation.Required.Error("first name is required"),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.LastName,
		validation.Required.Error("last name is required"),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.Title,
		validation.Required.Error("title is required"),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.Title,
		validation.In(toAnySlice(titleEnum)...).
			Error(fmt.Sprintf("title should be among %s", strings.Join(titleEnum, ", "))),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.Email,
		validation.Required.Error("email is required"),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.Email,
		is.Email.Error("email is invalid"),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.Password,
		validation.Required.Error("password is required"),
	); err != nil {
		return err
	}

	return nil
}

// NormalizedEmail returns the email the way it is stored: trimmed and
// lowercased, so uniqueness is case-insensitive.
func (r RegisterRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// LoginRequest carries the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if err := validation.Validate(r.Email,
		validation.Required.Error("email is required"),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.Email,
		is.Email.Error("email is invalid"),
	); err != nil {
		return err
	}

	if err := validation.Validate(r.Password,
		validation.Required.Error("password is required"),
	); err != nil {
		return err
	}

	return nil
}

// NormalizedEmail returns the email trimmed and lowercased, matching the
// form it was stored in at registration.
func (r LoginRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// LoginResponse is the token envelope returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

func toAnySlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
