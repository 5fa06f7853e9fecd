// Package dto defines the request and response shapes for the user API.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/poketrade/pokecards/internal/validation"
)

// RegisterUserRequest is the body for POST /users.
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both fields are present. Email syntax is deliberately
// not checked at registration; only login enforces it.
func (r RegisterUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, appValidation.NotBlank),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginRequest is the body for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both fields are present.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, appValidation.NotBlank),
		validation.Field(&r.Password, validation.Required),
	)
}

// UpdateUserRequest is the body for PATCH /users/:userId. Omitted fields are
// left unchanged.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
