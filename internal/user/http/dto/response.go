package dto

import "time"

// UserResponse is the public representation of a user. The password hash is
// never part of it.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterResponse is the body returned on successful registration.
type RegisterResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// LoginResponse is the body returned on successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
