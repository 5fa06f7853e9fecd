// Package domain defines the user domain entities, inputs, and errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/poketrade/pokecards/internal/errors"
)

// User represents a registered account. Password always holds the argon2id
// hash, never the plain text; it must not be serialized in API responses.
type User struct {
	ID        uuid.UUID
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegisterInput contains the data for account registration.
type RegisterInput struct {
	Email    string
	Password string
}

// RegisterOutput contains the created user and their first session token.
type RegisterOutput struct {
	User           *User
	Token          string
	TokenExpiresAt time.Time
}

// LoginInput contains the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput contains the session token issued on successful login.
type LoginOutput struct {
	Token          string
	TokenExpiresAt time.Time
}

// UpdateUserInput contains the updatable user fields. Empty fields are left
// unchanged; a non-empty password is re-hashed before storage.
type UpdateUserInput struct {
	Email    string
	Password string
}

// Domain errors for user operations. Each carries the exact client-facing
// message while the wrapped kind drives the HTTP status code.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrNotFound, "user not found"),
		"Utilisateur non trouvé.",
	)

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrConflict, "user already exists"),
		"Utilisateur déjà existant.",
	)

	// ErrInvalidCredentials indicates the password does not match the account.
	ErrInvalidCredentials = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrInvalidInput, "invalid credentials"),
		"Mot de passe incorrect.",
	)

	// ErrInvalidEmailFormat indicates the email is not syntactically valid.
	ErrInvalidEmailFormat = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrInvalidInput, "invalid email format"),
		"Format de l'email invalide.",
	)

	// ErrMissingFields indicates a required field is absent or blank.
	ErrMissingFields = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrInvalidInput, "missing required fields"),
		"Tous les champs sont requis.",
	)

	// ErrInvalidUserID indicates the path parameter is not a valid UUID.
	ErrInvalidUserID = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrInvalidInput, "invalid user id"),
		"L'ID de l'utilisateur est invalide.",
	)
)
