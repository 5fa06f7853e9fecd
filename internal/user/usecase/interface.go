// Package usecase implements the user business logic: registration, login,
// and account management.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/poketrade/pokecards/internal/user/domain"
)

// UserUseCase defines the user business operations.
type UserUseCase interface {
	// Register creates an account from an email and password and issues the
	// first session token. The password is hashed before storage; the email
	// must be unique.
	Register(ctx context.Context, input *domain.RegisterInput) (*domain.RegisterOutput, error)

	// Login checks the credentials against the stored hash and issues a
	// session token. Unknown emails and wrong passwords fail with distinct
	// domain errors.
	Login(ctx context.Context, input *domain.LoginInput) (*domain.LoginOutput, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]*domain.User, error)

	// Update changes a user's email and/or password. A new password is
	// re-hashed before storage.
	Update(ctx context.Context, id uuid.UUID, input *domain.UpdateUserInput) (*domain.User, error)

	// Delete removes a user by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the persistence operations needed by the use case.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
