package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	authService "github.com/poketrade/pokecards/internal/auth/service"
	"github.com/poketrade/pokecards/internal/database"
	apperrors "github.com/poketrade/pokecards/internal/errors"
	"github.com/poketrade/pokecards/internal/user/domain"
	appValidation "github.com/poketrade/pokecards/internal/validation"
)

// userUseCase handles user business logic.
type userUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
) UserUseCase {
	return &userUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// normalizeEmail trims whitespace and lowercases so lookups and the unique
// constraint are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account and issues the first session token.
// Registration only requires the fields to be present; email syntax is
// enforced at login.
func (uc *userUseCase) Register(
	ctx context.Context,
	input *domain.RegisterInput,
) (*domain.RegisterOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	hashedPassword, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     normalizeEmail(input.Email),
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	return &domain.RegisterOutput{
		User:           user,
		Token:          token,
		TokenExpiresAt: expiresAt,
	}, nil
}

// Login verifies the credentials and issues a session token. The checks run
// in a fixed order: field presence, email syntax, account existence, password
// match. Each failure maps to its own domain error.
func (uc *userUseCase) Login(
	ctx context.Context,
	input *domain.LoginInput,
) (*domain.LoginOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	email := normalizeEmail(input.Email)
	if !appValidation.ValidEmail(email) {
		return nil, domain.ErrInvalidEmailFormat
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !uc.passwordService.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	return &domain.LoginOutput{
		Token:          token,
		TokenExpiresAt: expiresAt,
	}, nil
}

// GetByID retrieves a user by ID.
func (uc *userUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// List retrieves all users.
func (uc *userUseCase) List(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.List(ctx)
}

// Update changes the user's email and/or password. Empty input fields keep
// their current value; a new password is re-hashed.
func (uc *userUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateUserInput,
) (*domain.User, error) {
	if strings.TrimSpace(input.Email) == "" && input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Email) != "" {
		email := normalizeEmail(input.Email)
		if !appValidation.ValidEmail(email) {
			return nil, domain.ErrInvalidEmailFormat
		}
		user.Email = email
	}

	if input.Password != "" {
		hashedPassword, err := uc.passwordService.Hash(input.Password)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to hash password")
		}
		user.Password = hashedPassword
	}

	user.UpdatedAt = time.Now().UTC()

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user by ID.
func (uc *userUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.userRepo.Delete(ctx, id)
}
