package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/poketrade/pokecards/internal/auth/domain"
	apperrors "github.com/poketrade/pokecards/internal/errors"
	"github.com/poketrade/pokecards/internal/user/domain"
)

// fakeTxManager runs the function directly without a real transaction.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mockUserRepository is a mock implementation of UserRepository for testing.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockPasswordService is a mock implementation of PasswordService for testing.
type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

// mockTokenService is a mock implementation of TokenService for testing.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID, email string) (string, time.Time, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Verify(token string) (*authDomain.IdentityClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IdentityClaims), args.Error(1)
}

func newTestUseCase(
	repo *mockUserRepository,
	passwords *mockPasswordService,
	tokens *mockTokenService,
) UserUseCase {
	return NewUserUseCase(&fakeTxManager{}, repo, passwords, tokens)
}

func TestUserUseCase_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &mockUserRepository{}
		passwords := &mockPasswordService{}
		tokens := &mockTokenService{}

		expiresAt := time.Now().Add(time.Hour)
		passwords.On("Hash", "pw").Return("hashed-pw", nil).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "ash@pallet.town" && u.Password == "hashed-pw" && u.ID != uuid.Nil
		})).Return(nil).Once()
		tokens.On("Issue", mock.Anything, "ash@pallet.town").Return("token-abc", expiresAt, nil).Once()

		uc := newTestUseCase(repo, passwords, tokens)
		output, err := uc.Register(context.Background(), &domain.RegisterInput{
			Email:    "  Ash@Pallet.Town ",
			Password: "pw",
		})

		require.NoError(t, err)
		assert.Equal(t, "ash@pallet.town", output.User.Email)
		assert.Equal(t, "token-abc", output.Token)
		assert.Equal(t, expiresAt, output.TokenExpiresAt)
		repo.AssertExpectations(t)
		passwords.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		uc := newTestUseCase(&mockUserRepository{}, &mockPasswordService{}, &mockTokenService{})

		for _, input := range []*domain.RegisterInput{
			{Email: "", Password: "pw"},
			{Email: "ash@pallet.town", Password: ""},
			{Email: "   ", Password: "pw"},
			{},
		} {
			_, err := uc.Register(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := &mockUserRepository{}
		passwords := &mockPasswordService{}
		tokens := &mockTokenService{}

		passwords.On("Hash", "pw").Return("hashed-pw", nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrUserAlreadyExists).Once()

		uc := newTestUseCase(repo, passwords, tokens)
		_, err := uc.Register(context.Background(), &domain.RegisterInput{
			Email:    "ash@pallet.town",
			Password: "pw",
		})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
		tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_Login(t *testing.T) {
	storedUser := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    "ash@pallet.town",
		Password: "hashed-pw",
	}

	t.Run("Success", func(t *testing.T) {
		repo := &mockUserRepository{}
		passwords := &mockPasswordService{}
		tokens := &mockTokenService{}

		expiresAt := time.Now().Add(time.Hour)
		repo.On("GetByEmail", mock.Anything, "ash@pallet.town").Return(storedUser, nil).Once()
		passwords.On("Verify", "pw", "hashed-pw").Return(true).Once()
		tokens.On("Issue", storedUser.ID, "ash@pallet.town").Return("token-abc", expiresAt, nil).Once()

		uc := newTestUseCase(repo, passwords, tokens)
		output, err := uc.Login(context.Background(), &domain.LoginInput{
			Email:    "ash@pallet.town",
			Password: "pw",
		})

		require.NoError(t, err)
		assert.Equal(t, "token-abc", output.Token)
		repo.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		uc := newTestUseCase(&mockUserRepository{}, &mockPasswordService{}, &mockTokenService{})

		_, err := uc.Login(context.Background(), &domain.LoginInput{Email: "", Password: "pw"})
		assert.ErrorIs(t, err, domain.ErrMissingFields)

		_, err = uc.Login(context.Background(), &domain.LoginInput{Email: "ash@pallet.town", Password: ""})
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	})

	t.Run("InvalidEmailFormat", func(t *testing.T) {
		uc := newTestUseCase(&mockUserRepository{}, &mockPasswordService{}, &mockTokenService{})

		for _, email := range []string{"not-an-email", "a@b", "a b@c.d", "@c.d"} {
			_, err := uc.Login(context.Background(), &domain.LoginInput{Email: email, Password: "pw"})
			assert.ErrorIs(t, err, domain.ErrInvalidEmailFormat, "email %q", email)
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := &mockUserRepository{}
		repo.On("GetByEmail", mock.Anything, "nobody@nowhere.net").Return(nil, domain.ErrUserNotFound).Once()

		uc := newTestUseCase(repo, &mockPasswordService{}, &mockTokenService{})
		_, err := uc.Login(context.Background(), &domain.LoginInput{
			Email:    "nobody@nowhere.net",
			Password: "pw",
		})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := &mockUserRepository{}
		passwords := &mockPasswordService{}
		tokens := &mockTokenService{}

		repo.On("GetByEmail", mock.Anything, "ash@pallet.town").Return(storedUser, nil).Once()
		passwords.On("Verify", "wrong", "hashed-pw").Return(false).Once()

		uc := newTestUseCase(repo, passwords, tokens)
		_, err := uc.Login(context.Background(), &domain.LoginInput{
			Email:    "ash@pallet.town",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_Update(t *testing.T) {
	t.Run("EmailAndPassword", func(t *testing.T) {
		userID := uuid.Must(uuid.NewV7())
		stored := &domain.User{ID: userID, Email: "ash@pallet.town", Password: "old-hash"}

		repo := &mockUserRepository{}
		passwords := &mockPasswordService{}

		repo.On("GetByID", mock.Anything, userID).Return(stored, nil).Once()
		passwords.On("Hash", "new-pw").Return("new-hash", nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "red@pallet.town" && u.Password == "new-hash"
		})).Return(nil).Once()

		uc := newTestUseCase(repo, passwords, &mockTokenService{})
		updated, err := uc.Update(context.Background(), userID, &domain.UpdateUserInput{
			Email:    "Red@Pallet.Town",
			Password: "new-pw",
		})

		require.NoError(t, err)
		assert.Equal(t, "red@pallet.town", updated.Email)
		repo.AssertExpectations(t)
	})

	t.Run("NothingToUpdate", func(t *testing.T) {
		uc := newTestUseCase(&mockUserRepository{}, &mockPasswordService{}, &mockTokenService{})
		_, err := uc.Update(context.Background(), uuid.Must(uuid.NewV7()), &domain.UpdateUserInput{})
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	})

	t.Run("NotFound", func(t *testing.T) {
		userID := uuid.Must(uuid.NewV7())
		repo := &mockUserRepository{}
		repo.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrUserNotFound).Once()

		uc := newTestUseCase(repo, &mockPasswordService{}, &mockTokenService{})
		_, err := uc.Update(context.Background(), userID, &domain.UpdateUserInput{Email: "red@pallet.town"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	repo := &mockUserRepository{}
	repo.On("Delete", mock.Anything, userID).Return(nil).Once()

	uc := newTestUseCase(repo, &mockPasswordService{}, &mockTokenService{})
	assert.NoError(t, uc.Delete(context.Background(), userID))
	repo.AssertExpectations(t)
}
