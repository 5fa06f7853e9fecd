package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/poketrade/pokecards/internal/errors"
	"github.com/poketrade/pokecards/internal/user/domain"
)

func newMockRepo(t *testing.T) (*PostgreSQLUserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgreSQLUserRepository(db), mock
}

func testUser() *domain.User {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     "ash@pallet.town",
		Password:  "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func userRows(user *domain.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password", "created_at", "updated_at"}).
		AddRow(user.ID, user.Email, user.Password, user.CreatedAt, user.UpdatedAt)
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		user := testUser()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(user.ID, user.Email, user.Password, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), user)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		user := testUser()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pq.Error{Code: pgUniqueViolation})

		err := repo.Create(context.Background(), user)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
		assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	})

	t.Run("OtherDriverError", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		user := testUser()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pq.Error{Code: "53300"})

		err := repo.Create(context.Background(), user)
		assert.Error(t, err)
		assert.False(t, apperrors.Is(err, apperrors.ErrConflict))
	})
}

func TestPostgreSQLUserRepository_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		user := testUser()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password, created_at, updated_at FROM users WHERE id = $1")).
			WithArgs(user.ID).
			WillReturnRows(userRows(user))

		got, err := repo.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password, created_at, updated_at FROM users WHERE id = $1")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "created_at", "updated_at"}))

		_, err := repo.GetByID(context.Background(), uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestPostgreSQLUserRepository_GetByEmail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		user := testUser()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password, created_at, updated_at FROM users WHERE email = $1")).
			WithArgs(user.Email).
			WillReturnRows(userRows(user))

		got, err := repo.GetByEmail(context.Background(), user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password, created_at, updated_at FROM users WHERE email = $1")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "created_at", "updated_at"}))

		_, err := repo.GetByEmail(context.Background(), "nobody@nowhere.net")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgreSQLUserRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)
	first := testUser()
	second := testUser()
	second.Email = "misty@cerulean.city"

	rows := sqlmock.NewRows([]string{"id", "email", "password", "created_at", "updated_at"}).
		AddRow(first.ID, first.Email, first.Password, first.CreatedAt, first.UpdatedAt).
		AddRow(second.ID, second.Email, second.Password, second.CreatedAt, second.UpdatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password, created_at, updated_at FROM users ORDER BY created_at")).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.Email, users[0].Email)
	assert.Equal(t, second.Email, users[1].Email)
}

func TestPostgreSQLUserRepository_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		user := testUser()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET email = $1, password = $2, updated_at = $3 WHERE id = $4")).
			WithArgs(user.Email, user.Password, user.UpdatedAt, user.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(context.Background(), user))
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		user := testUser()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(context.Background(), user), domain.ErrUserNotFound)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		user := testUser()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
			WillReturnError(&pq.Error{Code: pgUniqueViolation})

		assert.ErrorIs(t, repo.Update(context.Background(), user), domain.ErrUserAlreadyExists)
	})
}

func TestPostgreSQLUserRepository_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), uuid.Must(uuid.NewV7())), domain.ErrUserNotFound)
	})
}
