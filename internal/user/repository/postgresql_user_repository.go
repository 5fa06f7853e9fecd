// Package repository implements data persistence for user entities.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). PostgreSQL uses native UUID types, MySQL uses BINARY(16).
// Driver errors are translated to typed domain errors at this boundary:
// callers never inspect driver error codes.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/poketrade/pokecards/internal/database"
	apperrors "github.com/poketrade/pokecards/internal/errors"
	"github.com/poketrade/pokecards/internal/user/domain"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgreSQLUserRepository implements user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQL user repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user. A duplicate email is reported as
// domain.ErrUserAlreadyExists.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, email, password, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID.
func (p *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, password, created_at, updated_at FROM users WHERE id = $1`

	var user domain.User
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	return &user, nil
}

// GetByEmail retrieves a user by email.
func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, password, created_at, updated_at FROM users WHERE email = $1`

	var user domain.User
	err := querier.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	return &user, nil
}

// List retrieves all users ordered by creation time.
func (p *PostgreSQLUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, password, created_at, updated_at FROM users ORDER BY created_at`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer func() { _ = rows.Close() }()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Password,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}

	return users, nil
}

// Update modifies an existing user. Reports domain.ErrUserNotFound when the
// ID matches no row and domain.ErrUserAlreadyExists on an email collision.
func (p *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users SET email = $1, password = $2, updated_at = $3 WHERE id = $4`

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Email,
		user.Password,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID. Reports domain.ErrUserNotFound when the ID
// matches no row.
func (p *PostgreSQLUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM users WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// isPostgreSQLUniqueViolation reports whether err is a unique constraint
// violation raised by the lib/pq driver.
func isPostgreSQLUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
