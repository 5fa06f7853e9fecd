package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/poketrade/pokecards/internal/database"
	apperrors "github.com/poketrade/pokecards/internal/errors"
	"github.com/poketrade/pokecards/internal/user/domain"
)

// mysqlDuplicateEntry is the MySQL error number for duplicate key violations.
const mysqlDuplicateEntry = 1062

// MySQLUserRepository implements user persistence for MySQL.
// UUIDs are stored as BINARY(16).
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQL user repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user. A duplicate email is reported as
// domain.ErrUserAlreadyExists.
func (m *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (id, email, password, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.Email,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID.
func (m *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, email, password, created_at, updated_at FROM users WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	return scanMySQLUser(querier.QueryRowContext(ctx, query, idBytes))
}

// GetByEmail retrieves a user by email.
func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, email, password, created_at, updated_at FROM users WHERE email = ?`

	return scanMySQLUser(querier.QueryRowContext(ctx, query, email))
}

// List retrieves all users ordered by creation time.
func (m *MySQLUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, email, password, created_at, updated_at FROM users ORDER BY created_at`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer func() { _ = rows.Close() }()

	var users []*domain.User
	for rows.Next() {
		var (
			user    domain.User
			idBytes []byte
		)
		if err := rows.Scan(
			&idBytes,
			&user.Email,
			&user.Password,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		if err := user.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal user id")
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
func (m *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users SET email = ?, password = ?, updated_at = ? WHERE id = ?`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Email,
		user.Password,
		user.UpdatedAt,
		id,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
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
func (m *MySQLUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM users WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, query, idBytes)
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

// scanMySQLUser scans a single user row, converting the BINARY(16) id.
func scanMySQLUser(row *sql.Row) (*domain.User, error) {
	var (
		user    domain.User
		idBytes []byte
	)
	err := row.Scan(
		&idBytes,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}
	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	return &user, nil
}

// isMySQLDuplicateEntry reports whether err is a duplicate key violation
// raised by the go-sql-driver/mysql driver.
func isMySQLDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
