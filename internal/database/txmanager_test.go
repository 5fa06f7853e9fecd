package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestWithTx_Success(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE pokemon_cards").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	txManager := NewTxManager(db)
	err := txManager.WithTx(context.Background(), func(ctx context.Context) error {
		// The transaction must be reachable through the context.
		tx := ctx.Value(txKey{})
		assert.NotNil(t, tx)
		assert.IsType(t, &sql.Tx{}, tx)

		_, execErr := GetTx(ctx, db).ExecContext(ctx, "UPDATE pokemon_cards SET life_points = 50")
		return execErr
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	txManager := NewTxManager(db)
	testErr := assert.AnError
	err := txManager.WithTx(context.Background(), func(ctx context.Context) error {
		return testErr
	})

	assert.Equal(t, testErr, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin().WillReturnError(assert.AnError)

	txManager := NewTxManager(db)
	err := txManager.WithTx(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn should not run when begin fails")
		return nil
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTx_WithoutTransaction(t *testing.T) {
	db, _ := newMockDB(t)

	querier := GetTx(context.Background(), db)
	assert.Equal(t, db, querier)
}
