package account

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kaitobq/mysql-bootstrap/internal/domain/account"
)

var accountColumns = []string{"id", "username", "email", "password_hash", "role", "created_at", "updated_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestCreateIfAbsentInserts(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewMySQLRepository(db)
	entity := domain.NewEntity("root-admin", "admin@default.com", "hash", domain.RoleAdmin)

	mock.ExpectBegin()
	mock.ExpectQuery(selectByUsernameSQL + ` FOR UPDATE`).
		WithArgs("root-admin").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(insertAccountSQL).
		WithArgs(entity.ID.String(), "root-admin", "admin@default.com", "hash", "admin", entity.CreatedAt, entity.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	stored, created, err := repo.CreateIfAbsent(context.Background(), entity)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Same(t, entity, stored)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAbsentKeepsExisting(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewMySQLRepository(db)
	entity := domain.NewEntity("root-admin", "admin@default.com", "hash", domain.RoleAdmin)
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(selectByUsernameSQL + ` FOR UPDATE`).
		WithArgs("root-admin").
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow("existing-id", "root-admin", "old@default.com", "old-hash", "admin", createdAt, createdAt))
	mock.ExpectCommit()

	stored, created, err := repo.CreateIfAbsent(context.Background(), entity)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, domain.ID("existing-id"), stored.ID)
	assert.Equal(t, domain.Email("old@default.com"), stored.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAbsentRollsBackOnInsertFailure(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewMySQLRepository(db)
	entity := domain.NewEntity("root-admin", "admin@default.com", "hash", domain.RoleAdmin)

	mock.ExpectBegin()
	mock.ExpectQuery(selectByUsernameSQL + ` FOR UPDATE`).
		WithArgs("root-admin").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(insertAccountSQL).WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	_, _, err := repo.CreateIfAbsent(context.Background(), entity)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate entry")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsernameNotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewMySQLRepository(db)

	mock.ExpectQuery(selectByUsernameSQL).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
