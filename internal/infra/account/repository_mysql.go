package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domain "github.com/kaitobq/mysql-bootstrap/internal/domain/account"
	"github.com/kaitobq/mysql-bootstrap/internal/infra/mysql"
)

const (
	selectByUsernameSQL = `SELECT id, username, email, password_hash, role, created_at, updated_at FROM users WHERE username = ?`
	insertAccountSQL    = `INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
)

// MySQLRepository implements domain.Repository using MySQL.
type MySQLRepository struct {
	db *sql.DB
}

var _ domain.Repository = (*MySQLRepository)(nil)

// NewMySQLRepository creates a new MySQL-backed Account repository.
func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) CreateIfAbsent(ctx context.Context, entity *domain.Entity) (*domain.Entity, bool, error) {
	var (
		stored  *domain.Entity
		created bool
	)
	err := mysql.RunInTx(ctx, r.db, func(tx *sql.Tx) error {
		existing, err := scanAccount(tx.QueryRowContext(ctx, selectByUsernameSQL+` FOR UPDATE`, entity.Username.String()))
		if err == nil {
			stored = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		_, err = tx.ExecContext(ctx, insertAccountSQL,
			entity.ID.String(), entity.Username.String(), entity.Email.String(),
			entity.PasswordHash.String(), entity.Role.String(),
			entity.CreatedAt, entity.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert account: %w", err)
		}
		stored, created = entity, true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("create account %s: %w", entity.Username, err)
	}
	return stored, created, nil
}

func (r *MySQLRepository) FindByUsername(ctx context.Context, username domain.Username) (*domain.Entity, error) {
	e, err := scanAccount(r.db.QueryRowContext(ctx, selectByUsernameSQL, username.String()))
	if err != nil {
		return nil, fmt.Errorf("find account %s: %w", username, err)
	}
	return e, nil
}

func scanAccount(row *sql.Row) (*domain.Entity, error) {
	var e domain.Entity
	var idStr, usernameStr, emailStr, hashStr, roleStr string
	if err := row.Scan(&idStr, &usernameStr, &emailStr, &hashStr, &roleStr, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	e.ID = domain.ID(idStr)
	e.Username = domain.Username(usernameStr)
	e.Email = domain.Email(emailStr)
	e.PasswordHash = domain.PasswordHash(hashStr)
	e.Role = domain.Role(roleStr)
	return &e, nil
}
