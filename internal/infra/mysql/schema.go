package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Execer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const createUsersTableSQL = `
CREATE TABLE IF NOT EXISTS users (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	username VARCHAR(63) NOT NULL UNIQUE,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(32) NOT NULL,
	created_at DATETIME(6) NOT NULL,
	updated_at DATETIME(6) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

// CreateDatabaseSQL returns the idempotent statement creating database name.
func CreateDatabaseSQL(name string) string {
	return "CREATE DATABASE IF NOT EXISTS " + quoteIdent(name)
}

// EnsureDatabase creates database name if it does not exist.
func EnsureDatabase(ctx context.Context, db Execer, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: database name must not be empty", ErrConfig)
	}
	if _, err := db.ExecContext(ctx, CreateDatabaseSQL(name)); err != nil {
		return fmt.Errorf("%w: create database %s: %w", ErrStatement, name, err)
	}
	return nil
}

// EnsureAccountSchema creates the tables used for account seeding.
func EnsureAccountSchema(ctx context.Context, db Execer) error {
	if db == nil {
		return fmt.Errorf("mysql db is nil")
	}
	if _, err := db.ExecContext(ctx, createUsersTableSQL); err != nil {
		return fmt.Errorf("%w: create users table: %w", ErrStatement, err)
	}
	return nil
}

func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
