package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Pool is the shared set of connections bound to one database.
type Pool struct {
	db             *sql.DB
	database       string
	acquireTimeout time.Duration
}

func newPool(db *sql.DB, database string, acquireTimeout time.Duration) *Pool {
	return &Pool{db: db, database: database, acquireTimeout: acquireTimeout}
}

// DB returns the underlying handle. database/sql handles concurrent use.
func (p *Pool) DB() *sql.DB { return p.db }

// Database returns the name of the database the pool is bound to.
func (p *Pool) Database() string { return p.database }

// Conn reserves a single connection, waiting at most the acquire timeout.
func (p *Pool) Conn(ctx context.Context) (*sql.Conn, error) {
	ctx, cancel := withTimeout(ctx, p.acquireTimeout)
	defer cancel()
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: acquire connection: %w", ErrConnection, err)
	}
	return conn, nil
}

func (p *Pool) Close() error { return p.db.Close() }
