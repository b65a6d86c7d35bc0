package mysql

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/kaitobq/mysql-bootstrap/internal/config"
	"github.com/kaitobq/mysql-bootstrap/internal/logging"
)

// Provider hands out the process-wide connection pool. The first successful Acquire
// bootstraps the database and builds the pool; later calls return the same *Pool.
type Provider struct {
	cfg      config.ConnectionConfig
	logger   *zap.Logger
	open     Opener
	readFile func(string) ([]byte, error)

	mu      sync.Mutex
	pool    *Pool
	tlsName string
}

type Option func(*Provider)

// WithOpener replaces the function used to open database handles.
func WithOpener(open Opener) Option {
	return func(p *Provider) {
		if open != nil {
			p.open = open
		}
	}
}

// WithReadFile replaces the function used to read the CA certificate.
func WithReadFile(readFile func(string) ([]byte, error)) Option {
	return func(p *Provider) {
		if readFile != nil {
			p.readFile = readFile
		}
	}
}

// NewProvider creates a provider. No I/O happens until Acquire.
func NewProvider(cfg config.ConnectionConfig, logger *zap.Logger, opts ...Option) *Provider {
	p := &Provider{
		cfg:      cfg,
		logger:   logging.OrNop(logger).Named("mysql"),
		open:     OpenDB,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire returns the shared pool, initializing it on first use. Concurrent callers
// wait for a single initialization. A failed initialization is logged, returned and
// not cached, so the next call starts over.
func (p *Provider) Acquire(ctx context.Context) (*Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		return p.pool, nil
	}

	pool, err := p.initialize(ctx)
	if err != nil {
		p.logger.Error("initialize mysql pool",
			zap.String("kind", KindOf(err)),
			zap.String("addr", p.cfg.Addr()),
			zap.String("database", p.cfg.Database),
			zap.Bool("tls", p.cfg.TLSEnabled()),
			zap.Error(err),
		)
		return nil, err
	}
	p.pool = pool
	p.logger.Info("mysql pool ready",
		zap.String("addr", p.cfg.Addr()),
		zap.String("database", p.cfg.Database),
		zap.Bool("tls", p.tlsName != ""),
	)
	return pool, nil
}

// Close releases the pool if one was built. It is safe to call more than once.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.pool != nil {
		err = p.pool.Close()
		p.pool = nil
	}
	p.releaseTLS()
	return err
}

func (p *Provider) initialize(ctx context.Context) (*Pool, error) {
	if strings.TrimSpace(p.cfg.Database) == "" {
		return nil, fmt.Errorf("%w: database name must not be empty", ErrConfig)
	}

	tlsConfig, err := p.prepareTLS()
	if err != nil {
		return nil, err
	}

	if err := p.bootstrap(ctx, tlsConfig); err != nil {
		p.releaseTLS()
		return nil, err
	}

	pool, err := p.openPool(ctx, tlsConfig)
	if err != nil {
		p.releaseTLS()
		return nil, err
	}
	return pool, nil
}

func (p *Provider) prepareTLS() (*tls.Config, error) {
	opts, err := LoadTLSOptions(p.cfg, p.readFile)
	if err != nil || opts == nil {
		return nil, err
	}
	name, tlsConfig, err := opts.register()
	if err != nil {
		return nil, err
	}
	p.tlsName = name
	return tlsConfig, nil
}

func (p *Provider) releaseTLS() {
	if p.tlsName == "" {
		return
	}
	driver.DeregisterTLSConfig(p.tlsName)
	p.tlsName = ""
}

// bootstrap opens one connection without a schema and creates the database.
func (p *Provider) bootstrap(ctx context.Context, tlsConfig *tls.Config) error {
	db, err := p.open(DriverConfig(p.cfg, "", p.tlsName, tlsConfig))
	if err != nil {
		return fmt.Errorf("%w: open bootstrap connection: %w", ErrConnection, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			p.logger.Debug("close bootstrap connection", zap.Error(err))
		}
	}()
	db.SetMaxOpenConns(1)

	connectCtx, cancel := withTimeout(ctx, p.cfg.ConnectTimeout)
	defer cancel()
	conn, err := db.Conn(connectCtx)
	if err != nil {
		return fmt.Errorf("%w: connect to %s: %w", ErrConnection, p.cfg.Addr(), err)
	}
	defer conn.Close()

	if err := EnsureDatabase(ctx, conn, p.cfg.Database); err != nil {
		return err
	}
	p.logger.Debug("database ensured", zap.String("database", p.cfg.Database))
	return nil
}

func (p *Provider) openPool(ctx context.Context, tlsConfig *tls.Config) (*Pool, error) {
	db, err := p.open(DriverConfig(p.cfg, p.cfg.Database, p.tlsName, tlsConfig))
	if err != nil {
		return nil, fmt.Errorf("%w: open pool: %w", ErrConnection, err)
	}
	db.SetMaxOpenConns(p.cfg.MaxOpenConns)
	db.SetMaxIdleConns(p.cfg.MaxOpenConns)

	pingCtx, cancel := withTimeout(ctx, p.cfg.AcquireTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrConnection, p.cfg.Database, err)
	}
	return newPool(db, p.cfg.Database, p.cfg.AcquireTimeout), nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
