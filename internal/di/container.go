package di

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	app "github.com/kaitobq/mysql-bootstrap/internal/application/account"
	"github.com/kaitobq/mysql-bootstrap/internal/config"
	infra "github.com/kaitobq/mysql-bootstrap/internal/infra/account"
	"github.com/kaitobq/mysql-bootstrap/internal/infra/mysql"
	"github.com/kaitobq/mysql-bootstrap/internal/logging"
)

// Container wires all dependencies. It is built once at startup and passed to
// whatever needs the pool.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Provider *mysql.Provider
}

// NewContainer loads the configuration and builds the dependency graph.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return NewContainerWith(cfg, logger), nil
}

// NewContainerWith builds the dependency graph from an already loaded configuration.
func NewContainerWith(cfg *config.Config, logger *zap.Logger, opts ...mysql.Option) *Container {
	logger = logging.OrNop(logger)
	return &Container{
		Config:   cfg,
		Logger:   logger,
		Provider: mysql.NewProvider(cfg.DB, logger, opts...),
	}
}

// Bootstrap acquires the pool, creates the account schema and seeds the admin account.
func (c *Container) Bootstrap(ctx context.Context) (*mysql.Pool, error) {
	pool, err := c.Provider.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire mysql pool: %w", err)
	}
	if err := mysql.EnsureAccountSchema(ctx, pool.DB()); err != nil {
		return nil, fmt.Errorf("ensure account schema: %w", err)
	}

	facade := app.NewFacade(infra.NewMySQLRepository(pool.DB()))
	out, err := facade.SeedAdmin(ctx, &app.SeedAdminInput{
		Username: c.Config.Admin.Username,
		Password: c.Config.Admin.Password,
		Email:    c.Config.Admin.Email,
	})
	switch {
	case errors.Is(err, app.ErrAdminNotConfigured):
		c.Logger.Warn("admin account not configured, skipping seed")
	case err != nil:
		return nil, fmt.Errorf("seed admin account: %w", err)
	case out.Created:
		c.Logger.Info("admin account created", zap.String("username", out.Account.Username), zap.String("email", out.Account.Email))
	default:
		c.Logger.Info("admin account already exists", zap.String("username", out.Account.Username))
	}
	return pool, nil
}

func (c *Container) Close() error {
	err := c.Provider.Close()
	_ = c.Logger.Sync()
	return err
}
