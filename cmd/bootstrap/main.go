package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kaitobq/mysql-bootstrap/internal/di"
)

func main() {
	container, err := di.NewContainer()
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := container.Bootstrap(ctx)
	if err != nil {
		container.Logger.Error("bootstrap failed", zap.Error(err))
		_ = container.Close()
		os.Exit(1)
	}
	container.Logger.Info("bootstrap complete",
		zap.String("database", pool.Database()),
		zap.Int("open_connections", pool.DB().Stats().OpenConnections),
	)

	if err := container.Close(); err != nil {
		container.Logger.Warn("close mysql pool", zap.Error(err))
	}
}
