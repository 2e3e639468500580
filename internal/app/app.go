package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shlink-dashboard/internal/config"
	"github.com/avc-dev/shlink-dashboard/internal/config/db"
	"github.com/avc-dev/shlink-dashboard/internal/jobs"
	"github.com/avc-dev/shlink-dashboard/internal/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App представляет приложение панели Shlink
type App struct {
	config *config.Config
	logger *zap.Logger

	dbPool  db.Database
	redis   *redis.Client
	queue   *jobs.Queue
	router  http.Handler
	health  *healthReporter
	limiter []*middleware.IPRateLimiter
}

// NewLogger создает production логгер, уровень которого меняется через level
func NewLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	return cfg.Build()
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	logger, err := NewLogger(level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	app := &App{
		config: cfg,
		logger: logger,
	}
	if err := app.initDependencies(ctx, level); err != nil {
		app.Close()
		_ = logger.Sync()
		return nil, err
	}

	return app, nil
}

// Run запускает приложение и ждет SIGINT или SIGTERM
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start(ctx)
}

// Close освобождает соединения с БД и Redis
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("database connection closed")
	}
}
