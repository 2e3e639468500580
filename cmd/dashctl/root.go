package main

import (
	"context"
	"fmt"

	"github.com/avc-dev/shlink-dashboard/internal/app"
	"github.com/avc-dev/shlink-dashboard/internal/config"
	"github.com/avc-dev/shlink-dashboard/internal/config/db"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli общее состояние подкоманд
type cli struct {
	cfg    *config.Config
	logger *zap.Logger
	dsn    string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "dashctl",
		Short:         "Administrative tasks for the Shlink dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadArgs(nil)
			if err != nil {
				return err
			}
			if c.dsn != "" {
				cfg.DatabaseDSN = c.dsn
			}

			logger, err := app.NewLogger(zap.NewAtomicLevelAt(zap.InfoLevel))
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			c.cfg = cfg
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&c.dsn, "dsn", "d", "", "PostgreSQL DSN (defaults to DATABASE_DSN)")

	root.AddCommand(
		c.migrateCmd(),
		c.seedSettingsCmd(),
		c.createUserCmd(),
		c.promoteAdminCmd(),
		c.syncCmd(),
	)
	return root
}

// openDatabase подключается к БД; вызывающий закрывает соединение
func (c *cli) openDatabase(ctx context.Context) (db.Database, error) {
	if c.cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("database DSN is required: set DATABASE_DSN or --dsn")
	}
	return db.NewConfig(c.cfg.DatabaseDSN).Connect(ctx)
}

// withStore выполняет fn над хранилищем в PostgreSQL
func (c *cli) withStore(ctx context.Context, fn func(*store.DatabaseStore) error) error {
	database, err := c.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(store.NewDatabaseStore(database))
}
