package main

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/cache"
	"github.com/avc-dev/shlink-dashboard/internal/migrations"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/repository"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	withMigrator := func(ctx context.Context, fn func(*migrations.Migrator) error) error {
		database, err := c.openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()
		return fn(migrations.NewMigrator(database.DB(), c.logger))
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), (*migrations.Migrator).RunUp)
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
				return m.RunDown(steps)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(m *migrations.Migrator) error {
				v, dirty, err := m.GetVersion()
				if err != nil {
					return err
				}
				cmd.Printf("version %d (dirty: %t)\n", v, dirty)
				return nil
			})
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

func (c *cli) seedSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-settings",
		Short: "Insert missing system settings with their default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withStore(cmd.Context(), func(s *store.DatabaseStore) error {
				settings := service.NewSettingsService(s, cache.NewMemoryCache(), c.logger)
				n, err := settings.Seed(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("inserted %d settings\n", n)
				return nil
			})
		},
	}
}

// createUser создает пользователя с паролем в обход настройки регистрации
func createUser(ctx context.Context, users repository.UserStore, email, password string, role model.Role) (model.User, error) {
	email, err := service.NormalizeEmail(email)
	if err != nil {
		return model.User{}, err
	}
	hash, err := service.HashPassword(password)
	if err != nil {
		return model.User{}, err
	}

	now := time.Now().UTC()
	user, err := users.CreateUser(ctx, model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user %s: %w", email, err)
	}
	return user, nil
}

func (c *cli) createUserCmd() *cobra.Command {
	var (
		email    string
		password string
		admin    bool
	)

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a password user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			role := model.RoleNormalUser
			if admin {
				role = model.RoleAdmin
			}
			return c.withStore(cmd.Context(), func(s *store.DatabaseStore) error {
				user, err := createUser(cmd.Context(), s, email, password, role)
				if err != nil {
					return err
				}
				cmd.Printf("created %s (%s, %s)\n", user.Email, user.ID, user.Role)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&password, "password", "", "user password")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant the admin role")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// promoteAdmin выдает роль администратора; повторный вызов ничего не меняет
func promoteAdmin(ctx context.Context, users repository.UserStore, email string) (model.User, error) {
	email, err := service.NormalizeEmail(email)
	if err != nil {
		return model.User{}, err
	}

	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to find user %s: %w", email, err)
	}
	if user.IsAdmin() {
		return user, nil
	}

	user.Role = model.RoleAdmin
	user.UpdatedAt = time.Now().UTC()
	if err := users.UpdateUser(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("failed to promote user %s: %w", email, err)
	}
	return user, nil
}

func (c *cli) promoteAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote-admin EMAIL",
		Short: "Grant the admin role to an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(s *store.DatabaseStore) error {
				user, err := promoteAdmin(cmd.Context(), s, args[0])
				if err != nil {
					return err
				}
				cmd.Printf("%s is now %s\n", user.Email, user.Role)
				return nil
			})
		},
	}
}

func (c *cli) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync USER_ID",
		Short: "Reconcile a user's short URLs with Shlink",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(s *store.DatabaseStore) error {
				client := shlink.NewClient(c.cfg.Shlink.BaseURL, c.cfg.Shlink.APIKey, c.cfg.Shlink.Timeout)
				syncer := service.NewSyncService(repository.New(s), client, c.logger)

				result, err := syncer.SyncUser(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				c.logger.Info("sync completed", zap.String("user_id", args[0]))
				cmd.Printf("updated %d, deleted %d, failed %d\n", result.Updated, result.Deleted, result.Failed)
				return nil
			})
		},
	}
}
