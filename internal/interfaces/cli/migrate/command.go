// Package migrate implements the "migrate" CLI command family.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumira-inc/lumira/internal/infrastructure/config"
	"github.com/lumira-inc/lumira/internal/infrastructure/database"
	"github.com/lumira-inc/lumira/internal/infrastructure/migration"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back, or inspect the embedded database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(driver string) error {
				return migration.Up(database.Get(), driver)
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Rollback the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(driver string) error {
				return migration.Down(database.Get(), driver)
			})
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(driver string) error {
				return migration.Status(database.Get(), driver)
			})
		},
	}
}

// withDatabase loads config, connects, runs fn, and closes the connection.
func withDatabase(fn func(driver string) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return fn(cfg.Database.Driver)
}
