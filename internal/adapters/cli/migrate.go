package cli

import (
	"github.com/spf13/cobra"

	"portfolio/internal/infrastructure/database"
	"portfolio/internal/shared/logger"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply or roll back the migrations of the translations table (MIGRATIONS_PATH).`,
	}

	cmd.AddCommand(
		newMigrateDirectionCommand(database.Up, "Run all pending migrations"),
		newMigrateDirectionCommand(database.Down, "Roll back the last migration"),
	)
	return cmd
}

func newMigrateDirectionCommand(direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   direction,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.cfg.RequireDatabase(); err != nil {
				return err
			}
			return database.RunMigrations(a.cfg.DatabaseURL, a.cfg.MigrationsPath, direction, logger.WithComponent("database"))
		},
	}
}
