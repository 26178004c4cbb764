package cli

import (
	"fmt"

	"rental-ops/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back SQL migrations",
	}

	cmd.AddCommand(newMigrateUpCmd(), newMigrateDownCmd(), newMigrateStatusCmd())
	return cmd
}

func newMigrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(func(runner *database.MigrationRunner) error {
				if err := runner.RunMigrations(); err != nil {
					return err
				}
				return printMigrationStatus(cmd, runner)
			})
		},
	}
}

func newMigrateDownCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			return withMigrationRunner(func(runner *database.MigrationRunner) error {
				if err := runner.RollbackMigrations(steps); err != nil {
					return err
				}
				return printMigrationStatus(cmd, runner)
			})
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	return cmd
}

func newMigrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(func(runner *database.MigrationRunner) error {
				return printMigrationStatus(cmd, runner)
			})
		},
	}
}

func withMigrationRunner(fn func(*database.MigrationRunner) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	sqlDB, err := a.db.DB.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}
	return fn(database.NewMigrationRunner(sqlDB, a.cfg.Database.MigrationsPath))
}

func printMigrationStatus(cmd *cobra.Command, runner *database.MigrationRunner) error {
	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		return fmt.Errorf("reading migration status: %w", err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]any{"version": version, "dirty": dirty})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
	return nil
}
