package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"github.com/stemsi/der-api/internal/config"
	"github.com/stemsi/der-api/internal/migrations"
)

// databaseURL overrides the configured connection string when set.
var databaseURL string

func main() {
	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the DER database schema",
		Long:          `Applies or rolls back the embedded SQL migrations against the configured PostgreSQL database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL (defaults to DATABASE_URL / DB_* configuration)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *migrate.Migrate, _ []string) error {
				if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
					return fmt.Errorf("up failed: %w", err)
				}
				fmt.Println("Migrated up successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *migrate.Migrate, _ []string) error {
				if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
					return fmt.Errorf("down failed: %w", err)
				}
				fmt.Println("Migrated down successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *migrate.Migrate, _ []string) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("No migrations applied")
					return nil
				}
				if err != nil {
					return fmt.Errorf("version failed: %w", err)
				}
				fmt.Printf("Version: %d, Dirty: %t\n", version, dirty)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(m *migrate.Migrate, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				if err := m.Force(v); err != nil {
					return fmt.Errorf("force failed: %w", err)
				}
				fmt.Printf("Forced version to %d\n", v)
				return nil
			}),
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withMigrator opens the embedded migrations against the target database,
// runs fn and closes the migrator afterwards.
func withMigrator(fn func(m *migrate.Migrate, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		url := databaseURL
		if url == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			url = cfg.DatabaseURL
		}

		m, err := migrations.New(url)
		if err != nil {
			return err
		}
		defer m.Close()

		return fn(m, args)
	}
}
