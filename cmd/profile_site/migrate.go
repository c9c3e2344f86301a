package main

import (
	"fmt"

	"github.com/jonathan/profile-site/internal/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  "Applies the embedded SQL migrations to the database named by DATABASE_URL.",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	database, ok := a.store.(*db.DB)
	if !ok {
		return fmt.Errorf("DATABASE_URL is required to run migrations")
	}
	applied, err := database.Migrate(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, name := range applied {
		_, _ = fmt.Fprintf(out, "applied %s\n", name)
	}
	_, _ = fmt.Fprintf(out, "%d migrations applied\n", len(applied))
	return nil
}
