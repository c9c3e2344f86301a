package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jonathan/profile-site/internal/db"
	"github.com/jonathan/profile-site/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort        int
	serveSkipMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the profile site server",
	Long:  `Start an HTTP server with the public profile page, the JSON API and the admin editor endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveSkipMigrate, "skip-migrate", false, "Do not apply database migrations on startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if servePort != 0 {
		a.cfg.Port = servePort
		if err := a.cfg.Validate(); err != nil {
			return err
		}
	}

	if database, ok := a.store.(*db.DB); ok && !serveSkipMigrate {
		applied, err := database.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		a.log.Info().Strs("migrations", applied).Msg("database schema up to date")
	}

	srv, err := server.New(a.cfg, a.svc, a.log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start(ctx)
}
