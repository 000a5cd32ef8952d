package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	v1 "github.com/vmunix/catalogdash/internal/api/v1"
	"github.com/vmunix/catalogdash/internal/render"
	"github.com/vmunix/catalogdash/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web dashboard",
	Long: `Run the HTTP dashboard and JSON API.

The catalog is loaded once at startup (failures are logged, requests retry
the load) and, when [refresh] is enabled, re-fetched on schedule.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger := newLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader, closeCache, err := openLoader(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	if _, err := loader.Load(ctx); err != nil {
		logger.Warn("initial dataset load failed", "source", cfg.Source.URL, "error", err)
	}

	api, err := v1.NewWithDeps(v1.ServerDeps{
		Loader:       loader,
		Logger:       logger,
		Version:      version,
		FocusCountry: cfg.Dashboard.FocusCountry,
		Charts: render.Options{
			Width:  cfg.Dashboard.ChartWidth,
			Height: cfg.Dashboard.ChartHeight,
		},
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	runner := server.NewRunner(server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout.Duration,
		RefreshEnabled:  cfg.Refresh.Enabled,
		RefreshSchedule: cfg.Refresh.Schedule,
	}, mux, loader, logger)

	logger.Info("starting catalogdash", "version", version, "addr", cfg.Addr(), "source", cfg.Source.URL)
	if err := runner.Run(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
