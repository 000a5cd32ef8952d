package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/vmunix/catalogdash/internal/config"
	"github.com/vmunix/catalogdash/internal/dataset"
	"github.com/vmunix/catalogdash/internal/migrations"
	"github.com/vmunix/catalogdash/internal/server"
	"github.com/vmunix/catalogdash/internal/source"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "catalogdash",
	Short: "Explore the nationality of catalog titles",
	Long: `catalogdash - catalog nationality dashboard

Loads the catalog CSV, filters it by type, continent, category and the
focus country, and shows counts by country, continent and category.

Run 'catalogdash serve' for the web dashboard.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("catalogdash {{.Version}}\n")
}

// loadConfig loads .env, then the explicit or discovered config file.
// Without any config file the defaults apply.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	path := configPath
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}
	return config.Load(path)
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: server.ParseLogLevel(cfg.Server.LogLevel),
	}))
}

// openLoader wires the source client and the optional SQLite cache.
// The returned close function releases the cache database.
func openLoader(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dataset.Loader, func(), error) {
	client := source.New(cfg.Source.URL,
		source.WithTimeout(cfg.Source.Timeout.Duration),
		source.WithLogger(logger),
	)

	ttl := cfg.Cache.CacheTTL()
	if ttl <= 0 {
		return dataset.NewLoader(client, nil, 0, logger), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create cache dir: %w", err)
	}
	db, err := sql.Open("sqlite", cfg.Cache.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache: %w", err)
	}
	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	cache := dataset.NewCache(db)
	if n, err := cache.Prune(ctx); err != nil {
		logger.Warn("cache prune failed", "error", err)
	} else if n > 0 {
		logger.Debug("pruned expired cache entries", "count", n)
	}

	return dataset.NewLoader(client, cache, ttl, logger), func() { _ = db.Close() }, nil
}
