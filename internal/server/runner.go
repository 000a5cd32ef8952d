// Package server runs the HTTP service and the scheduled dataset refresh.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/catalogdash/internal/catalog"
)

// Refresher re-fetches the dataset, bypassing caches.
type Refresher interface {
	Refresh(ctx context.Context) (*catalog.Dataset, error)
}

// Config for the runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	RefreshEnabled  bool
	RefreshSchedule string // robfig/cron standard spec, e.g. "@every 1h"
	RefreshTimeout  time.Duration
}

// Runner manages the HTTP server and the refresh scheduler.
type Runner struct {
	config    Config
	handler   http.Handler
	refresher Refresher
	logger    *slog.Logger
}

// NewRunner creates a new runner. refresher may be nil when refresh is disabled.
func NewRunner(cfg Config, handler http.Handler, refresher Refresher, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = 5 * time.Minute
	}
	return &Runner{
		config:    cfg,
		handler:   handler,
		refresher: refresher,
		logger:    logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve runs all components on ln.
// It blocks until the context is canceled or a component fails.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	var scheduler *cron.Cron
	if r.config.RefreshEnabled && r.refresher != nil {
		var err error
		if scheduler, err = r.newScheduler(); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler:           LogRequests(r.handler, r.logger.With("component", "http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		r.logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if scheduler != nil {
		g.Go(func() error {
			scheduler.Start()
			r.logger.Info("refresh scheduler started", "schedule", r.config.RefreshSchedule)
			<-ctx.Done()
			<-scheduler.Stop().Done()
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) newScheduler() (*cron.Cron, error) {
	log := r.logger.With("component", "refresh")
	c := cron.New(
		cron.WithLogger(cronLogger{log: log}),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{log: log})),
	)

	_, err := c.AddFunc(r.config.RefreshSchedule, func() {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), r.config.RefreshTimeout)
		defer cancel()

		ds, err := r.refresher.Refresh(ctx)
		if err != nil {
			log.Error("scheduled refresh failed", "error", err)
			return
		}
		log.Info("scheduled refresh complete",
			"rows", ds.Len(),
			"duration_ms", time.Since(start).Milliseconds())
	})
	if err != nil {
		return nil, fmt.Errorf("refresh schedule %q: %w", r.config.RefreshSchedule, err)
	}
	return c, nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
