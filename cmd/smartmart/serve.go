package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/smartmart/storefront/internal/auth"
	"github.com/smartmart/storefront/internal/cart"
	"github.com/smartmart/storefront/internal/database"
	"github.com/smartmart/storefront/internal/handlers"
	"github.com/smartmart/storefront/internal/middleware"
	"github.com/smartmart/storefront/static"
)

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the database schema before serving")

	return cmd
}

func serve(migrate bool) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	// Cart store
	ctx := context.Background()
	var (
		carts cart.Reader
		db    handlers.Pinger
	)
	if cfg.DemoMode() {
		logger.Warn("DATABASE_URL not set, serving demo carts from memory")
		carts = cart.NewMemoryStore().DemoReader()
	} else {
		pool, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		if migrate {
			if err := pool.Migrate(ctx); err != nil {
				return err
			}
		}

		carts = cart.NewPostgresStore(pool.Pool)
		db = pool
	}

	// Shopper sessions
	sessions := auth.NewSessionStore(
		cfg.SessionSecret,
		cfg.SessionMaxAge,
		cfg.IsProduction(),
	)

	// Handlers
	h := handlers.New(cfg, carts, db, logger)

	// Router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Metrics)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.Files))))

	// Operational
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Storefront
	r.Group(func(r chi.Router) {
		r.Use(middleware.Shopper(sessions, logger))
		h.Mount(r)
	})

	// Server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment, "demo", cfg.DemoMode())
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
	}
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
