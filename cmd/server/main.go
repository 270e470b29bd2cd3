package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/me/manyas/internal/apiclient"
	"github.com/me/manyas/internal/config"
	"github.com/me/manyas/internal/logging"
	"github.com/me/manyas/internal/server"
	"github.com/me/manyas/internal/store"
)

func main() {
	envFile := flag.String("env-file", ".env", "Optional .env file with unprefixed settings")
	addr := flag.String("addr", "", "Listen address (overrides MANYAS_ADDR)")
	apiURL := flag.String("api", "", "Manyas API root (overrides MANYAS_API_URL)")
	dbPath := flag.String("db", "", "Credential database path (default ~/.manyas/web.db)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "Log format (text, json)")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// Flags override file and environment.
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	// Resolve database path.
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot determine home directory: %v\n", err)
			os.Exit(1)
		}
		dir := filepath.Join(home, ".manyas")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", dir, err)
			os.Exit(1)
		}
		cfg.DBPath = filepath.Join(dir, "web.db")
	}

	// Open store and run migrations.
	st, err := store.NewSQLiteStore(cfg.DBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}
	logger.Info("database ready", "path", cfg.DBPath)

	api := apiclient.New(cfg.APIURL, nil, logger, apiclient.WithHTTPClient(&http.Client{Timeout: 15 * time.Second}))
	srv, err := server.New(*cfg, st, api, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create server: %v\n", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Purge expired credentials in background.
	go store.Sweep(ctx, st, cfg.SweepInterval, logger)

	go func() {
		logger.Info("server starting", "addr", cfg.Addr, "api", cfg.APIURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
