// Copyright (c) 2026 StockSeer.AI. All rights reserved.
// Author: dev@stockseer.app

// Command api is the entry point for the StockSeer HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire domain services and HTTP handlers.
//  7. Start the optional session sweeper.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stockseer/api/internal/api"
	"github.com/stockseer/api/internal/market"
	"github.com/stockseer/api/internal/platform/config"
	"github.com/stockseer/api/internal/platform/constants"
	"github.com/stockseer/api/internal/platform/migration"
	pgstore "github.com/stockseer/api/internal/platform/postgres"
	redisstore "github.com/stockseer/api/internal/platform/redis"
	"github.com/stockseer/api/internal/users/account"
	"github.com/stockseer/api/internal/users/auth"
	"github.com/stockseer/api/internal/watchlist"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[StockSeer] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	accountRepository := auth.NewAccountRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	authService := auth.NewService(accountRepository, sessionRepository)
	authHandler := auth.NewHandler(authService)

	profileRepository := account.NewAccountRepository(pool)
	accountService := account.NewService(profileRepository, sessionRepository, log)
	accountHandler := account.NewHandler(accountService)

	marketProvider := market.NewCachedProvider(
		market.NewHTTPProvider(cfg.MarketAPIBaseURL, cfg.MarketAPIKey, cfg.NewsAPIKey),
		rdb,
		log,
	)
	marketService := market.NewService(marketProvider)
	marketHandler := market.NewHandler(marketService)

	watchlistRepository := watchlist.NewRepository(pool)
	watchlistService := watchlist.NewService(watchlistRepository)
	watchlistHandler := watchlist.NewHandler(watchlistService)

	// Lifecycle context for background workers (rate limiter cleanup, sweeper).
	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	// ── 8. Session Sweeper (optional) ─────────────────────────────────────
	// Validation already rejects expired sessions; the sweeper only reclaims
	// storage, so it is safe to leave disabled.
	if cfg.SessionSweepEnabled {
		go runSessionSweeper(runCtx, authService, cfg.SessionSweepInterval, log)
	}

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Account:   accountHandler,
		Market:    marketHandler,
		Watchlist: watchlistHandler,
	}

	server := api.NewServer(runCtx, cfg, log, authService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// runSessionSweeper deletes expired session rows on a fixed interval until
// the context is cancelled.
func runSessionSweeper(ctx context.Context, authService *auth.Service, interval time.Duration, log *slog.Logger) {
	log.Info("session_sweeper_started", slog.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("session_sweeper_stopped")
			return
		case <-ticker.C:
			removed, err := authService.SweepExpiredSessions(ctx)
			if err != nil {
				log.Error("session_sweep_failed", slog.Any("error", err))
				continue
			}
			if removed > 0 {
				log.Info("session_sweep_completed", slog.Int64("removed", removed))
			}
		}
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
