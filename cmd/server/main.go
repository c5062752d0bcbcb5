package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/accountpro/accountpro/internal/config"
	"github.com/accountpro/accountpro/internal/handler"
	"github.com/accountpro/accountpro/internal/repository"
	"github.com/accountpro/accountpro/internal/service"
	"github.com/accountpro/accountpro/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logger)
	if cfg.SecretKeyGenerated {
		logger.Warn("SECRET_KEY not set; using a random key, notices will not survive a restart")
	}

	// All state is in memory; every start begins from the seed accounts.
	repo := repository.NewAccountRepository(repository.SeedAccounts())
	accountService := service.NewAccountService(repo)

	renderer, err := web.NewRenderer(logger)
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		os.Exit(1)
	}
	flash := web.NewFlashStore(cfg.SecretKey)

	pageHandler := handler.NewPageHandler(accountService, renderer, flash)
	apiHandler := handler.NewAPIHandler(accountService)
	healthHandler := handler.NewHealthHandler(accountService)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler.NewRouter(logger, renderer, pageHandler, apiHandler, healthHandler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}

func newLogger(cfg config.LoggerConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
