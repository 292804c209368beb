// Sprout is the authoritative server for a Telegram mini-app farming
// game. It verifies signed initData payloads, applies farm actions to
// per-user saves, and persists them to Postgres or Supabase.
//
// @title Sprout API
// @version 1.0
// @description Authoritative farm game server for a Telegram mini-app.
// @BasePath /
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

	"github.com/greenpatch/sprout/internal/bootstrap"
	"github.com/greenpatch/sprout/internal/config"
	"github.com/greenpatch/sprout/internal/database"
	"github.com/greenpatch/sprout/internal/game"
	"github.com/greenpatch/sprout/internal/handler"
	"github.com/greenpatch/sprout/internal/repository"
	"github.com/greenpatch/sprout/internal/repository/postgres"
	"github.com/greenpatch/sprout/internal/repository/supabase"
	"github.com/greenpatch/sprout/internal/server"
	"github.com/greenpatch/sprout/internal/telegram"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	saves, store, closeStore, err := setupStore(cfg)
	if err != nil {
		slog.Error("Save store setup failed", "error", err)
		os.Exit(1)
	}

	verifier := telegram.NewVerifier(cfg.BotToken, cfg.AuthCacheSize, cfg.AuthCacheTTL)
	gameService := game.NewService(saves)

	srv := server.NewServer(cfg.Port, verifier, gameService, store)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		CloseStore: closeStore,
	})
}

// setupStore builds the configured save backend. It returns the
// repository, the connectivity check for readiness probes, and a close
// function for shutdown.
func setupStore(cfg *config.Config) (repository.Save, handler.Pinger, func(), error) {
	switch cfg.SaveBackend {
	case config.BackendSupabase:
		client, err := supabase.New(supabase.Config{
			ProjectURL: cfg.SupabaseURL,
			ServiceKey: cfg.SupabaseServiceKey,
			Table:      cfg.SupabaseTable,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return supabase.NewSaveRepository(client), client, nil, nil

	default:
		connString := cfg.GetDBConnString()
		if err := database.Migrate(context.Background(), connString); err != nil {
			return nil, nil, nil, err
		}
		pool, err := database.NewPool(connString, 10, 5*time.Minute, 30*time.Minute)
		if err != nil {
			return nil, nil, nil, err
		}
		return postgres.NewSaveRepository(pool), pool, pool.Close, nil
	}
}
