package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/avatarbridge/internal/adapter/httpserver"
	"github.com/pscheid92/avatarbridge/internal/app"
	"github.com/pscheid92/avatarbridge/internal/assets"
	"github.com/pscheid92/avatarbridge/internal/broadcast"
	"github.com/pscheid92/avatarbridge/internal/linebank"
	"github.com/pscheid92/avatarbridge/internal/platform/config"
	"github.com/pscheid92/avatarbridge/internal/platform/logging"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupBank() *linebank.Bank {
	bank, err := linebank.New(linebank.DefaultEntries())
	if err != nil {
		slog.Error("Failed to build line bank", "error", err)
		os.Exit(1)
	}
	return bank
}

func setupAssets(cfg *config.Config) *assets.Store {
	store, err := assets.NewStore(cfg.AudioDir, cfg.PublicBase)
	if err != nil {
		slog.Error("Failed to prepare asset directory", "error", err)
		os.Exit(1)
	}
	return store
}

func runGracefulShutdown(srv *httpserver.Server, broadcaster *broadcast.Broadcaster) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		broadcaster.Stop()

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	bank := setupBank()
	assetStore := setupAssets(cfg)
	slog.Info("Line bank loaded", "count", bank.Len(), "lines", bank.IDs())

	broadcaster := broadcast.NewBroadcaster(clock, cfg.MaxViewerConnections)

	appSvc := app.NewService(bank, assetStore, broadcaster, cfg.VerifySignature, cfg.RetellAPIKey)
	if !cfg.VerifySignature {
		slog.Warn("Webhook signature verification is disabled")
	}

	healthChecks := []httpserver.HealthCheck{
		{Name: "asset_dir", Check: func(context.Context) error {
			if _, err := os.Stat(assetStore.Dir()); err != nil {
				return fmt.Errorf("asset directory unavailable: %w", err)
			}
			return nil
		}},
	}

	srv := httpserver.NewServer(cfg, appSvc, broadcaster, assetStore.Dir(), healthChecks)

	done := runGracefulShutdown(srv, broadcaster)

	slog.Info("Avatar bridge running", "public_base", cfg.PublicBase)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
