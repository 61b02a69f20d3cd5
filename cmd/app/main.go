package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/TextRealm_Go/internal/bootstrap"
	"github.com/osse101/TextRealm_Go/internal/clock"
	"github.com/osse101/TextRealm_Go/internal/config"
	"github.com/osse101/TextRealm_Go/internal/engine"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/random"
	"github.com/osse101/TextRealm_Go/internal/server"
	"github.com/osse101/TextRealm_Go/internal/sse"
	"github.com/osse101/TextRealm_Go/internal/telemetry"
)

const shutdownTimeout = 15 * time.Second

// @title TextRealm API
// @version 1.0
// @description Turn-based text RPG progression and economy engine.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		_ = logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:    logger.DefaultServiceName,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Insecure:       cfg.Environment != logger.EnvironmentProduction,
	})
	if err != nil {
		return err
	}

	cat, cal, err := bootstrap.LoadGameContent(cfg)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus := bootstrap.InitializeEventSystem()
	feed := sse.NewHub()
	feed.Start()
	sse.Subscribe(bus, feed)

	svc := engine.NewService(store, cat, clock.Real{}, random.NewFactory(), engine.Options{
		Calendar:        cal,
		Bus:             bus,
		TracerProvider:  tp.TracerProvider,
		LeaderboardSize: cfg.LeaderboardCacheSize,
		LeaderboardTTL:  cfg.LeaderboardCacheTTL,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Feed:           feed,
	}, svc, cat, store)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Feed:      feed,
		Server:    srv,
		Telemetry: tp,
		Store:     store,
	})
	return runErr
}
