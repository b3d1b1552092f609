package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/focusflow/backend/internal/config"
	"github.com/focusflow/backend/internal/handler"
	"github.com/focusflow/backend/internal/logger"
	"github.com/focusflow/backend/internal/repository"
	"github.com/focusflow/backend/internal/router"
	"github.com/focusflow/backend/internal/server"
	"github.com/focusflow/backend/internal/service"
	"github.com/rs/zerolog"

	databasePkg "github.com/focusflow/backend/internal/database"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	loggerService, err := logger.NewLoggerService(cfg.Observability, &bootLog)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	log := logger.NewLogger(cfg.Observability, loggerService)

	// Migrations run at boot so a fresh environment is usable immediately.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := databasePkg.Migrate(ctx, log, cfg); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}
	cancel()

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)

	e := router.New(srv, handlers)
	srv.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server stopped unexpectedly")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
