package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Info().Msg("starting draft session engine")

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Warn().
			Err(err).
			Msg("could not load .env file; proceeding with existing environment")
	}

	config, err := loadConfig("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	sqlDB, err := setupDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup database")
	}
	defer sqlDB.Close()

	pool, err := setupPgxPool(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup pgx pool")
	}
	defer pool.Close()

	services, err := setupServices(sqlDB, pool, config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup services")
	}

	if services.outboxWorker != nil {
		if err := services.outboxWorker.Start(ctx); err != nil {
			log.Error().Err(err).Msg("failed to start outbox worker")
		}
		defer services.outboxWorker.Stop()
	}
	if services.outboxPublisher != nil {
		defer services.outboxPublisher.Close()
	}

	server := setupServer(services)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server terminated unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	if err := server.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server shutdown complete")
}
