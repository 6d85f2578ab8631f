package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zamreal/property-system/internal/api"
	mongodb "github.com/zamreal/property-system/internal/infrastructure/db/mongo"
	redisdb "github.com/zamreal/property-system/internal/infrastructure/db/redis"
	"github.com/zamreal/property-system/internal/pkg/config"
	"github.com/zamreal/property-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Both backends are optional. Without Mongo only the built-in demo
	// directory serves logins and registration is disabled; without Redis
	// reminder dispatch skips the idempotency check.
	var db *mongo.Database
	if cfg.Mongo.URI != "" {
		client, database, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		db = database

		if err := mongodb.NewDirectoryRepository(db).SeedDemoAccounts(ctx); err != nil {
			log.Warn().Err(err).Msg("could not seed demo accounts")
		}
	} else {
		log.Info().Msg("MONGO_URI not set, using built-in credential directory only")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, dispatch dedup disabled")
		} else {
			defer func() { _ = client.Close() }()
			rdb = client
		}
	}

	e := api.NewRouter(ctx, cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
