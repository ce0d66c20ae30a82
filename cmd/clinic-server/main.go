// Command clinic-server runs the clinic management API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dentalflow/clinic-system/internal/api"
	"github.com/dentalflow/clinic-system/internal/core/entity"
	"github.com/dentalflow/clinic-system/internal/core/ports"
	"github.com/dentalflow/clinic-system/internal/infrastructure/config"
	"github.com/dentalflow/clinic-system/internal/infrastructure/db/memory"
	mongostore "github.com/dentalflow/clinic-system/internal/infrastructure/db/mongo"
	redisstore "github.com/dentalflow/clinic-system/internal/infrastructure/db/redis"
	"github.com/dentalflow/clinic-system/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		store   ports.EntityStore
		mongoDB *mongo.Database
		rdb     *redis.Client
	)

	switch cfg.StoreDriver {
	case "memory":
		log.Warn().Msg("using in-memory store, data will not survive restarts")
		store = memory.NewStore()
	default:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		mongoDB = db
		store = mongostore.NewStore(db)

		if cfg.Redis.Addr != "" {
			rdb, err = redisstore.Connect(ctx, redisstore.Config{
				Addr: cfg.Redis.Addr,
				DB:   cfg.Redis.DB,
			})
			if err != nil {
				log.Fatal().Err(err).Msg("redis connection failed")
			}
			defer func() { _ = rdb.Close() }()
			store = redisstore.NewCachedStore(store, rdb, cfg.Redis.CacheTTL, log)
		}
	}

	registry := entity.NewRegistry(store, log)
	if err := registry.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	e := api.NewRouter(api.Dependencies{
		Registry: registry,
		Mongo:    mongoDB,
		Redis:    rdb,
		Log:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.StoreDriver).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
