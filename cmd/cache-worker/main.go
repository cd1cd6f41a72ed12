package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Pesokrava/tournament_registry/internal/config"
	"github.com/Pesokrava/tournament_registry/internal/delivery/events"
	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/cache"
	"github.com/Pesokrava/tournament_registry/internal/pkg/database"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/metrics"
	cacheRepo "github.com/Pesokrava/tournament_registry/internal/repository/cache"
	"github.com/Pesokrava/tournament_registry/internal/repository/postgres"
	"github.com/Pesokrava/tournament_registry/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting cache worker...")

	appLogger.Info("Connecting to PostgreSQL...")
	db, err := database.WaitForDB(cfg, appLogger, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	appLogger.Info("Connecting to Redis...")
	redisClient, err := cache.WaitForRedis(cfg, appLogger, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	refresher := worker.NewCacheRefresher(
		worker.Loaders{
			domain.ConceptMunicipality: worker.LoaderFor(postgres.NewMunicipalityRepository(db).GetByID),
			domain.ConceptProfile:      worker.LoaderFor(postgres.NewProfileRepository(db).GetByID),
			domain.ConceptPhoneType:    worker.LoaderFor(postgres.NewPhoneTypeRepository(db).GetByID),
		},
		cacheRepo.NewRedisCache(redisClient, cfg.Cache.EntityTTL),
		metrics.New(cfg.Metrics.Namespace, prometheus.DefaultRegisterer),
		cfg.Worker,
		appLogger,
	)

	appLogger.Info("Connecting to NATS JetStream...")
	nc, err := nats.Connect(cfg.NATS.URL, nats.Name("tournament-cache-worker"))
	if err != nil {
		appLogger.Fatal("Failed to connect to NATS", err)
	}
	defer nc.Close()

	js, err := nc.JetStream()
	if err != nil {
		appLogger.Fatal("Failed to create JetStream context", err)
	}

	appLogger.WithFields(map[string]any{
		"url": cfg.NATS.URL,
	}).Info("Connected to NATS JetStream")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	streamConfig := events.NewStreamConfig(js, appLogger)
	if err := streamConfig.EnsureStream(ctx); err != nil {
		appLogger.Fatal("Failed to ensure stream", err)
	}
	if err := streamConfig.EnsureConsumer(ctx); err != nil {
		appLogger.Fatal("Failed to ensure consumer", err)
	}

	consumer, err := events.NewPullConsumer(js, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to subscribe to JetStream consumer", err)
	}
	defer consumer.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.Run(ctx, refresher.HandleEvent)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	<-sigCh
	appLogger.Info("Received shutdown signal")

	stop()
	<-done

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := refresher.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Error during shutdown", err)
	}

	appLogger.Info("Cache worker stopped")
}
