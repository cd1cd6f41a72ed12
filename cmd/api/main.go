package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Pesokrava/tournament_registry/internal/config"
	"github.com/Pesokrava/tournament_registry/internal/delivery/events"
	httpDelivery "github.com/Pesokrava/tournament_registry/internal/delivery/http"
	"github.com/Pesokrava/tournament_registry/internal/delivery/http/handler"
	"github.com/Pesokrava/tournament_registry/internal/pkg/cache"
	"github.com/Pesokrava/tournament_registry/internal/pkg/database"
	"github.com/Pesokrava/tournament_registry/internal/pkg/i18n"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/metrics"
	cacheRepo "github.com/Pesokrava/tournament_registry/internal/repository/cache"
	"github.com/Pesokrava/tournament_registry/internal/repository/postgres"
	"github.com/Pesokrava/tournament_registry/internal/usecase"
	"github.com/Pesokrava/tournament_registry/internal/usecase/municipality"
	"github.com/Pesokrava/tournament_registry/internal/usecase/phonetype"
	"github.com/Pesokrava/tournament_registry/internal/usecase/profile"

	_ "github.com/Pesokrava/tournament_registry/docs"
)

// @title Tournament Registry API
// @version 1.0
// @description Registry of municipalities, access profiles and phone types with cached reads and change events.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/Pesokrava/tournament_registry
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Municipalities
// @tag.description Municipality management endpoints

// @tag.name Profiles
// @tag.description Access profile management endpoints

// @tag.name PhoneTypes
// @tag.description Phone type management endpoints

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	logger.SetGlobalLogger(appLogger)
	appLogger.Info("Starting Tournament Registry API...")

	appLogger.Info("Connecting to PostgreSQL...")
	db, err := database.WaitForDB(cfg, appLogger, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL successfully")

	appLogger.Info("Connecting to Redis...")
	redisClient, err := cache.WaitForRedis(cfg, appLogger, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis successfully")

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	if err := events.NewStreamConfig(publisher.JetStream(), appLogger).EnsureStream(context.Background()); err != nil {
		appLogger.Fatal("Failed to ensure stream", err)
	}

	appMetrics := metrics.New(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)

	entityCache := cacheRepo.NewRedisCache(redisClient, cfg.Cache.EntityTTL)
	notifier := usecase.NewNotifier(entityCache, publisher, appLogger)

	municipalityService := municipality.NewService(postgres.NewMunicipalityRepository(db), entityCache, notifier, appLogger)
	profileService := profile.NewService(postgres.NewProfileRepository(db), entityCache, notifier, appLogger)
	phoneTypeService := phonetype.NewService(postgres.NewPhoneTypeRepository(db), entityCache, notifier, appLogger)

	errs := handler.NewErrorResponder(appLogger, appMetrics, i18n.Parse(cfg.Locale.Default))

	router := httpDelivery.NewRouter(httpDelivery.Handlers{
		Municipality: handler.NewMunicipalityHandler(municipalityService, errs),
		Profile:      handler.NewProfileHandler(profileService, errs),
		PhoneType:    handler.NewPhoneTypeHandler(phoneTypeService, errs),
	}, appMetrics, prometheus.DefaultGatherer, cfg, appLogger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	// Let in-flight change events reach the broker before the connection drains
	notifier.Wait()

	appLogger.Info("Server stopped gracefully")
}
