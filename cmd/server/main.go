package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petclinic-micro/service-customers/internal/application"
	"github.com/petclinic-micro/service-customers/internal/client"
	"github.com/petclinic-micro/service-customers/internal/config"
	"github.com/petclinic-micro/service-customers/internal/database"
	"github.com/petclinic-micro/service-customers/internal/events"
	"github.com/petclinic-micro/service-customers/internal/handler"
	"github.com/petclinic-micro/service-customers/internal/health"
	"github.com/petclinic-micro/service-customers/internal/logger"
	"github.com/petclinic-micro/service-customers/internal/middleware"
	"github.com/petclinic-micro/service-customers/internal/repository"
)

const serviceName = "service-customers"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-customers",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.OwnerModel{}, &repository.PetTypeModel{}, &repository.PetModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(database.URL(cfg.DBConfig), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize Kafka producer
	producer := events.NewPublisher(cfg.KafkaBrokers, serviceName, log)
	defer func() { _ = producer.Close() }()

	// Initialize repositories
	ownerRepo := repository.NewGormOwnerRepository(db)
	petRepo := repository.NewGormPetRepository(db)

	// Initialize the third-party observability client, if configured
	var thirdParty application.ExternalClient
	if cfg.ThirdPartyURL != "" {
		thirdParty = client.NewThirdPartyClient(cfg.ThirdPartyURL)
	}

	// Initialize application services
	ownerService := application.NewOwnerService(ownerRepo, thirdParty, producer, log)
	petService := application.NewPetService(petRepo, ownerRepo, producer, log)

	// Initialize HTTP handlers
	ownerHandler := handler.NewOwnerHandler(ownerService)
	petHandler := handler.NewPetHandler(petService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))

	// Register health check routes
	healthHandler := health.NewHandler(db, serviceName)
	healthHandler.RegisterRoutes(router)

	// Register routes
	ownerHandler.RegisterRoutes(&router.RouterGroup)
	petHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-customers...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-customers stopped")
}
