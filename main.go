package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studio-service/config"
	"studio-service/database"
	"studio-service/kafka"
	"studio-service/logger"
	"studio-service/routes"
	"studio-service/services"
)

func main() {

	// Load environment configuration
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer func() { _ = logger.Log.Sync() }()

	// Session store: redis when configured, in-process memory otherwise
	var store database.SessionStore
	if cfg.RedisURL != "" {
		redisClient := database.NewRedisClient(cfg.RedisURL)
		store = database.NewRedisSessionStore(redisClient, cfg.SessionTTL)
	} else {
		memStore := database.NewMemorySessionStore(cfg.SessionTTL)
		defer memStore.Stop()
		store = memStore
		logger.Log.Info("Using in-memory session store")
	}

	// Kafka producer is optional; without brokers the confirmed event is
	// only logged
	var producer services.BookingEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Fatalf("failed to create Kafka producer: %v", err)
		}
		defer p.Close()
		producer = p
	}

	bookingService := services.NewBookingService(
		store, producer, cfg.BookingConfirmDelay, cfg.CelebrationTTL, logger.Log,
	)
	defer bookingService.Close()

	// Initialize Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Register routes
	routes.RegisterRoutes(router, store, bookingService, cfg)

	// Start HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	go func() {
		logger.Log.Info("Studio Service is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	logger.Log.Info("Server shutdown complete")
}
