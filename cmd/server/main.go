package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/light-bringer/storefront-service/internal/api"
	"github.com/light-bringer/storefront-service/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// .env is for local development; absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	config := loadConfig()

	log.Printf("Starting Storefront Service...")
	log.Printf("Spanner Database: %s", config.SpannerDB)
	log.Printf("HTTP Port: %s", config.HTTPPort)

	serviceOpts, err := services.NewServiceOptions(ctx, &services.Options{
		SpannerDB:    config.SpannerDB,
		RedisAddr:    config.RedisAddr,
		RedisPass:    config.RedisPass,
		RedisDB:      config.RedisDB,
		KafkaBrokers: config.KafkaBrokers,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	httpServer := &http.Server{
		Addr:              ":" + config.HTTPPort,
		Handler:           api.NewRouter(serviceOpts.Handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", config.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	return nil
}

// Config holds application configuration.
type Config struct {
	SpannerDB    string
	HTTPPort     string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	KafkaBrokers []string
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() Config {
	spannerDB := os.Getenv("SPANNER_DATABASE")
	if spannerDB == "" {
		// Default for local development with emulator
		spannerDB = "projects/test-project/instances/dev-instance/databases/storefront-db"
	}

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			redisDB = parsed
		}
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return Config{
		SpannerDB:    spannerDB,
		HTTPPort:     httpPort,
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:      redisDB,
		KafkaBrokers: brokers,
	}
}
