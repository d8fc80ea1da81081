package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/client"
	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/service"
	"github.com/LCOG/outlook-report-phishing/internal/handler"
	"github.com/LCOG/outlook-report-phishing/internal/infrastructure/amqp"
	"github.com/LCOG/outlook-report-phishing/internal/server"
	"github.com/LCOG/outlook-report-phishing/internal/storage"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	// Get configuration from environment
	amqpURL := os.Getenv("AMQP_URL")
	httpAddr := os.Getenv("HTTP_ADDR")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	numWorkers := envInt("TRIAGE_WORKERS", 4)
	queueSize := envInt("TRIAGE_QUEUE_SIZE", 64)

	// Create AMQP client
	amqpClient, err := amqp.NewClient(amqpURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()
	publisher := amqp.NewPublisher(amqpClient)
	notifier := client.NewAMQPNotifier(publisher)

	ctx := context.Background()
	db, err := storage.NewPostgresDB(ctx, dbHost, dbPort, dbUser, dbPassword, dbName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	reportsStorage := storage.NewReportsStorage(db)

	// Set up topology (exchanges, queues, bindings)
	topologyManager := amqp.NewTopologyManager(amqpClient)
	if err := topologyManager.Setup(); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	validate := validator.New()
	triageService := service.NewTriageService(reportsStorage)
	triageConsumer := handler.NewTriageConsumer(triageService, validate, numWorkers, queueSize)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	triageConsumer.Start(workerCtx)

	consumer := amqp.NewConsumer(amqpClient, triageConsumer)
	if err := consumer.Consume(workerCtx, domain.ReportTriageQueue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	// Create HTTP server
	httpServer := server.NewTrackerServer(reportsStorage, notifier, validate)
	go func() {
		if err := httpServer.Start(httpAddr); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Tracker service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down tracker service...")

	// Graceful shutdown with timeout; workers drain their queue first
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
	triageConsumer.Stop(shutdownCtx)
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}
