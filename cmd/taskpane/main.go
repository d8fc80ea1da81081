package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/server"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	// Get configuration from environment
	httpAddr := os.Getenv("HTTP_ADDR")
	config := server.TaskpaneConfig{
		ForwardToEmail: os.Getenv("FORWARD_TO_EMAIL"),
		ReportAPIURL:   os.Getenv("REPORT_API_URL"),
		DialogURL:      os.Getenv("DIALOG_URL"),
		GraphBaseURL:   os.Getenv("GRAPH_BASE_URL"),
	}

	if config.ForwardToEmail == "" {
		log.Fatal("FORWARD_TO_EMAIL is required")
	}
	if config.ReportAPIURL == "" {
		log.Fatal("REPORT_API_URL is required")
	}
	if config.DialogURL == "" {
		log.Fatal("DIALOG_URL is required")
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	httpServer := server.NewTaskpaneServer(config, httpClient)

	go func() {
		if err := httpServer.Start(httpAddr); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Taskpane service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down taskpane service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
