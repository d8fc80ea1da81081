package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/core/port"
	"github.com/LCOG/outlook-report-phishing/internal/handler"
)

// TrackerServer exposes the internal tracking API the add-in posts reports
// to.
type TrackerServer struct {
	echo *echo.Echo
}

func NewTrackerServer(
	storage port.ReportsStorage,
	notifier port.Notifier,
	validate *validator.Validate,
) *TrackerServer {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &TrackerServer{
		echo: e,
	}

	trackingHandler := handler.NewTrackingHTTPHandler(storage, notifier, validate)

	e.GET("/health", server.healthCheck)
	e.POST("/api/v1/phishreport", trackingHandler.Handle())

	return server
}

func (s *TrackerServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "tracker",
	})
}

func (s *TrackerServer) Start(address string) error {
	log.Infof("Starting tracker server on %s", address)
	return s.echo.Start(address)
}

func (s *TrackerServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down tracker server")
	return s.echo.Shutdown(ctx)
}
