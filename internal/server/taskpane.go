package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/client"
	"github.com/LCOG/outlook-report-phishing/internal/core/service"
	"github.com/LCOG/outlook-report-phishing/internal/hostbridge"
	"github.com/LCOG/outlook-report-phishing/internal/identity"
	"github.com/LCOG/outlook-report-phishing/internal/mailbox"
	"github.com/LCOG/outlook-report-phishing/internal/taskpane"
)

// TaskpaneConfig carries the deployment settings one pane session needs.
type TaskpaneConfig struct {
	ForwardToEmail string
	ReportAPIURL   string
	DialogURL      string
	GraphBaseURL   string
}

// TaskpaneServer terminates the pane websocket and assembles one full
// workflow stack per connection: host bridge, mailbox accessor, credential
// tiers, report service, and pane controller.
type TaskpaneServer struct {
	echo       *echo.Echo
	config     TaskpaneConfig
	httpClient *http.Client
	upgrader   websocket.Upgrader
}

func NewTaskpaneServer(config TaskpaneConfig, httpClient *http.Client) *TaskpaneServer {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	if config.GraphBaseURL == "" {
		config.GraphBaseURL = client.DefaultGraphBaseURL
	}

	server := &TaskpaneServer{
		echo:       e,
		config:     config,
		httpClient: httpClient,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The pane is served from the add-in origin, not ours.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	e.GET("/health", server.healthCheck)
	e.GET("/ws", server.handleSession)

	return server
}

func (s *TaskpaneServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "taskpane",
	})
}

// handleSession upgrades the pane connection and runs its bridge until the
// pane goes away. Every session gets its own credential state.
func (s *TaskpaneServer) handleSession(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.WithError(err).Error("Websocket upgrade failed")
		return err
	}

	tracking, err := client.NewTrackingClient(s.httpClient, s.config.ReportAPIURL)
	if err != nil {
		_ = conn.Close()
		return err
	}

	bridge := hostbridge.NewBridge(conn)
	accessor := mailbox.NewAccessor(bridge)
	manager := identity.NewSessionManager(bridge, accessor, s.config.DialogURL)
	graphFactory := client.NewGraphFactory(s.httpClient, s.config.GraphBaseURL)
	reporter := service.NewReportService(manager, accessor, graphFactory, tracking, s.config.ForwardToEmail)
	controller := taskpane.NewController(reporter, manager, bridge)

	log.WithField("remote", c.Request().RemoteAddr).Info("Pane session started")
	err = bridge.Run(c.Request().Context(), controller)
	log.WithField("remote", c.Request().RemoteAddr).Info("Pane session ended")
	return err
}

func (s *TaskpaneServer) Start(address string) error {
	log.Infof("Starting taskpane server on %s", address)
	return s.echo.Start(address)
}

func (s *TaskpaneServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down taskpane server")
	return s.echo.Shutdown(ctx)
}
