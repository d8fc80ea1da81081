package handler

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

// TrackingHTTPHandler accepts phishing reports from the add-in. Persistence
// must succeed; the downstream notification is best effort.
type TrackingHTTPHandler struct {
	storage  port.ReportsStorage
	notifier port.Notifier
	validate *validator.Validate
}

type PhishReportResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

func NewTrackingHTTPHandler(storage port.ReportsStorage, notifier port.Notifier, validate *validator.Validate) *TrackingHTTPHandler {
	return &TrackingHTTPHandler{
		storage:  storage,
		notifier: notifier,
		validate: validate,
	}
}

func (h *TrackingHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload domain.TrackingPayload

		if err := c.Bind(&payload); err != nil {
			log.WithError(err).Error("Failed to bind report payload")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}

		if err := h.validate.Struct(payload); err != nil {
			log.WithError(err).Error("Report payload validation failed")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}

		report := &domain.PhishReport{
			ID:            uuid.New(),
			EmployeeEmail: payload.EmployeeEmail,
			EmailMessage:  payload.EmailMessage,
			ReceivedAt:    time.Now().UTC(),
		}

		if err := h.storage.StoreReport(c.Request().Context(), report); err != nil {
			log.WithError(err).Error("Failed to store phishing report")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to store report",
			})
		}

		// The report is durable at this point; a broker outage only costs
		// the downstream notification.
		if err := h.notifier.NotifyReportReceived(c.Request().Context(), &domain.ReportReceivedMessage{
			ReportID:      report.ID,
			EmployeeEmail: report.EmployeeEmail,
			ReceivedAt:    report.ReceivedAt,
		}); err != nil {
			log.WithError(err).WithField("reportID", report.ID).Error("Failed to notify report received")
		}

		return c.JSON(http.StatusCreated, PhishReportResponse{
			ID:      report.ID,
			Message: "Report logged",
		})
	}
}
