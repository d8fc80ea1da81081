package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportExchange           = "report"
	ReportTriageQueue        = "report.triage"
	RoutingKeyReportReceived = "report.received"
)

// TrackingPayload is the body posted to the internal tracking endpoint.
type TrackingPayload struct {
	EmployeeEmail string `json:"employee_email" validate:"required,email"`
	EmailMessage  string `json:"email_message" validate:"required"`
}

// ReportReceivedMessage is published once a phishing report has been stored.
type ReportReceivedMessage struct {
	ReportID      uuid.UUID `json:"report_id" validate:"required"`
	EmployeeEmail string    `json:"employee_email" validate:"required,email"`
	ReceivedAt    time.Time `json:"received_at" validate:"required"`
}

// AuthDialogResult is the relay payload posted by the fallback auth dialog
// back to its opener.
type AuthDialogResult struct {
	AccessToken string `json:"accessToken,omitempty"`
	Error       string `json:"error,omitempty"`
}

// DialogCloseSentinel is the literal relay message meaning "close without
// data".
const DialogCloseSentinel = "close"
