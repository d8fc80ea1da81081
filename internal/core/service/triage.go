package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

// repeatReporterWindow is how many recent reports are scanned when checking
// whether the same employee has been reporting repeatedly.
const repeatReporterWindow = 50

// TriageService processes stored-report events from the tracker queue. It
// verifies the report actually exists and emits the structured triage record
// downstream tooling scrapes.
type TriageService struct {
	storage port.ReportsStorage
}

func NewTriageService(storage port.ReportsStorage) *TriageService {
	return &TriageService{
		storage: storage,
	}
}

// Run handles a single report.received event. A missing report is an error
// so the delivery gets nacked rather than silently dropped.
func (s *TriageService) Run(ctx context.Context, message domain.ReportReceivedMessage) error {
	report, err := s.storage.GetReport(ctx, message.ReportID)
	if err != nil {
		return fmt.Errorf("failed to load report %s for triage: %w", message.ReportID, err)
	}

	repeatCount := s.countRecentFrom(ctx, report.EmployeeEmail)

	log.WithFields(log.Fields{
		"reportID":      report.ID,
		"employeeEmail": report.EmployeeEmail,
		"domain":        emailDomain(report.EmployeeEmail),
		"receivedAt":    report.ReceivedAt,
		"queueLatency":  time.Since(message.ReceivedAt).String(),
		"recentReports": repeatCount,
	}).Info("Phishing report triaged")

	return nil
}

// countRecentFrom counts how many of the latest reports came from the same
// employee. Failures degrade to zero; this is advisory data only.
func (s *TriageService) countRecentFrom(ctx context.Context, employeeEmail string) int {
	recent, err := s.storage.ListRecent(ctx, repeatReporterWindow)
	if err != nil {
		log.WithError(err).Warn("Unable to list recent reports for triage")
		return 0
	}

	count := 0
	for _, report := range recent {
		if strings.EqualFold(report.EmployeeEmail, employeeEmail) {
			count++
		}
	}
	return count
}

func emailDomain(address string) string {
	if at := strings.LastIndex(address, "@"); at >= 0 {
		return address[at+1:]
	}
	return ""
}
