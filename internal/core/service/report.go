package service

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

// Fallback error message for failures that carry no message of their own.
const unknownErrorMessage = "Unknown error occurred"

// ReportService runs the report-submission workflow: acquire a credential,
// resolve the reported message, log the report to the tracking backend, and
// forward the message to the security inbox with an audit comment. Tracking
// failures never block the forward; everything else aborts the run.
type ReportService struct {
	tokens         port.TokenProvider
	mailbox        port.Mailbox
	graphFor       port.GraphFactory
	tracking       port.TrackingClient
	forwardToEmail string
}

func NewReportService(
	tokens port.TokenProvider,
	mailbox port.Mailbox,
	graphFor port.GraphFactory,
	tracking port.TrackingClient,
	forwardToEmail string,
) *ReportService {
	return &ReportService{
		tokens:         tokens,
		mailbox:        mailbox,
		graphFor:       graphFor,
		tracking:       tracking,
		forwardToEmail: forwardToEmail,
	}
}

// Report runs one full report invocation for the message currently open in
// the pane. The returned outcome is terminal; nothing is retried here.
func (s *ReportService) Report(ctx context.Context, reportType, additionalInfo string) domain.ReportOutcome {
	accessToken, err := s.tokens.AcquireToken(ctx, domain.MailScopes)
	if err != nil {
		return failure(err)
	}

	messageID, err := s.mailbox.RestItemID(ctx)
	if err != nil {
		return failure(err)
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return failure(err)
	}

	return s.reportPhishing(ctx, s.graphFor.WithCredential(accessToken), domain.ReportRequest{
		MessageID:      messageID,
		User:           *user,
		ReportType:     reportType,
		AdditionalInfo: additionalInfo,
		ForwardToEmail: s.forwardToEmail,
	})
}

// reportPhishing performs the message-level steps against an already-bound
// mail client: fetch, best-effort tracking log, comment, forward.
func (s *ReportService) reportPhishing(ctx context.Context, graph port.GraphAPI, req domain.ReportRequest) domain.ReportOutcome {
	message, err := graph.GetMessage(ctx, req.MessageID, "?$select=subject,body")
	if err != nil {
		return failure(err)
	}

	// Non-blocking: a tracking backend outage must not stop the forward.
	s.LogReport(ctx, req.User.Mail, message)

	displayName := req.User.DisplayName
	if displayName == "" {
		displayName = "User"
	}

	forward := &domain.ForwardRequest{
		Comment: s.BuildForwardComment(displayName, req.ReportType, req.AdditionalInfo),
		ToRecipients: []domain.Recipient{
			{EmailAddress: domain.EmailAddress{Name: "Service Desk", Address: req.ForwardToEmail}},
		},
	}

	if err := graph.ForwardMessage(ctx, req.MessageID, forward); err != nil {
		log.WithError(err).Error("Failed to report phishing email")
		return failure(err)
	}

	return domain.ReportOutcome{Success: true}
}

// BuildForwardComment renders the audit comment attached to the forwarded
// message. Blank additional info leaves the base form untouched.
func (s *ReportService) BuildForwardComment(displayName, reportType, additionalInfo string) string {
	baseComment := fmt.Sprintf("%s forwarded a suspicious email (%s) via the Report Phish add-in.", displayName, reportType)

	if strings.TrimSpace(additionalInfo) != "" {
		return baseComment + "\n\nAdditional details: " + additionalInfo
	}
	return baseComment
}

// LogReport posts the report to the tracking backend. Failures are logged
// and swallowed; this step has weaker guarantees than the rest by design.
func (s *ReportService) LogReport(ctx context.Context, employeeEmail string, message *domain.Message) {
	content := "No content"
	if message != nil && message.Body != nil && message.Body.Content != "" {
		content = message.Body.Content
	}

	payload := &domain.TrackingPayload{
		EmployeeEmail: strings.ToLower(employeeEmail),
		EmailMessage:  content,
	}

	if err := s.tracking.LogReport(ctx, payload); err != nil {
		log.WithError(err).Error("Failed to log phishing report to backend")
	}
}

// MoveToJunk moves the reported message to the junk folder. It acquires a
// fresh mail-scoped credential; the one from the report run was discarded.
func (s *ReportService) MoveToJunk(ctx context.Context) error {
	accessToken, err := s.tokens.AcquireToken(ctx, domain.MailScopes)
	if err != nil {
		return err
	}

	messageID, err := s.mailbox.RestItemID(ctx)
	if err != nil {
		return err
	}

	if _, err := s.graphFor.WithCredential(accessToken).MoveMessage(ctx, messageID, domain.JunkFolderID); err != nil {
		return err
	}

	// Best effort; the move already succeeded.
	if err := s.mailbox.ShowNotification(ctx, "reportPhish", "Message moved to the Junk Email folder."); err != nil {
		log.WithError(err).Warn("Failed to show junk notification")
	}
	return nil
}

// UserData resolves the signed-in user's display name and address.
func (s *ReportService) UserData(ctx context.Context) (*domain.UserProfile, error) {
	return s.currentUser(ctx)
}

func (s *ReportService) currentUser(ctx context.Context) (*domain.UserProfile, error) {
	profileToken, err := s.tokens.AcquireToken(ctx, domain.ProfileScopes)
	if err != nil {
		return nil, err
	}
	return s.graphFor.WithCredential(profileToken).GetUser(ctx)
}

func failure(err error) domain.ReportOutcome {
	message := unknownErrorMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return domain.ReportOutcome{Success: false, Error: message}
}
