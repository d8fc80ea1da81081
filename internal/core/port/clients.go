package port

import (
	"context"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
)

// GraphAPI is the typed mail REST surface, bound to one credential. Every
// call is a single attempt; retrying is the caller's decision.
type GraphAPI interface {
	GetUser(ctx context.Context) (*domain.UserProfile, error)
	GetMessage(ctx context.Context, id, queryParams string) (*domain.Message, error)
	ForwardMessage(ctx context.Context, id string, forward *domain.ForwardRequest) error
	MoveMessage(ctx context.Context, id, destinationID string) (*domain.Message, error)
}

// GraphFactory binds a freshly acquired credential to a GraphAPI. Credentials
// live for one operation, so clients are constructed per acquisition.
type GraphFactory interface {
	WithCredential(accessToken string) GraphAPI
}

// TrackingClient posts a report to the internal tracking endpoint.
type TrackingClient interface {
	LogReport(ctx context.Context, payload *domain.TrackingPayload) error
}

// Notifier announces stored reports to downstream security tooling.
type Notifier interface {
	NotifyReportReceived(ctx context.Context, message *domain.ReportReceivedMessage) error
}
