package port

import (
	"context"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
)

// TokenProvider acquires a bearer credential for the requested scopes,
// walking the silent / interactive / dialog-relay tiers in order.
type TokenProvider interface {
	AcquireToken(ctx context.Context, scopes []string) (string, error)
	SignOut(ctx context.Context) error
}

// Mailbox is the read-only view of the message under report, plus the host
// UI primitives the workflow needs.
type Mailbox interface {
	RestItemID(ctx context.Context) (string, error)
	EmailItem(ctx context.Context) (*domain.EmailItem, error)
	ShowNotification(ctx context.Context, key, message string) error
	DisplayDialog(ctx context.Context, url string, height, width int) (Dialog, error)
}

// Reporter is the report workflow as the pane controller sees it.
type Reporter interface {
	Report(ctx context.Context, reportType, additionalInfo string) domain.ReportOutcome
	MoveToJunk(ctx context.Context) error
	UserData(ctx context.Context) (*domain.UserProfile, error)
}

// TriageService consumes stored-report events on behalf of downstream
// security tooling.
type TriageService interface {
	Run(ctx context.Context, message domain.ReportReceivedMessage) error
}
