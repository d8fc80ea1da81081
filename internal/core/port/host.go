package port

import (
	"context"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
)

// MailHost is the capability surface of the hosting mail client. Every
// method corresponds to an asynchronous host call; implementations must
// resolve exactly once and report domain.ErrUnsupported when the host does
// not implement the operation at all, as distinct from the operation failing.
type MailHost interface {
	Subject(ctx context.Context) (string, error)
	From(ctx context.Context) (domain.EmailAddress, error)
	ToRecipients(ctx context.Context) ([]domain.EmailAddress, error)
	CcRecipients(ctx context.Context) ([]domain.EmailAddress, error)
	Attachments(ctx context.Context) ([]domain.AttachmentDetails, error)
	InternetHeaders(ctx context.Context, names []string) (map[string]string, error)

	ItemID(ctx context.Context) (string, error)
	HostName(ctx context.Context) (string, error)
	ConvertToRestID(ctx context.Context, itemID, restVersion string) (string, error)

	ShowNotification(ctx context.Context, key, message string) error
	DisplayDialog(ctx context.Context, url string, height, width int) (Dialog, error)
}

// Dialog is an open host dialog. Events delivers relay messages and the
// user-closed event; the channel is closed once the dialog is gone.
type Dialog interface {
	Events() <-chan DialogEvent
	Close(ctx context.Context) error
}

type DialogEvent struct {
	// Message is the relayed payload. Empty when Closed is set.
	Message string
	// Closed reports that the user dismissed the dialog before it relayed
	// anything.
	Closed bool
}

// AuthUI is the interactive credential surface (the popup tier). A popup
// that cannot be presented at all is reported as domain.ErrPopupBlocked.
type AuthUI interface {
	AcquireInteractive(ctx context.Context, scopes []string, selectAccount bool) (string, error)
	LogoutPopup(ctx context.Context) error
}

// Presenter renders workflow outcomes back into the task pane. The pane owns
// the actual widgets; the controller only pushes state.
type Presenter interface {
	ShowState(state domain.PaneState, detail string)
	ShowUserData(user *domain.UserProfile)
	ClosePane()
}
