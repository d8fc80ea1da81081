package mailbox

import (
	"context"
	"sync"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

// Accessor is a read-only adapter over the host mail client. It carries no
// state of its own beyond a lazily resolved REST id cache; the id of the
// message under report cannot change for the lifetime of one pane session.
type Accessor struct {
	host port.MailHost

	mu     sync.Mutex
	restID string
}

func NewAccessor(host port.MailHost) *Accessor {
	return &Accessor{host: host}
}

func (a *Accessor) Subject(ctx context.Context) (string, error) {
	subject, err := a.host.Subject(ctx)
	if err != nil {
		return "", &domain.MailboxReadError{Field: "subject", Cause: err}
	}
	return subject, nil
}

func (a *Accessor) From(ctx context.Context) (domain.EmailAddress, error) {
	from, err := a.host.From(ctx)
	if err != nil {
		return domain.EmailAddress{}, &domain.MailboxReadError{Field: "From field", Cause: err}
	}
	return from, nil
}

func (a *Accessor) ToRecipients(ctx context.Context) ([]domain.EmailAddress, error) {
	to, err := a.host.ToRecipients(ctx)
	if err != nil {
		return nil, &domain.MailboxReadError{Field: "To recipients", Cause: err}
	}
	return to, nil
}

func (a *Accessor) CcRecipients(ctx context.Context) ([]domain.EmailAddress, error) {
	cc, err := a.host.CcRecipients(ctx)
	if err != nil {
		return nil, &domain.MailboxReadError{Field: "Cc recipients", Cause: err}
	}
	return cc, nil
}

func (a *Accessor) Attachments(ctx context.Context) ([]domain.AttachmentDetails, error) {
	attachments, err := a.host.Attachments(ctx)
	if err != nil {
		return nil, &domain.MailboxReadError{Field: "attachments", Cause: err}
	}
	return attachments, nil
}

func (a *Accessor) InternetHeaders(ctx context.Context, names []string) (map[string]string, error) {
	headers, err := a.host.InternetHeaders(ctx, names)
	if err != nil {
		return nil, &domain.MailboxReadError{Field: "internet headers", Cause: err}
	}
	return headers, nil
}

// RestItemID returns the reported message's id in REST form. On Outlook for
// iOS the native id is already REST-compatible and is returned unchanged;
// every other host goes through the host conversion call with the fixed REST
// version. The result is cached for the session.
func (a *Accessor) RestItemID(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.restID != "" {
		return a.restID, nil
	}

	itemID, err := a.host.ItemID(ctx)
	if err != nil {
		return "", &domain.MailboxReadError{Field: "item id", Cause: err}
	}

	hostName, err := a.host.HostName(ctx)
	if err != nil {
		return "", &domain.MailboxReadError{Field: "host name", Cause: err}
	}

	if hostName == domain.HostOutlookIOS {
		a.restID = itemID
		return itemID, nil
	}

	restID, err := a.host.ConvertToRestID(ctx, itemID, domain.RestVersion)
	if err != nil {
		return "", &domain.ConversionError{Cause: err}
	}
	a.restID = restID
	return restID, nil
}

// EmailItem resolves the consolidated view of the current message.
func (a *Accessor) EmailItem(ctx context.Context) (*domain.EmailItem, error) {
	subject, err := a.Subject(ctx)
	if err != nil {
		return nil, err
	}
	from, err := a.From(ctx)
	if err != nil {
		return nil, err
	}
	to, err := a.ToRecipients(ctx)
	if err != nil {
		return nil, err
	}
	cc, err := a.CcRecipients(ctx)
	if err != nil {
		return nil, err
	}
	itemID, err := a.host.ItemID(ctx)
	if err != nil {
		return nil, &domain.MailboxReadError{Field: "item id", Cause: err}
	}

	return &domain.EmailItem{
		ItemID:  itemID,
		Subject: subject,
		From:    from,
		To:      to,
		Cc:      cc,
		// For read items the sender and the From field are the same for our
		// purposes.
		Sender: from,
	}, nil
}

// ShowNotification is best-effort; the host may reject it and nothing
// retries.
func (a *Accessor) ShowNotification(ctx context.Context, key, message string) error {
	if err := a.host.ShowNotification(ctx, key, message); err != nil {
		return &domain.NotificationError{Cause: err}
	}
	return nil
}

func (a *Accessor) DisplayDialog(ctx context.Context, url string, height, width int) (port.Dialog, error) {
	dialog, err := a.host.DisplayDialog(ctx, url, height, width)
	if err != nil {
		return nil, &domain.DialogError{Cause: err}
	}
	return dialog, nil
}
