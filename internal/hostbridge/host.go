package hostbridge

import (
	"context"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

// The bridge is the concrete MailHost, AuthUI, and Presenter for one pane
// connection.
var (
	_ port.MailHost  = (*Bridge)(nil)
	_ port.AuthUI    = (*Bridge)(nil)
	_ port.Presenter = (*Bridge)(nil)
)

func (b *Bridge) Subject(ctx context.Context) (string, error) {
	var subject string
	err := b.call(ctx, opSubject, nil, &subject)
	return subject, err
}

func (b *Bridge) From(ctx context.Context) (domain.EmailAddress, error) {
	var from domain.EmailAddress
	err := b.call(ctx, opFrom, nil, &from)
	return from, err
}

func (b *Bridge) ToRecipients(ctx context.Context) ([]domain.EmailAddress, error) {
	var recipients []domain.EmailAddress
	err := b.call(ctx, opToRecipients, nil, &recipients)
	return recipients, err
}

func (b *Bridge) CcRecipients(ctx context.Context) ([]domain.EmailAddress, error) {
	var recipients []domain.EmailAddress
	err := b.call(ctx, opCcRecipients, nil, &recipients)
	return recipients, err
}

func (b *Bridge) Attachments(ctx context.Context) ([]domain.AttachmentDetails, error) {
	var attachments []domain.AttachmentDetails
	err := b.call(ctx, opAttachments, nil, &attachments)
	return attachments, err
}

func (b *Bridge) InternetHeaders(ctx context.Context, names []string) (map[string]string, error) {
	var headers map[string]string
	err := b.call(ctx, opInternetHeaders, map[string]any{"names": names}, &headers)
	return headers, err
}

func (b *Bridge) ItemID(ctx context.Context) (string, error) {
	var id string
	err := b.call(ctx, opItemID, nil, &id)
	return id, err
}

func (b *Bridge) HostName(ctx context.Context) (string, error) {
	var name string
	err := b.call(ctx, opHostName, nil, &name)
	return name, err
}

func (b *Bridge) ConvertToRestID(ctx context.Context, itemID, restVersion string) (string, error) {
	var restID string
	err := b.call(ctx, opConvertToRestID, map[string]any{
		"itemId":      itemID,
		"restVersion": restVersion,
	}, &restID)
	return restID, err
}

func (b *Bridge) ShowNotification(ctx context.Context, key, message string) error {
	return b.call(ctx, opShowNotification, map[string]any{
		"key":     key,
		"message": message,
	}, nil)
}

func (b *Bridge) AcquireInteractive(ctx context.Context, scopes []string, selectAccount bool) (string, error) {
	var token string
	err := b.call(ctx, opAcquireInteractive, map[string]any{
		"scopes":        scopes,
		"selectAccount": selectAccount,
	}, &token)
	return token, err
}

func (b *Bridge) LogoutPopup(ctx context.Context) error {
	return b.call(ctx, opLogoutPopup, nil, nil)
}

func (b *Bridge) ShowState(state domain.PaneState, detail string) {
	b.push(frame{Type: frameState, State: state.String(), Detail: detail})
}

func (b *Bridge) ShowUserData(user *domain.UserProfile) {
	b.push(frame{Type: frameUserData, User: user})
}

func (b *Bridge) ClosePane() {
	b.push(frame{Type: frameClosePane})
}
