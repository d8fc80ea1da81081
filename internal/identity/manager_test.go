package identity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

type fakeAuthUI struct {
	mu            sync.Mutex
	token         string
	err           error
	calls         int
	selectAccount []bool
	logoutCalls   int
}

func (f *fakeAuthUI) AcquireInteractive(_ context.Context, _ []string, selectAccount bool) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.selectAccount = append(f.selectAccount, selectAccount)
	return f.token, f.err
}

func (f *fakeAuthUI) LogoutPopup(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	return nil
}

type fakeDialog struct {
	events chan port.DialogEvent
	closed int
	mu     sync.Mutex
}

func newFakeDialog() *fakeDialog {
	return &fakeDialog{events: make(chan port.DialogEvent, 1)}
}

func (d *fakeDialog) Events() <-chan port.DialogEvent { return d.events }

func (d *fakeDialog) Close(context.Context) error {
	d.mu.Lock()
	d.closed++
	d.mu.Unlock()
	return nil
}

type fakeMailbox struct {
	port.Mailbox

	mu           sync.Mutex
	dialog       *fakeDialog
	displayErr   error
	displayCalls int
	displayed    chan struct{}
	lastURL      string
}

func newFakeMailbox(dialog *fakeDialog) *fakeMailbox {
	return &fakeMailbox{dialog: dialog, displayed: make(chan struct{}, 8)}
}

func (f *fakeMailbox) DisplayDialog(_ context.Context, url string, _, _ int) (port.Dialog, error) {
	f.mu.Lock()
	f.displayCalls++
	f.lastURL = url
	f.mu.Unlock()
	f.displayed <- struct{}{}
	if f.displayErr != nil {
		return nil, f.displayErr
	}
	return f.dialog, nil
}

func staticSource(token string) SourceFor {
	return func([]string) oauth2.TokenSource {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	}
}

func noSession() SourceFor {
	return func([]string) oauth2.TokenSource { return nil }
}

func TestAcquireToken_SilentTierWins(t *testing.T) {
	ui := &fakeAuthUI{token: "popup-token"}
	manager := NewDefaultManager(staticSource("silent-token"), ui, newFakeMailbox(nil), "https://addin/dialog.html")

	token, err := manager.AcquireToken(context.Background(), domain.MailScopes)

	require.NoError(t, err)
	assert.Equal(t, "silent-token", token)
	assert.Zero(t, ui.calls, "popup tier must not run when silent succeeds")
}

func TestAcquireToken_FallsThroughToPopup(t *testing.T) {
	ui := &fakeAuthUI{token: "popup-token"}
	manager := NewDefaultManager(noSession(), ui, newFakeMailbox(nil), "https://addin/dialog.html")

	token, err := manager.AcquireToken(context.Background(), domain.MailScopes)

	require.NoError(t, err)
	assert.Equal(t, "popup-token", token)
	require.Equal(t, 1, ui.calls)
	assert.True(t, ui.selectAccount[0], "no active account forces account selection")

	// The returned account became active, so the next popup must not force
	// selection again.
	_, err = manager.AcquireToken(context.Background(), domain.MailScopes)
	require.NoError(t, err)
	assert.False(t, ui.selectAccount[1])
}

func TestAcquireToken_PopupFailureIsFatal(t *testing.T) {
	ui := &fakeAuthUI{err: errors.New("user cancelled")}
	mailbox := newFakeMailbox(newFakeDialog())
	manager := NewDefaultManager(noSession(), ui, mailbox, "https://addin/dialog.html")

	_, err := manager.AcquireToken(context.Background(), domain.MailScopes)

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, err.Error(), "user cancelled")
	assert.Zero(t, mailbox.displayCalls, "dialog tier must not run on a non-blocked popup failure")
}

func TestAcquireToken_BlockedPopupUsesDialogRelay(t *testing.T) {
	dialog := newFakeDialog()
	dialog.events <- port.DialogEvent{Message: `{"accessToken":"dialog-token"}`}
	ui := &fakeAuthUI{err: domain.ErrPopupBlocked}
	mailbox := newFakeMailbox(dialog)
	manager := NewDefaultManager(noSession(), ui, mailbox, "https://addin/dialog.html")

	token, err := manager.AcquireToken(context.Background(), domain.MailScopes)

	require.NoError(t, err)
	assert.Equal(t, "dialog-token", token)
	assert.Equal(t, 1, mailbox.displayCalls)
	assert.Equal(t, 1, dialog.closed, "dialog is closed right after relaying")
}

func TestAcquireToken_DialogRelayError(t *testing.T) {
	dialog := newFakeDialog()
	dialog.events <- port.DialogEvent{Message: `{"error":"interaction_required"}`}
	ui := &fakeAuthUI{err: domain.ErrPopupBlocked}
	manager := NewDefaultManager(noSession(), ui, newFakeMailbox(dialog), "https://addin/dialog.html")

	_, err := manager.AcquireToken(context.Background(), domain.MailScopes)

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, err.Error(), "interaction_required")
}

func TestAcquireToken_DialogClosedByUser(t *testing.T) {
	dialog := newFakeDialog()
	dialog.events <- port.DialogEvent{Closed: true}
	ui := &fakeAuthUI{err: domain.ErrPopupBlocked}
	manager := NewDefaultManager(noSession(), ui, newFakeMailbox(dialog), "https://addin/dialog.html")

	_, err := manager.AcquireToken(context.Background(), domain.MailScopes)

	require.ErrorIs(t, err, domain.ErrDialogClosed)
}

func TestDialogStrategy_ConcurrentCallersShareOneDialog(t *testing.T) {
	dialog := newFakeDialog()
	mailbox := newFakeMailbox(dialog)
	strategy := NewDialogStrategy(mailbox, "https://addin/dialog.html")

	results := make(chan Result, 2)
	go func() { results <- strategy.Acquire(context.Background(), domain.MailScopes) }()

	// Wait until the first caller has the dialog open, then pile on a second
	// caller before anything is relayed.
	select {
	case <-mailbox.displayed:
	case <-time.After(2 * time.Second):
		t.Fatal("first caller never opened the dialog")
	}
	go func() { results <- strategy.Acquire(context.Background(), domain.MailScopes) }()

	// Give the second caller a moment to join, then relay.
	time.Sleep(50 * time.Millisecond)
	dialog.events <- port.DialogEvent{Message: `{"accessToken":"shared-token"}`}

	for i := 0; i < 2; i++ {
		select {
		case result := <-results:
			require.Equal(t, OutcomeAcquired, result.Outcome)
			assert.Equal(t, "shared-token", result.Token)
		case <-time.After(2 * time.Second):
			t.Fatal("caller never finished")
		}
	}
	assert.Equal(t, 1, mailbox.displayCalls, "second caller must not open a second dialog")
	assert.False(t, strategy.InFlight(), "memoization clears after completion")
}

func TestSignOut_PopupPathByDefault(t *testing.T) {
	ui := &fakeAuthUI{token: "popup-token"}
	mailbox := newFakeMailbox(nil)
	manager := NewDefaultManager(noSession(), ui, mailbox, "https://addin/dialog.html")

	require.NoError(t, manager.SignOut(context.Background()))

	assert.Equal(t, 1, ui.logoutCalls)
	assert.Zero(t, mailbox.displayCalls)
}

func TestSignOut_DialogPathAfterFallback(t *testing.T) {
	dialog := newFakeDialog()
	dialog.events <- port.DialogEvent{Message: `{"accessToken":"dialog-token"}`}
	ui := &fakeAuthUI{err: domain.ErrPopupBlocked}
	mailbox := newFakeMailbox(dialog)
	manager := NewDefaultManager(noSession(), ui, mailbox, "https://addin/dialog.html")

	_, err := manager.AcquireToken(context.Background(), domain.MailScopes)
	require.NoError(t, err)

	logoutDialog := newFakeDialog()
	logoutDialog.events <- port.DialogEvent{Message: domain.DialogCloseSentinel}
	mailbox.dialog = logoutDialog

	require.NoError(t, manager.SignOut(context.Background()))

	assert.Zero(t, ui.logoutCalls, "fallback sessions cannot log out via popup")
	assert.Equal(t, "https://addin/dialog.html?logout=1", mailbox.lastURL)

	// After sign-out the fallback flag is cleared; the next sign-out should
	// use the popup again.
	require.NoError(t, manager.SignOut(context.Background()))
	assert.Equal(t, 1, ui.logoutCalls)
}

func TestSessionManager_CachesInteractiveToken(t *testing.T) {
	ui := &fakeAuthUI{token: "popup-token"}
	manager := NewSessionManager(ui, newFakeMailbox(nil), "https://addin/dialog.html")

	token, err := manager.AcquireToken(context.Background(), domain.MailScopes)
	require.NoError(t, err)
	assert.Equal(t, "popup-token", token)

	// A second acquisition for the same scopes resolves on the silent tier.
	token, err = manager.AcquireToken(context.Background(), domain.MailScopes)
	require.NoError(t, err)
	assert.Equal(t, "popup-token", token)
	assert.Equal(t, 1, ui.calls)

	// Different scopes miss the cache and go interactive again.
	_, err = manager.AcquireToken(context.Background(), domain.ProfileScopes)
	require.NoError(t, err)
	assert.Equal(t, 2, ui.calls)
}

func TestSessionManager_SignOutClearsCache(t *testing.T) {
	ui := &fakeAuthUI{token: "popup-token"}
	manager := NewSessionManager(ui, newFakeMailbox(nil), "https://addin/dialog.html")

	_, err := manager.AcquireToken(context.Background(), domain.MailScopes)
	require.NoError(t, err)
	require.NoError(t, manager.SignOut(context.Background()))

	_, err = manager.AcquireToken(context.Background(), domain.MailScopes)
	require.NoError(t, err)
	assert.Equal(t, 2, ui.calls)
}
