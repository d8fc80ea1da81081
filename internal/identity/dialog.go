package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

const (
	dialogHeightPct = 60
	dialogWidthPct  = 30
)

// DialogStrategy is the last-resort tier: a same-origin dialog page runs the
// interactive flow out-of-process and relays the token back over the host
// message channel. Only one dialog may be open at a time; concurrent callers
// join the in-flight acquisition instead of opening a second dialog, and the
// memoization clears once the acquisition completes either way.
type DialogStrategy struct {
	mailbox   port.Mailbox
	dialogURL string

	group    singleflight.Group
	inflight atomic.Int32
}

func NewDialogStrategy(mailbox port.Mailbox, dialogURL string) *DialogStrategy {
	return &DialogStrategy{mailbox: mailbox, dialogURL: dialogURL}
}

func (s *DialogStrategy) Name() string { return TierDialog }

// InFlight reports whether a fallback dialog is currently open.
func (s *DialogStrategy) InFlight() bool {
	return s.inflight.Load() > 0
}

func (s *DialogStrategy) Acquire(ctx context.Context, _ []string) Result {
	// The dialog page carries its own scope configuration; the first caller's
	// context governs the shared acquisition.
	token, err, shared := s.group.Do("fallback", func() (any, error) {
		s.inflight.Add(1)
		defer s.inflight.Add(-1)
		return s.acquire(ctx)
	})
	if shared {
		log.Debug("Joined in-flight auth dialog instead of opening a second one")
	}
	if err != nil {
		return fatal(err)
	}
	return acquired(token.(string))
}

func (s *DialogStrategy) acquire(ctx context.Context) (string, error) {
	dialog, err := s.mailbox.DisplayDialog(ctx, s.dialogURL, dialogHeightPct, dialogWidthPct)
	if err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		_ = dialog.Close(context.Background())
		return "", ctx.Err()
	case event, ok := <-dialog.Events():
		if !ok || event.Closed {
			return "", domain.ErrDialogClosed
		}
		return s.handleRelay(ctx, dialog, event.Message)
	}
}

func (s *DialogStrategy) handleRelay(ctx context.Context, dialog port.Dialog, message string) (string, error) {
	if message == domain.DialogCloseSentinel {
		_ = dialog.Close(ctx)
		return "", domain.ErrDialogClosed
	}

	var result domain.AuthDialogResult
	if err := json.Unmarshal([]byte(message), &result); err != nil {
		_ = dialog.Close(ctx)
		return "", fmt.Errorf("malformed dialog relay payload: %w", err)
	}

	// The dialog is closed by the relaying code immediately after relaying.
	_ = dialog.Close(ctx)

	if result.AccessToken != "" {
		return result.AccessToken, nil
	}
	if result.Error != "" {
		return "", fmt.Errorf("%s", result.Error)
	}
	return "", fmt.Errorf("access token not found in dialog response")
}

// SignOut runs the logout flow through the same dialog mechanism. It is used
// when the fallback path was taken at least once, since no popup-capable
// session exists in that case.
func (s *DialogStrategy) SignOut(ctx context.Context) error {
	dialog, err := s.mailbox.DisplayDialog(ctx, s.dialogURL+"?logout=1", dialogHeightPct, dialogWidthPct)
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		_ = dialog.Close(context.Background())
		return ctx.Err()
	case <-dialog.Events():
		return dialog.Close(ctx)
	}
}
