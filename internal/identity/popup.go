package identity

import (
	"context"
	"errors"
	"sync"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

// AccountState tracks whether an account context is active. It is shared
// between the popup tier (which sets it) and the manager (which clears it on
// sign-out).
type AccountState struct {
	mu     sync.Mutex
	active bool
}

func NewAccountState() *AccountState {
	return &AccountState{}
}

func (s *AccountState) Present() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *AccountState) Set() {
	s.mu.Lock()
	s.active = true
	s.mu.Unlock()
}

func (s *AccountState) Clear() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// PopupStrategy acquires a credential through the interactive popup surface.
// When no account is active it forces an account-selection prompt; the
// selected account becomes the active one. A blocked popup falls through to
// the dialog tier; any other interactive failure is fatal.
type PopupStrategy struct {
	ui      port.AuthUI
	account *AccountState
}

func NewPopupStrategy(ui port.AuthUI, account *AccountState) *PopupStrategy {
	return &PopupStrategy{ui: ui, account: account}
}

func (s *PopupStrategy) Name() string { return TierPopup }

func (s *PopupStrategy) Acquire(ctx context.Context, scopes []string) Result {
	selectAccount := !s.account.Present()

	token, err := s.ui.AcquireInteractive(ctx, scopes, selectAccount)
	if err != nil {
		if errors.Is(err, domain.ErrPopupBlocked) {
			return fallthroughWith(err)
		}
		return fatal(err)
	}

	if selectAccount {
		s.account.Set()
	}
	return acquired(token)
}
