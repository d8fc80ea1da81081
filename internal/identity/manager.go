package identity

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

// AccountManager walks the credential tiers in strict order: silent, then
// interactive popup, then dialog relay. A tier only runs if the previous one
// fell through. While a fallback dialog is open, every caller joins it
// instead of starting the tier walk from scratch.
type AccountManager struct {
	strategies []Strategy
	dialog     *DialogStrategy
	ui         port.AuthUI
	account    *AccountState
	cache      *SessionCache

	mu           sync.Mutex
	usedFallback bool
}

func NewAccountManager(
	strategies []Strategy,
	dialog *DialogStrategy,
	ui port.AuthUI,
	account *AccountState,
) *AccountManager {
	return &AccountManager{
		strategies: strategies,
		dialog:     dialog,
		ui:         ui,
		account:    account,
	}
}

// NewDefaultManager wires the standard three-tier ladder.
func NewDefaultManager(
	sourceFor SourceFor,
	ui port.AuthUI,
	mailbox port.Mailbox,
	dialogURL string,
) *AccountManager {
	account := NewAccountState()
	dialog := NewDialogStrategy(mailbox, dialogURL)
	strategies := []Strategy{
		NewSilentStrategy(sourceFor),
		NewPopupStrategy(ui, account),
		dialog,
	}
	return NewAccountManager(strategies, dialog, ui, account)
}

// NewSessionManager is the standard per-connection wiring: a fresh session
// cache feeds the silent tier and records every interactive success.
func NewSessionManager(ui port.AuthUI, mailbox port.Mailbox, dialogURL string) *AccountManager {
	cache := NewSessionCache()
	manager := NewDefaultManager(cache.SourceFor, ui, mailbox, dialogURL)
	manager.cache = cache
	return manager
}

// AcquireToken obtains a bearer credential scoped to the requested
// permission set, or fails with *domain.AuthError once every tier is
// exhausted.
func (m *AccountManager) AcquireToken(ctx context.Context, scopes []string) (string, error) {
	if m.dialog != nil && m.dialog.InFlight() {
		result := m.dialog.Acquire(ctx, scopes)
		return m.settle(m.dialog.Name(), scopes, result)
	}

	var lastErr error
	for _, strategy := range m.strategies {
		result := strategy.Acquire(ctx, scopes)
		switch result.Outcome {
		case OutcomeAcquired, OutcomeFatal:
			return m.settle(strategy.Name(), scopes, result)
		case OutcomeFallthrough:
			log.WithError(result.Err).Warnf("Unable to acquire token via %s tier", strategy.Name())
			lastErr = result.Err
		}
	}
	return "", &domain.AuthError{Cause: lastErr}
}

func (m *AccountManager) settle(tier string, scopes []string, result Result) (string, error) {
	if result.Outcome == OutcomeFatal {
		return "", &domain.AuthError{Cause: result.Err}
	}
	if tier == TierDialog {
		m.mu.Lock()
		m.usedFallback = true
		m.mu.Unlock()
	}
	if m.cache != nil && tier != TierSilent {
		m.cache.Put(scopes, result.Token)
	}
	log.Debugf("Acquired token via %s tier", tier)
	return result.Token, nil
}

// SignOut ends the session. If the dialog fallback was ever used there is no
// popup-capable session, so sign-out goes through the same dialog mechanism;
// otherwise the standard popup logout runs.
func (m *AccountManager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	usedFallback := m.usedFallback
	m.mu.Unlock()

	var err error
	if usedFallback {
		err = m.dialog.SignOut(ctx)
	} else {
		err = m.ui.LogoutPopup(ctx)
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.usedFallback = false
	m.mu.Unlock()
	if m.cache != nil {
		m.cache.Clear()
	}
	m.account.Clear()
	return nil
}
