package taskpane

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

// Controller drives the task pane presentation for one open message. It owns
// the pane state machine and pushes every transition to the presenter; all
// mail and identity work is delegated to the report service.
type Controller struct {
	reporter  port.Reporter
	tokens    port.TokenProvider
	presenter port.Presenter

	mu    sync.Mutex
	state domain.PaneState
}

func NewController(reporter port.Reporter, tokens port.TokenProvider, presenter port.Presenter) *Controller {
	return &Controller{
		reporter:  reporter,
		tokens:    tokens,
		presenter: presenter,
		state:     domain.PaneIdle,
	}
}

// State returns the current pane state.
func (c *Controller) State() domain.PaneState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SubmitReport runs one report invocation. A submission arriving while a
// previous one is still running is dropped, not queued.
func (c *Controller) SubmitReport(ctx context.Context, reportType, additionalInfo string) {
	if !c.transitionToReporting() {
		log.Warn("Report submission ignored, another report is in progress")
		return
	}

	outcome := c.reporter.Report(ctx, reportType, additionalInfo)
	if !outcome.Success {
		c.setState(domain.PaneError, outcome.Error)
		return
	}

	c.setState(domain.PaneSuccess, "")
}

// MoveToJunk moves the reported message to the junk folder and closes the
// pane. A failed move leaves the pane open showing the error.
func (c *Controller) MoveToJunk(ctx context.Context) {
	if err := c.reporter.MoveToJunk(ctx); err != nil {
		log.WithError(err).Error("Failed to move message to junk")
		c.setState(domain.PaneError, err.Error())
		return
	}

	c.presenter.ClosePane()
}

// LoadUserData resolves the signed-in user and pushes the profile to the
// pane header.
func (c *Controller) LoadUserData(ctx context.Context) {
	user, err := c.reporter.UserData(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load user data")
		c.setState(domain.PaneError, err.Error())
		return
	}

	c.presenter.ShowUserData(user)
}

// SignOut clears the active session through whichever channel acquired it.
func (c *Controller) SignOut(ctx context.Context) {
	if err := c.tokens.SignOut(ctx); err != nil {
		log.WithError(err).Error("Failed to sign out")
		c.setState(domain.PaneError, err.Error())
		return
	}

	c.setState(domain.PaneIdle, "")
}

// transitionToReporting claims the reporting state, refusing re-entry while
// a run is already in flight.
func (c *Controller) transitionToReporting() bool {
	c.mu.Lock()
	if c.state == domain.PaneReporting {
		c.mu.Unlock()
		return false
	}
	c.state = domain.PaneReporting
	c.mu.Unlock()

	c.presenter.ShowState(domain.PaneReporting, "")
	return true
}

func (c *Controller) setState(state domain.PaneState, detail string) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()

	c.presenter.ShowState(state, detail)
}
