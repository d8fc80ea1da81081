package taskpane

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/mocks"
)

func TestController(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

type ControllerSuite struct {
	suite.Suite
	reporter   *mocks.Reporter
	tokens     *mocks.TokenProvider
	presenter  *mocks.Presenter
	controller *Controller
}

func (suite *ControllerSuite) SetupTest() {
	suite.reporter = mocks.NewReporter(suite.T())
	suite.tokens = mocks.NewTokenProvider(suite.T())
	suite.presenter = mocks.NewPresenter(suite.T())
	suite.controller = NewController(suite.reporter, suite.tokens, suite.presenter)
}

func (suite *ControllerSuite) TestSubmitReport_Success() {
	ctx := context.Background()

	suite.presenter.EXPECT().ShowState(domain.PaneReporting, "").Once()
	suite.reporter.EXPECT().Report(mock.Anything, "phishing", "odd sender").
		Return(domain.ReportOutcome{Success: true}).Once()
	suite.presenter.EXPECT().ShowState(domain.PaneSuccess, "").Once()

	suite.controller.SubmitReport(ctx, "phishing", "odd sender")
	suite.Equal(domain.PaneSuccess, suite.controller.State())
}

func (suite *ControllerSuite) TestSubmitReport_Failure() {
	ctx := context.Background()

	suite.presenter.EXPECT().ShowState(domain.PaneReporting, "").Once()
	suite.reporter.EXPECT().Report(mock.Anything, "phishing", "").
		Return(domain.ReportOutcome{Success: false, Error: "Unknown error occurred"}).Once()
	suite.presenter.EXPECT().ShowState(domain.PaneError, "Unknown error occurred").Once()

	suite.controller.SubmitReport(ctx, "phishing", "")
	suite.Equal(domain.PaneError, suite.controller.State())
}

func (suite *ControllerSuite) TestSubmitReport_IgnoredWhileReporting() {
	ctx := context.Background()

	firstStarted := make(chan struct{})
	release := make(chan struct{})

	suite.presenter.EXPECT().ShowState(domain.PaneReporting, "").Once()
	suite.reporter.EXPECT().Report(mock.Anything, "phishing", "").RunAndReturn(
		func(context.Context, string, string) domain.ReportOutcome {
			close(firstStarted)
			<-release
			return domain.ReportOutcome{Success: true}
		}).Once()
	suite.presenter.EXPECT().ShowState(domain.PaneSuccess, "").Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		suite.controller.SubmitReport(ctx, "phishing", "")
	}()

	<-firstStarted
	// Second submission while the first is in flight must be a no-op.
	suite.controller.SubmitReport(ctx, "phishing", "")
	close(release)
	wg.Wait()

	suite.reporter.AssertNumberOfCalls(suite.T(), "Report", 1)
	suite.Equal(domain.PaneSuccess, suite.controller.State())
}

func (suite *ControllerSuite) TestSubmitReport_AllowedAfterFailure() {
	ctx := context.Background()

	suite.presenter.EXPECT().ShowState(domain.PaneReporting, "").Twice()
	suite.reporter.EXPECT().Report(mock.Anything, "phishing", "").
		Return(domain.ReportOutcome{Success: false, Error: "network unreachable"}).Once()
	suite.presenter.EXPECT().ShowState(domain.PaneError, "network unreachable").Once()

	suite.controller.SubmitReport(ctx, "phishing", "")

	suite.reporter.EXPECT().Report(mock.Anything, "phishing", "").
		Return(domain.ReportOutcome{Success: true}).Once()
	suite.presenter.EXPECT().ShowState(domain.PaneSuccess, "").Once()

	suite.controller.SubmitReport(ctx, "phishing", "")
	suite.Equal(domain.PaneSuccess, suite.controller.State())
}

func (suite *ControllerSuite) TestMoveToJunk_ClosesPane() {
	ctx := context.Background()

	suite.reporter.EXPECT().MoveToJunk(mock.Anything).Return(nil).Once()
	suite.presenter.EXPECT().ClosePane().Once()

	suite.controller.MoveToJunk(ctx)
}

func (suite *ControllerSuite) TestMoveToJunk_FailureKeepsPaneOpen() {
	ctx := context.Background()

	suite.reporter.EXPECT().MoveToJunk(mock.Anything).
		Return(errors.New("move failed")).Once()
	suite.presenter.EXPECT().ShowState(domain.PaneError, "move failed").Once()

	suite.controller.MoveToJunk(ctx)
	suite.Equal(domain.PaneError, suite.controller.State())
}

func (suite *ControllerSuite) TestLoadUserData() {
	ctx := context.Background()

	user := &domain.UserProfile{DisplayName: "Jane Reporter", Mail: "reporter@company.com"}
	suite.reporter.EXPECT().UserData(mock.Anything).Return(user, nil).Once()
	suite.presenter.EXPECT().ShowUserData(user).Once()

	suite.controller.LoadUserData(ctx)
}

func (suite *ControllerSuite) TestLoadUserData_Failure() {
	ctx := context.Background()

	suite.reporter.EXPECT().UserData(mock.Anything).
		Return(nil, errors.New("profile lookup failed")).Once()
	suite.presenter.EXPECT().ShowState(domain.PaneError, "profile lookup failed").Once()

	suite.controller.LoadUserData(ctx)
}

func (suite *ControllerSuite) TestSignOut() {
	ctx := context.Background()

	suite.tokens.EXPECT().SignOut(mock.Anything).Return(nil).Once()
	suite.presenter.EXPECT().ShowState(domain.PaneIdle, "").Once()

	suite.controller.SignOut(ctx)
	suite.Equal(domain.PaneIdle, suite.controller.State())
}

func (suite *ControllerSuite) TestSignOut_Failure() {
	ctx := context.Background()

	suite.tokens.EXPECT().SignOut(mock.Anything).
		Return(errors.New("dialog closed")).Once()
	suite.presenter.EXPECT().ShowState(domain.PaneError, "dialog closed").Once()

	suite.controller.SignOut(ctx)
}
