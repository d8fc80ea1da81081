package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/mocks"
)

func TestTriage(t *testing.T) {
	suite.Run(t, new(TriageSuite))
}

type TriageSuite struct {
	suite.Suite
	storage *mocks.ReportsStorage
	service *TriageService
}

func (suite *TriageSuite) SetupTest() {
	suite.storage = mocks.NewReportsStorage(suite.T())
	suite.service = NewTriageService(suite.storage)
}

func (suite *TriageSuite) TestRun_LoadsStoredReport() {
	ctx := context.Background()
	reportID := uuid.New()

	report := &domain.PhishReport{
		ID:            reportID,
		EmployeeEmail: "reporter@company.com",
		EmailMessage:  "Click this link!",
		ReceivedAt:    time.Now().Add(-time.Minute),
	}
	suite.storage.EXPECT().GetReport(mock.Anything, reportID).Return(report, nil)
	suite.storage.EXPECT().ListRecent(mock.Anything, repeatReporterWindow).
		Return([]domain.PhishReport{*report}, nil)

	err := suite.service.Run(ctx, domain.ReportReceivedMessage{
		ReportID:      reportID,
		EmployeeEmail: "reporter@company.com",
		ReceivedAt:    report.ReceivedAt,
	})
	suite.NoError(err)
}

func (suite *TriageSuite) TestRun_MissingReportFails() {
	ctx := context.Background()
	reportID := uuid.New()

	suite.storage.EXPECT().GetReport(mock.Anything, reportID).
		Return(nil, errors.New("no rows in result set"))

	err := suite.service.Run(ctx, domain.ReportReceivedMessage{ReportID: reportID})
	suite.Error(err)
	suite.Contains(err.Error(), reportID.String())
}

func (suite *TriageSuite) TestRun_ListFailureIsAdvisoryOnly() {
	ctx := context.Background()
	reportID := uuid.New()

	suite.storage.EXPECT().GetReport(mock.Anything, reportID).Return(&domain.PhishReport{
		ID:            reportID,
		EmployeeEmail: "reporter@company.com",
		ReceivedAt:    time.Now(),
	}, nil)
	suite.storage.EXPECT().ListRecent(mock.Anything, repeatReporterWindow).
		Return(nil, errors.New("connection reset"))

	err := suite.service.Run(ctx, domain.ReportReceivedMessage{
		ReportID:      reportID,
		EmployeeEmail: "reporter@company.com",
		ReceivedAt:    time.Now(),
	})
	suite.NoError(err)
}
