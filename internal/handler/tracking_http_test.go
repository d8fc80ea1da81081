package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/mocks"
)

func TestTrackingHTTP(t *testing.T) {
	suite.Run(t, new(TrackingHTTPSuite))
}

type TrackingHTTPSuite struct {
	suite.Suite
	storage  *mocks.ReportsStorage
	notifier *mocks.Notifier
	handler  *TrackingHTTPHandler
	echo     *echo.Echo
}

func (suite *TrackingHTTPSuite) SetupTest() {
	suite.storage = mocks.NewReportsStorage(suite.T())
	suite.notifier = mocks.NewNotifier(suite.T())
	suite.handler = NewTrackingHTTPHandler(suite.storage, suite.notifier, validator.New())
	suite.echo = echo.New()
}

func (suite *TrackingHTTPSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/phishreport", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)

	suite.NoError(suite.handler.Handle()(c))
	return rec
}

func (suite *TrackingHTTPSuite) TestHandle_StoresAndNotifies() {
	suite.storage.EXPECT().StoreReport(mock.Anything, mock.MatchedBy(func(report *domain.PhishReport) bool {
		return report.EmployeeEmail == "reporter@company.com" &&
			report.EmailMessage == "Click this link!" &&
			!report.ReceivedAt.IsZero()
	})).Return(nil)
	suite.notifier.EXPECT().NotifyReportReceived(mock.Anything, mock.MatchedBy(func(message *domain.ReportReceivedMessage) bool {
		return message.EmployeeEmail == "reporter@company.com"
	})).Return(nil)

	rec := suite.post(`{"employee_email":"reporter@company.com","email_message":"Click this link!"}`)

	suite.Equal(http.StatusCreated, rec.Code)
	var resp PhishReportResponse
	suite.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("Report logged", resp.Message)
	suite.NotEmpty(resp.ID)
}

func (suite *TrackingHTTPSuite) TestHandle_RejectsInvalidEmail() {
	rec := suite.post(`{"employee_email":"not-an-email","email_message":"body"}`)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *TrackingHTTPSuite) TestHandle_RejectsMissingMessage() {
	rec := suite.post(`{"employee_email":"reporter@company.com"}`)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *TrackingHTTPSuite) TestHandle_StorageFailure() {
	suite.storage.EXPECT().StoreReport(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	rec := suite.post(`{"employee_email":"reporter@company.com","email_message":"body"}`)
	suite.Equal(http.StatusInternalServerError, rec.Code)
}

func (suite *TrackingHTTPSuite) TestHandle_NotifyFailureStillCreated() {
	suite.storage.EXPECT().StoreReport(mock.Anything, mock.Anything).Return(nil)
	suite.notifier.EXPECT().NotifyReportReceived(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	rec := suite.post(`{"employee_email":"reporter@company.com","email_message":"body"}`)
	suite.Equal(http.StatusCreated, rec.Code)
}
