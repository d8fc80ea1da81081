package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/storage"
	"github.com/LCOG/outlook-report-phishing/test"
)

func TestReports(t *testing.T) {
	suite.Run(t, new(ReportsSuite))
}

type ReportsSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	storage          *storage.ReportsStorage
}

func (suite *ReportsSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	db, port, postgresResource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = postgresResource

	if !suite.T().Failed() {
		ctx := context.Background()
		postgresDB, err := storage.NewPostgresDB(ctx, test.PostgresHost, port, test.PostgresUser, test.PostgresPassword, test.PostgresDB)
		if err != nil {
			suite.T().Fatalf("Failed to connect to database: %v", err)
		}

		suite.storage = storage.NewReportsStorage(postgresDB)
	}
}

func (suite *ReportsSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/create_tables.sql")
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/fixtures.sql")

	if suite.T().Failed() {
		suite.TearDownSuite()
		suite.T().FailNow()
	}
}

func (suite *ReportsSuite) TearDownSuite() {
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil {
		if suite.postgresResource != nil {
			_ = suite.dockerPool.Purge(suite.postgresResource)
		}
	}
}

func (suite *ReportsSuite) TestGetReport_OK() {
	ctx := context.Background()
	reportID, _ := uuid.Parse("d290f1ee-6c54-4b01-90e6-d701748f0851")

	report, err := suite.storage.GetReport(ctx, reportID)

	suite.NoError(err)
	suite.Equal("reporter@company.com", report.EmployeeEmail)
	suite.Equal("Your mailbox is full, click here to upgrade.", report.EmailMessage)
}

func (suite *ReportsSuite) TestGetReport_NotFound() {
	ctx := context.Background()

	_, err := suite.storage.GetReport(ctx, uuid.New())

	suite.Error(err)
}

func (suite *ReportsSuite) TestStoreReport_RoundTrip() {
	ctx := context.Background()

	report := &domain.PhishReport{
		ID:            uuid.New(),
		EmployeeEmail: "third@company.com",
		EmailMessage:  "Re: urgent wire transfer",
		ReceivedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	suite.NoError(suite.storage.StoreReport(ctx, report))

	stored, err := suite.storage.GetReport(ctx, report.ID)
	suite.NoError(err)
	suite.Equal(report.EmployeeEmail, stored.EmployeeEmail)
	suite.Equal(report.EmailMessage, stored.EmailMessage)
	suite.WithinDuration(report.ReceivedAt, stored.ReceivedAt, time.Second)
}

func (suite *ReportsSuite) TestListRecent_NewestFirst() {
	ctx := context.Background()

	newest := &domain.PhishReport{
		ID:            uuid.New(),
		EmployeeEmail: "reporter@company.com",
		EmailMessage:  "Password expiry notice",
		ReceivedAt:    time.Now().UTC(),
	}
	suite.NoError(suite.storage.StoreReport(ctx, newest))

	reports, err := suite.storage.ListRecent(ctx, 2)
	suite.NoError(err)
	suite.Len(reports, 2)
	suite.Equal(newest.ID, reports[0].ID)
}
