package service

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
	"github.com/LCOG/outlook-report-phishing/internal/core/service"
	"github.com/LCOG/outlook-report-phishing/internal/storage"
	"github.com/LCOG/outlook-report-phishing/test"
)

func TestTriage(t *testing.T) {
	suite.Run(t, new(TriageSuite))
}

type TriageSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	triageService    *service.TriageService
	storage          *storage.ReportsStorage
}

func (suite *TriageSuite) SetupSuite() {
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
		suite.triageService = service.NewTriageService(suite.storage)
	}
}

func (suite *TriageSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../../sql/create_tables.sql")
	test.ExecFile(suite.T(), suite.postgresDB, "../../sql/fixtures.sql")

	if suite.T().Failed() {
		suite.T().FailNow()
	}
}

func (suite *TriageSuite) TearDownSuite() {
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.postgresResource != nil {
		_ = suite.dockerPool.Purge(suite.postgresResource)
	}
}

func (suite *TriageSuite) TestRun_FixtureReport() {
	ctx := context.Background()

	reportID, _ := uuid.Parse("d290f1ee-6c54-4b01-90e6-d701748f0851")
	err := suite.triageService.Run(ctx, domain.ReportReceivedMessage{
		ReportID:      reportID,
		EmployeeEmail: "reporter@company.com",
		ReceivedAt:    time.Now().UTC(),
	})

	suite.NoError(err)
}

func (suite *TriageSuite) TestRun_UnknownReport() {
	ctx := context.Background()

	err := suite.triageService.Run(ctx, domain.ReportReceivedMessage{
		ReportID:      uuid.New(),
		EmployeeEmail: "reporter@company.com",
		ReceivedAt:    time.Now().UTC(),
	})

	suite.Error(err)
}
