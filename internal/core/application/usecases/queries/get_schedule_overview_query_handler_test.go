package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fieldservice/internal/adapters/out/postgres"
	"fieldservice/internal/adapters/out/postgres/jobrepo"
	"fieldservice/internal/adapters/out/postgres/schedulerepo"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetScheduleOverviewQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetScheduleOverviewQueryHandler
	tenantID  kernel.UUID
	jobID     kernel.UUID
}

func (suite *GetScheduleOverviewQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.handler = queries.NewGetScheduleOverviewQueryHandler(db)
}

func (suite *GetScheduleOverviewQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetScheduleOverviewQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs, schedule_events CASCADE").Error
	suite.Require().NoError(err)
	suite.tenantID = kernel.NewUUID()
	suite.jobID = suite.saveJob()
}

func (suite *GetScheduleOverviewQueryHandlerTestSuite) saveJob() kernel.UUID {
	number, err := job.NewNumber(2026, 17)
	suite.Require().NoError(err)

	aggregate, err := job.NewJob(
		kernel.NewUUID(), suite.tenantID, kernel.NewUUID(),
		nil,
		number,
		"Replace water heater",
		3,
		4*time.Hour,
		nil, nil,
		"dispatcher",
	)
	suite.Require().NoError(err)

	repo := jobrepo.NewGormJobRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate.ID()
}

func (suite *GetScheduleOverviewQueryHandlerTestSuite) saveEvent(start time.Time, hours int, crewIDs []kernel.UUID) *schedule.Event {
	window, err := kernel.NewTimeWindow(start, start.Add(time.Duration(hours)*time.Hour))
	suite.Require().NoError(err)

	event, err := schedule.NewEvent(
		kernel.NewUUID(), suite.tenantID, suite.jobID,
		window,
		crewIDs,
		"bring ladder",
	)
	suite.Require().NoError(err)

	repo := schedulerepo.NewGormScheduleEventRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), event))
	return event
}

func (suite *GetScheduleOverviewQueryHandlerTestSuite) TestHandle_ReturnsEventsInRange() {
	day := time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC)
	crewID := kernel.NewUUID()

	morning := suite.saveEvent(day.Add(9*time.Hour), 2, []kernel.UUID{crewID})
	suite.saveEvent(day.AddDate(0, 0, 3).Add(9*time.Hour), 2, []kernel.UUID{crewID})

	query, err := queries.NewGetScheduleOverviewQuery(suite.tenantID, day, day.AddDate(0, 0, 1))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(morning.ID(), result[0].ID)
	suite.Equal(suite.jobID, result[0].JobID)
	suite.Equal("JOB-2026-0017", result[0].JobNumber)
	suite.Equal("Replace water heater", result[0].JobTitle)
	suite.Equal("Planned", result[0].Status)
	suite.Equal("bring ladder", result[0].Notes)
	suite.Require().Len(result[0].CrewMemberIDs, 1)
	suite.Equal(crewID, result[0].CrewMemberIDs[0])
}

func (suite *GetScheduleOverviewQueryHandlerTestSuite) TestHandle_HalfOpenBoundaries() {
	day := time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC)
	crewID := kernel.NewUUID()

	// Ends exactly at range start and starts exactly at range end:
	// neither overlaps under half-open semantics.
	suite.saveEvent(day.Add(-2*time.Hour), 2, []kernel.UUID{crewID})
	suite.saveEvent(day.AddDate(0, 0, 1), 2, []kernel.UUID{crewID})

	straddling := suite.saveEvent(day.Add(23*time.Hour), 2, []kernel.UUID{crewID})

	query, err := queries.NewGetScheduleOverviewQuery(suite.tenantID, day, day.AddDate(0, 0, 1))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(straddling.ID(), result[0].ID)
}

func (suite *GetScheduleOverviewQueryHandlerTestSuite) TestHandle_MultiCrewEvent() {
	day := time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC)
	crewA := kernel.NewUUID()
	crewB := kernel.NewUUID()

	suite.saveEvent(day.Add(9*time.Hour), 4, []kernel.UUID{crewA, crewB})

	query, err := queries.NewGetScheduleOverviewQuery(suite.tenantID, day, day.AddDate(0, 0, 1))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Len(result[0].CrewMemberIDs, 2)
}

func (suite *GetScheduleOverviewQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetScheduleOverviewQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetScheduleOverviewQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetScheduleOverviewQueryHandlerTestSuite))
}
