package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fieldservice/internal/adapters/out/postgres"
	"fieldservice/internal/adapters/out/postgres/jobrepo"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListJobsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListJobsQueryHandler
	tenantID  kernel.UUID
}

func (suite *ListJobsQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewListJobsQueryHandler(db)
}

func (suite *ListJobsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListJobsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs CASCADE").Error
	suite.Require().NoError(err)
	suite.tenantID = kernel.NewUUID()
}

func (suite *ListJobsQueryHandlerTestSuite) saveJob(title string, priority, sequence int) *job.Job {
	number, err := job.NewNumber(2026, sequence)
	suite.Require().NoError(err)

	aggregate, err := job.NewJob(
		kernel.NewUUID(), suite.tenantID, kernel.NewUUID(),
		nil,
		number,
		title,
		priority,
		2*time.Hour,
		nil, nil,
		"dispatcher",
	)
	suite.Require().NoError(err)

	repo := jobrepo.NewGormJobRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *ListJobsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListJobsQuery(suite.tenantID, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListJobsQueryHandlerTestSuite) TestHandle_OrdersByPriorityDescending() {
	low := suite.saveJob("Seasonal tune-up", 1, 1)
	high := suite.saveJob("Burst pipe", 5, 2)
	mid := suite.saveJob("Water heater swap", 3, 3)

	query, err := queries.NewListJobsQuery(suite.tenantID, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(high.ID(), result[0].ID)
	suite.Equal(mid.ID(), result[1].ID)
	suite.Equal(low.ID(), result[2].ID)
	suite.Equal("Burst pipe", result[0].Title)
	suite.Equal("JOB-2026-0002", result[0].Number)
	suite.Equal("Planned", result[0].Status)
	suite.Nil(result[0].ScheduledStart)
}

func (suite *ListJobsQueryHandlerTestSuite) TestHandle_StatusFilter() {
	planned := suite.saveJob("Install sump pump", 2, 1)
	scheduled := suite.saveJob("Replace thermostat", 2, 2)

	window, err := kernel.NewTimeWindow(
		time.Date(2026, time.April, 6, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 6, 12, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	_, err = scheduled.MarkScheduled(window, "dispatcher")
	suite.Require().NoError(err)

	repo := jobrepo.NewGormJobRepository(suite.db)
	suite.Require().NoError(repo.Update(context.Background(), scheduled))

	status := job.StatusScheduled
	query, err := queries.NewListJobsQuery(suite.tenantID, &status)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(scheduled.ID(), result[0].ID)
	suite.Equal("Scheduled", result[0].Status)
	suite.Require().NotNil(result[0].ScheduledStart)
	suite.True(window.Start().Equal(*result[0].ScheduledStart))
	suite.NotEqual(planned.ID(), result[0].ID)
}

func (suite *ListJobsQueryHandlerTestSuite) TestHandle_TenantIsolation() {
	suite.saveJob("Rewire panel", 2, 1)

	query, err := queries.NewListJobsQuery(kernel.NewUUID(), nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *ListJobsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListJobsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestListJobsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListJobsQueryHandlerTestSuite))
}
