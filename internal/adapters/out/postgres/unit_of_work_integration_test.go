package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fieldservice/internal/adapters/out/postgres"
	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work and the
// repositories it hands out against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	tenantID  kernel.UUID
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		jobs, job_tasks, job_status_logs, job_sequences, job_dependencies,
		crew_members, crew_availability,
		schedule_events, schedule_event_status_logs, time_entries,
		automation_triggers, automation_dispatches`).Error
	suite.Require().NoError(err)
	suite.tenantID = kernel.NewUUID()
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createJob(title string, priority int) *job.Job {
	number, err := job.NewNumber(2026, 1+priority)
	suite.Require().NoError(err)

	aggregate, err := job.NewJob(
		kernel.NewUUID(), suite.tenantID, kernel.NewUUID(),
		nil,
		number,
		title,
		priority,
		4*time.Hour,
		[]string{"plumbing"}, nil,
		"dispatcher",
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) createCrewMember(name string) *crew.CrewMember {
	member, err := crew.NewCrewMember(
		kernel.NewUUID(), suite.tenantID,
		name,
		[]string{"plumbing", "electrical"},
		8, 40,
	)
	suite.Require().NoError(err)
	return member
}

func (suite *UnitOfWorkIntegrationTestSuite) window(dayOffset, hour, hours int) kernel.TimeWindow {
	start := time.Date(2026, time.April, 6+dayOffset, hour, 0, 0, 0, time.UTC)
	window, err := kernel.NewTimeWindow(start, start.Add(time.Duration(hours)*time.Hour))
	suite.Require().NoError(err)
	return window
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "repeated begin must be a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestJobRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := suite.createJob("Replace water heater", 3)

	task1, err := job.NewTask(kernel.NewUUID(), "Drain old tank", time.Hour, 0)
	suite.Require().NoError(err)
	task2, err := job.NewTask(kernel.NewUUID(), "Install new unit", 2*time.Hour, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddTask(task1))
	suite.Require().NoError(aggregate.AddTask(task2))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.JobRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().JobRepository().Get(ctx, suite.tenantID, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), restored.ID())
	suite.Equal(job.StatusPlanned, restored.Status())
	suite.Equal(aggregate.Number(), restored.Number())
	suite.Equal([]string{"plumbing"}, restored.RequiredSkills())
	suite.Require().Len(restored.Tasks(), 2)
	suite.Equal("Drain old tank", restored.Tasks()[0].Title())
	suite.Equal("Install new unit", restored.Tasks()[1].Title())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestJobUpdateRemovesDetachedTasks() {
	ctx := context.Background()

	aggregate := suite.createJob("Service rooftop units", 2)
	task1, err := job.NewTask(kernel.NewUUID(), "Inspect compressor", time.Hour, 0)
	suite.Require().NoError(err)
	task2, err := job.NewTask(kernel.NewUUID(), "Replace filters", 30*time.Minute, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddTask(task1))
	suite.Require().NoError(aggregate.AddTask(task2))

	repo := suite.factory.Create().JobRepository()
	suite.Require().NoError(repo.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.RemoveTask(task1.ID()))
	suite.Require().NoError(task2.Start())
	suite.Require().NoError(repo.Update(ctx, aggregate))

	restored, err := repo.Get(ctx, suite.tenantID, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(restored.Tasks(), 1)
	suite.Equal(task2.ID(), restored.Tasks()[0].ID())
	suite.Equal(job.TaskStatusInProgress, restored.Tasks()[0].Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestJobGetNotFound() {
	ctx := context.Background()
	repo := suite.factory.Create().JobRepository()

	_, err := repo.Get(ctx, suite.tenantID, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestJobTenantIsolation() {
	ctx := context.Background()
	repo := suite.factory.Create().JobRepository()

	aggregate := suite.createJob("Install backflow preventer", 1)
	suite.Require().NoError(repo.Add(ctx, aggregate))

	_, err := repo.Get(ctx, kernel.NewUUID(), aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "another tenant must not see the job")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNextSequenceAllocatesMonotonically() {
	ctx := context.Background()
	repo := suite.factory.Create().JobRepository()

	first, err := repo.NextSequence(ctx, suite.tenantID, 2026)
	suite.Require().NoError(err)
	second, err := repo.NextSequence(ctx, suite.tenantID, 2026)
	suite.Require().NoError(err)

	suite.Equal(1, first)
	suite.Equal(2, second)

	otherYear, err := repo.NextSequence(ctx, suite.tenantID, 2027)
	suite.Require().NoError(err)
	suite.Equal(1, otherYear, "each year starts its own sequence")

	otherTenant, err := repo.NextSequence(ctx, kernel.NewUUID(), 2026)
	suite.Require().NoError(err)
	suite.Equal(1, otherTenant, "each tenant starts its own sequence")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStatusLogPersistsWithTransition() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := suite.createJob("Emergency pipe repair", 5)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.JobRepository().Add(ctx, aggregate))

	logRow, err := aggregate.TransitionTo(job.StatusOnHold, "dispatcher", "customer unreachable", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.JobRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.JobRepository().AddStatusLog(ctx, logRow))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().JobRepository().Get(ctx, suite.tenantID, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(job.StatusOnHold, restored.Status())

	var count int64
	err = suite.db.Table("job_status_logs").Where("job_id = ?", aggregate.ID().Bytes()).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := suite.createJob("Annual maintenance visit", 1)
	member := suite.createCrewMember("Jordan Reyes")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.JobRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.CrewRepository().Add(ctx, member))

	_, err := uow.JobRepository().Get(ctx, suite.tenantID, aggregate.ID())
	suite.Require().NoError(err, "uncommitted rows are visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.JobRepository().Get(ctx, suite.tenantID, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.CrewRepository().Get(ctx, suite.tenantID, member.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCrewMemberRoundTrip() {
	ctx := context.Background()
	repo := suite.factory.Create().CrewRepository()

	member := suite.createCrewMember("Sam Okafor")
	entry, err := member.DeclareAvailability(suite.window(0, 8, 8), crew.KindAvailable)
	suite.Require().NoError(err)
	_, err = member.DeclareAvailability(suite.window(1, 8, 8), crew.KindBlackout)
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(ctx, member))

	restored, err := repo.Get(ctx, suite.tenantID, member.ID())
	suite.Require().NoError(err)
	suite.Equal("Sam Okafor", restored.Name())
	suite.Equal([]string{"electrical", "plumbing"}, restored.Skills())
	suite.True(restored.IsActive())
	suite.Require().Len(restored.Availability(), 2)
	suite.Equal(crew.KindAvailable, restored.Availability()[0].Kind())
	suite.Equal(crew.KindBlackout, restored.Availability()[1].Kind())

	// Withdraw a window and deactivate, then verify both survive the update.
	suite.Require().NoError(restored.RemoveAvailability(entry.ID()))
	restored.Deactivate()
	suite.Require().NoError(repo.Update(ctx, restored))

	updated, err := repo.Get(ctx, suite.tenantID, member.ID())
	suite.Require().NoError(err)
	suite.False(updated.IsActive())
	suite.Require().Len(updated.Availability(), 1)
	suite.Equal(crew.KindBlackout, updated.Availability()[0].Kind())

	active, err := repo.GetAllActive(ctx, suite.tenantID)
	suite.Require().NoError(err)
	suite.Empty(active, "deactivated members are excluded from the active roster")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestScheduleEventConflictLookup() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := suite.createJob("Install EV charger", 2)
	memberA := suite.createCrewMember("Alex Fontaine")
	memberB := suite.createCrewMember("Casey Brandt")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.JobRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.CrewRepository().Add(ctx, memberA))
	suite.Require().NoError(uow.CrewRepository().Add(ctx, memberB))

	booked, err := schedule.NewEvent(
		kernel.NewUUID(), suite.tenantID, aggregate.ID(),
		suite.window(0, 9, 3),
		[]kernel.UUID{memberA.ID()},
		"",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ScheduleEventRepository().Add(ctx, booked))

	cancelled, err := schedule.NewEvent(
		kernel.NewUUID(), suite.tenantID, aggregate.ID(),
		suite.window(0, 13, 2),
		[]kernel.UUID{memberB.ID()},
		"",
	)
	suite.Require().NoError(err)
	_, err = cancelled.TransitionTo(schedule.EventStatusCancelled, "dispatcher", "customer rescheduled")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ScheduleEventRepository().Add(ctx, cancelled))
	suite.Require().NoError(uow.Commit(ctx))

	repo := suite.factory.Create().ScheduleEventRepository()

	// The overlap operator finds the event occupying member A.
	hits, err := repo.GetAllActiveForCrew(ctx, suite.tenantID, []kernel.UUID{memberA.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(hits, 1)
	suite.Equal(booked.ID(), hits[0].ID())

	// Member B's only event is cancelled and no longer occupies crew time.
	hits, err = repo.GetAllActiveForCrew(ctx, suite.tenantID, []kernel.UUID{memberB.ID()})
	suite.Require().NoError(err)
	suite.Empty(hits)

	all, err := repo.GetAllForJob(ctx, suite.tenantID, aggregate.ID())
	suite.Require().NoError(err)
	suite.Len(all, 2, "GetAllForJob includes terminal events")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTimeEntryRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	aggregate := suite.createJob("Winterize irrigation", 1)
	member := suite.createCrewMember("Dana Kowalski")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.JobRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.CrewRepository().Add(ctx, member))

	entry, err := schedule.NewTimeEntry(
		kernel.NewUUID(), suite.tenantID, aggregate.ID(), member.ID(),
		suite.window(0, 9, 2),
		"blowout and shutoff",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TimeEntryRepository().Add(ctx, entry))
	suite.Require().NoError(uow.Commit(ctx))

	repo := suite.factory.Create().TimeEntryRepository()
	restored, err := repo.Get(ctx, suite.tenantID, entry.ID())
	suite.Require().NoError(err)
	suite.Equal("blowout and shutoff", restored.Note())

	suite.Require().NoError(restored.Amend(suite.window(0, 9, 3), "ran long"))
	suite.Require().NoError(repo.Update(ctx, restored))

	entries, err := repo.GetAllForJob(ctx, suite.tenantID, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("ran long", entries[0].Note())
	suite.Equal(3*time.Hour, entries[0].Window().Duration())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDependencyEdges() {
	ctx := context.Background()
	repo := suite.factory.Create().DependencyRepository()

	trenchID := kernel.NewUUID()
	lineID := kernel.NewUUID()
	edge, err := job.NewDependency(kernel.NewUUID(), suite.tenantID, lineID, trenchID)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, edge))

	edges, err := repo.GetAllForTenant(ctx, suite.tenantID)
	suite.Require().NoError(err)
	suite.Require().Len(edges, 1)
	suite.Equal(lineID, edges[0].DependentID())
	suite.Equal(trenchID, edges[0].PrerequisiteID())

	touching, err := repo.GetAllForJob(ctx, suite.tenantID, trenchID)
	suite.Require().NoError(err)
	suite.Len(touching, 1, "edges are found from the prerequisite side too")

	suite.Require().NoError(repo.Remove(ctx, suite.tenantID, lineID, trenchID))

	err = repo.Remove(ctx, suite.tenantID, lineID, trenchID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTriggerRoundTrip() {
	ctx := context.Background()
	repo := suite.factory.Create().TriggerRepository()

	condition := trigger.Condition{
		{Field: "newStatus", Op: trigger.OpEqual, Value: "Completed"},
		{Field: "priority", Op: trigger.OpGreaterOrEqual, Value: 3},
	}
	rule, err := trigger.NewTrigger(
		kernel.NewUUID(), suite.tenantID,
		nil,
		trigger.TypeStatusChange,
		condition,
		trigger.ActionGenerateInvoice,
		map[string]any{"template": "standard", "netDays": 30},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, rule))

	restored, err := repo.Get(ctx, suite.tenantID, rule.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsGlobal())
	suite.Equal(trigger.TypeStatusChange, restored.TriggerType())
	suite.Equal(trigger.ActionGenerateInvoice, restored.ActionType())
	suite.Require().Len(restored.Condition(), 2)
	suite.Equal("newStatus", restored.Condition()[0].Field)
	suite.Equal("standard", restored.ActionConfig()["template"])

	// The condition must still match after the JSON round trip turned the
	// numeric clause value into a float64.
	suite.True(restored.Matches(map[string]any{"newStatus": "Completed", "priority": 4}))
	suite.False(restored.Matches(map[string]any{"newStatus": "Completed", "priority": 2}))

	restored.MarkFired(time.Date(2026, time.April, 6, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(repo.Update(ctx, restored))

	fired, err := repo.Get(ctx, suite.tenantID, rule.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), fired.TriggerCount())
	suite.Require().NotNil(fired.LastTriggered())

	active, err := repo.GetAllActiveForType(ctx, suite.tenantID, trigger.TypeStatusChange)
	suite.Require().NoError(err)
	suite.Len(active, 1)

	suite.Require().NoError(repo.Delete(ctx, suite.tenantID, rule.ID()))
	_, err = repo.Get(ctx, suite.tenantID, rule.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDispatchOutboxFlow() {
	ctx := context.Background()
	outbox := suite.factory.Create().DispatchOutbox()

	jobID := kernel.NewUUID()
	older, err := trigger.NewDispatch(
		kernel.NewUUID(), suite.tenantID, jobID,
		trigger.TypeJobCreated,
		time.Date(2026, time.April, 6, 9, 0, 0, 0, time.UTC),
		map[string]any{"priority": 3},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(outbox.Add(ctx, older))

	newer, err := trigger.NewDispatch(
		kernel.NewUUID(), suite.tenantID, jobID,
		trigger.TypeStatusChange,
		time.Date(2026, time.April, 6, 10, 0, 0, 0, time.UTC),
		map[string]any{"previousStatus": "Planned", "newStatus": "Scheduled"},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(outbox.Add(ctx, newer))

	pending, err := outbox.GetAllPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)

	limited, err := outbox.GetAllPending(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(limited, 1)

	for _, row := range pending {
		if row.ID().IsEqual(older.ID()) {
			row.MarkProcessed()
			suite.Require().NoError(outbox.Update(ctx, row))
		}
	}

	remaining, err := outbox.GetAllPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.True(remaining[0].ID().IsEqual(newer.ID()))
	suite.Equal(map[string]any{"previousStatus": "Planned", "newStatus": "Scheduled"},
		remaining[0].Payload())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
