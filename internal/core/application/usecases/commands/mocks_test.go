package commands_test

import (
	"context"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared repository and unit-of-work mocks for the handler tests in this
// package.

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockJobRepository) GetMany(
	ctx context.Context, tenantID kernel.UUID, ids []kernel.UUID,
) ([]*job.Job, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllUnscheduled(ctx context.Context, tenantID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) NextSequence(ctx context.Context, tenantID kernel.UUID, year int) (int, error) {
	args := m.Called(ctx, tenantID, year)
	return args.Int(0), args.Error(1)
}

func (m *MockJobRepository) AddStatusLog(ctx context.Context, logRow *job.StatusLog) error {
	args := m.Called(ctx, logRow)
	return args.Error(0)
}

type MockCrewRepository struct{ mock.Mock }

func (m *MockCrewRepository) Add(ctx context.Context, aggregate *crew.CrewMember) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCrewRepository) Update(ctx context.Context, aggregate *crew.CrewMember) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCrewRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*crew.CrewMember, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crew.CrewMember), args.Error(1)
}

func (m *MockCrewRepository) GetMany(
	ctx context.Context, tenantID kernel.UUID, ids []kernel.UUID,
) ([]*crew.CrewMember, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*crew.CrewMember), args.Error(1)
}

func (m *MockCrewRepository) GetAllActive(ctx context.Context, tenantID kernel.UUID) ([]*crew.CrewMember, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*crew.CrewMember), args.Error(1)
}

type MockScheduleEventRepository struct{ mock.Mock }

func (m *MockScheduleEventRepository) Add(ctx context.Context, aggregate *schedule.Event) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockScheduleEventRepository) Update(ctx context.Context, aggregate *schedule.Event) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockScheduleEventRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*schedule.Event, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.Event), args.Error(1)
}

func (m *MockScheduleEventRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockScheduleEventRepository) GetAllActiveForCrew(
	ctx context.Context, tenantID kernel.UUID, crewIDs []kernel.UUID,
) ([]*schedule.Event, error) {
	args := m.Called(ctx, tenantID, crewIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schedule.Event), args.Error(1)
}

func (m *MockScheduleEventRepository) GetAllActive(
	ctx context.Context, tenantID kernel.UUID,
) ([]*schedule.Event, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schedule.Event), args.Error(1)
}

func (m *MockScheduleEventRepository) GetAllForJob(
	ctx context.Context, tenantID, jobID kernel.UUID,
) ([]*schedule.Event, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schedule.Event), args.Error(1)
}

func (m *MockScheduleEventRepository) AddStatusLog(ctx context.Context, logRow *schedule.EventStatusLog) error {
	args := m.Called(ctx, logRow)
	return args.Error(0)
}

type MockDependencyRepository struct{ mock.Mock }

func (m *MockDependencyRepository) Add(ctx context.Context, edge *job.Dependency) error {
	args := m.Called(ctx, edge)
	return args.Error(0)
}

func (m *MockDependencyRepository) Remove(
	ctx context.Context, tenantID, dependentID, prerequisiteID kernel.UUID,
) error {
	args := m.Called(ctx, tenantID, dependentID, prerequisiteID)
	return args.Error(0)
}

func (m *MockDependencyRepository) GetAllForTenant(
	ctx context.Context, tenantID kernel.UUID,
) ([]*job.Dependency, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Dependency), args.Error(1)
}

func (m *MockDependencyRepository) GetAllForJob(
	ctx context.Context, tenantID, jobID kernel.UUID,
) ([]*job.Dependency, error) {
	args := m.Called(ctx, tenantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Dependency), args.Error(1)
}

type MockTriggerRepository struct{ mock.Mock }

func (m *MockTriggerRepository) Add(ctx context.Context, aggregate *trigger.Trigger) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTriggerRepository) Update(ctx context.Context, aggregate *trigger.Trigger) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTriggerRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*trigger.Trigger, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trigger.Trigger), args.Error(1)
}

func (m *MockTriggerRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockTriggerRepository) GetAllActiveForType(
	ctx context.Context, tenantID kernel.UUID, eventType trigger.Type,
) ([]*trigger.Trigger, error) {
	args := m.Called(ctx, tenantID, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trigger.Trigger), args.Error(1)
}

func (m *MockTriggerRepository) GetAllForTenant(
	ctx context.Context, tenantID kernel.UUID,
) ([]*trigger.Trigger, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trigger.Trigger), args.Error(1)
}

type MockDispatchOutbox struct{ mock.Mock }

func (m *MockDispatchOutbox) Add(ctx context.Context, dispatch *trigger.Dispatch) error {
	args := m.Called(ctx, dispatch)
	return args.Error(0)
}

func (m *MockDispatchOutbox) Update(ctx context.Context, dispatch *trigger.Dispatch) error {
	args := m.Called(ctx, dispatch)
	return args.Error(0)
}

func (m *MockDispatchOutbox) GetAllPending(ctx context.Context, limit int) ([]*trigger.Dispatch, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trigger.Dispatch), args.Error(1)
}

type MockTxManager struct{ mock.Mock }

func (m *MockTxManager) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockJobUoW struct{ MockTxManager }

func (m *MockJobUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockJobUoW) DispatchOutbox() ports.DispatchOutbox {
	args := m.Called()
	return args.Get(0).(ports.DispatchOutbox)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockJobGraphUoW struct{ MockJobUoW }

func (m *MockJobGraphUoW) DependencyRepository() ports.DependencyRepository {
	args := m.Called()
	return args.Get(0).(ports.DependencyRepository)
}

type MockJobGraphUoWFactory struct{ mock.Mock }

func (m *MockJobGraphUoWFactory) Create() commands.JobGraphUoW {
	args := m.Called()
	return args.Get(0).(commands.JobGraphUoW)
}

type MockScheduleUoW struct{ MockJobGraphUoW }

func (m *MockScheduleUoW) CrewRepository() ports.CrewRepository {
	args := m.Called()
	return args.Get(0).(ports.CrewRepository)
}

func (m *MockScheduleUoW) ScheduleEventRepository() ports.ScheduleEventRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleEventRepository)
}

type MockScheduleUoWFactory struct{ mock.Mock }

func (m *MockScheduleUoWFactory) Create() commands.ScheduleUoW {
	args := m.Called()
	return args.Get(0).(commands.ScheduleUoW)
}

type MockAutomationUoW struct{ MockTxManager }

func (m *MockAutomationUoW) TriggerRepository() ports.TriggerRepository {
	args := m.Called()
	return args.Get(0).(ports.TriggerRepository)
}

func (m *MockAutomationUoW) DispatchOutbox() ports.DispatchOutbox {
	args := m.Called()
	return args.Get(0).(ports.DispatchOutbox)
}

type MockAutomationUoWFactory struct{ mock.Mock }

func (m *MockAutomationUoWFactory) Create() commands.AutomationUoW {
	args := m.Called()
	return args.Get(0).(commands.AutomationUoW)
}
