package commands_test

import (
	"errors"
	"testing"
	"time"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJobAggregate(t *testing.T, jobID, tenantID kernel.UUID) *job.Job {
	t.Helper()
	number, err := job.NewNumber(2026, 17)
	require.NoError(t, err)
	aggregate, err := job.NewJob(
		jobID, tenantID, kernel.NewUUID(), nil,
		number, "Replace water heater", 3, 4*time.Hour,
		[]string{"plumbing"}, nil, "dispatcher",
	)
	require.NoError(t, err)
	return aggregate
}

func newDependencyEdge(t *testing.T, tenantID, dependentID, prerequisiteID kernel.UUID) *job.Dependency {
	t.Helper()
	edge, err := job.NewDependency(kernel.NewUUID(), tenantID, dependentID, prerequisiteID)
	require.NoError(t, err)
	return edge
}

func TestTransitionJobStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	cmd, err := commands.NewTransitionJobStatusCommand(
		jobID, tenantID, job.StatusScheduled, "dispatcher", "crew booked", "")
	require.NoError(t, err)

	testJob := newJobAggregate(t, jobID, tenantID)

	jobRepo := new(MockJobRepository)
	depRepo := new(MockDependencyRepository)
	outbox := new(MockDispatchOutbox)
	uow := new(MockJobGraphUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, tenantID, jobID).Return(testJob, nil).Once(),
		uow.On("DependencyRepository").Return(depRepo).Once(),
		depRepo.On("GetAllForTenant", ctx, tenantID).Return([]*job.Dependency{}, nil).Once(),
		jobRepo.On("Update", ctx, mock.AnythingOfType("*job.Job")).Return(nil).Once(),
		jobRepo.On("AddStatusLog", ctx, mock.AnythingOfType("*job.StatusLog")).Return(nil).Once(),
		uow.On("DispatchOutbox").Return(outbox).Once(),
		outbox.On("Add", ctx, mock.AnythingOfType("*trigger.Dispatch")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobGraphUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionJobStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, job.StatusScheduled, testJob.Status())
	jobRepo.AssertExpectations(t)
	depRepo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionJobStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TransitionJobStatusCommand{} // not constructed properly

	factory := new(MockJobGraphUoWFactory)
	handler := commands.NewTransitionJobStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTransitionJobStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestTransitionJobStatusCommandHandler_Handle_UnmetDependencies(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	cmd, err := commands.NewTransitionJobStatusCommand(
		jobID, tenantID, job.StatusScheduled, "dispatcher", "", "")
	require.NoError(t, err)

	testJob := newJobAggregate(t, jobID, tenantID)
	prereqID := kernel.NewUUID()
	prereqJob := newJobAggregate(t, prereqID, tenantID) // still Planned
	edge := newDependencyEdge(t, tenantID, jobID, prereqID)

	jobRepo := new(MockJobRepository)
	depRepo := new(MockDependencyRepository)
	uow := new(MockJobGraphUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, tenantID, jobID).Return(testJob, nil).Once(),
		uow.On("DependencyRepository").Return(depRepo).Once(),
		depRepo.On("GetAllForTenant", ctx, tenantID).Return([]*job.Dependency{edge}, nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetMany", ctx, tenantID, []kernel.UUID{prereqID}).
			Return([]*job.Job{prereqJob}, nil).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobGraphUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionJobStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUnmetDependencies)

	var unmet *commands.UnmetDependencyError
	require.ErrorAs(t, err, &unmet)
	assert.Equal(t, []kernel.UUID{prereqID}, unmet.BlockingJobIDs)
	assert.Equal(t, job.StatusPlanned, testJob.Status())
}

func TestTransitionJobStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	cmd, err := commands.NewTransitionJobStatusCommand(
		jobID, tenantID, job.StatusCompleted, "dispatcher", "", "")
	require.NoError(t, err)

	testJob := newJobAggregate(t, jobID, tenantID) // Planned, cannot complete

	jobRepo := new(MockJobRepository)
	uow := new(MockJobGraphUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, tenantID, jobID).Return(testJob, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobGraphUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionJobStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, job.ErrInvalidTransition)
	assert.Equal(t, job.StatusPlanned, testJob.Status())
}

func TestTransitionJobStatusCommandHandler_Handle_JobNotFound(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	cmd, err := commands.NewTransitionJobStatusCommand(
		jobID, tenantID, job.StatusOnHold, "dispatcher", "parts missing", "")
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockJobGraphUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, tenantID, jobID).Return(nil, errors.New("not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobGraphUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionJobStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "not found")
}
