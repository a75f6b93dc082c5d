package commands

import (
	"context"
	"time"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"
)

// CreateJobCommandHandler handles the business logic for job creation.
// Allocates the tenant's next job number, creates the job in Planned status
// with its initial tasks, and enqueues a JOB_CREATED automation event in the
// same transaction.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job creation command. The job number sequence is
// allocated inside the transaction, so concurrent creations never share a
// number and a rolled-back creation may leave a gap, never a duplicate.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	now := time.Now().UTC()
	sequence, err := jobRepo.NextSequence(ctx, cmd.TenantID(), now.Year())
	if err != nil {
		return err
	}

	number, err := job.NewNumber(now.Year(), sequence)
	if err != nil {
		return err
	}

	aggregate, err := job.NewJob(
		cmd.JobID(), cmd.TenantID(), cmd.CustomerID(), cmd.SourceQuoteID(),
		number, cmd.Title(), cmd.Priority(), cmd.EstimatedDuration(),
		cmd.RequiredSkills(), cmd.RequiredEquipment(), cmd.CreatedBy(),
	)
	if err != nil {
		return err
	}

	for i, title := range cmd.TaskTitles() {
		task, taskErr := job.NewTask(kernel.NewUUID(), title, 0, i)
		if taskErr != nil {
			return taskErr
		}
		if taskErr = aggregate.AddTask(task); taskErr != nil {
			return taskErr
		}
	}

	if err = jobRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	dispatch, err := trigger.NewDispatch(
		kernel.NewUUID(), cmd.TenantID(), cmd.JobID(),
		trigger.TypeJobCreated, now,
		map[string]any{
			"jobNumber": number.String(),
			"title":     cmd.Title(),
			"priority":  cmd.Priority(),
			"status":    aggregate.Status().String(),
		},
	)
	if err != nil {
		return err
	}
	if err = uow.DispatchOutbox().Add(ctx, dispatch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
