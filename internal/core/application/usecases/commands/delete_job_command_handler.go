package commands

import (
	"context"
)

// DeleteJobCommandHandler hard-deletes an unreferenced job. A job with tasks,
// schedule events or time entries is rejected with ErrJobHasReferences; the
// caller should cancel it instead.
type DeleteJobCommandHandler struct {
	uowFactory JobPurgeUoWFactory
}

// NewDeleteJobCommandHandler creates a handler for job deletion.
func NewDeleteJobCommandHandler(uowFactory JobPurgeUoWFactory) DeleteJobCommandHandler {
	return DeleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job deletion command.
func (h DeleteJobCommandHandler) Handle(ctx context.Context, cmd DeleteJobCommand) error {
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

	aggregate, err := jobRepo.Get(ctx, cmd.TenantID(), cmd.JobID())
	if err != nil {
		return err
	}
	if len(aggregate.Tasks()) > 0 {
		return ErrJobHasReferences
	}

	events, err := uow.ScheduleEventRepository().GetAllForJob(ctx, cmd.TenantID(), cmd.JobID())
	if err != nil {
		return err
	}
	if len(events) > 0 {
		return ErrJobHasReferences
	}

	entries, err := uow.TimeEntryRepository().GetAllForJob(ctx, cmd.TenantID(), cmd.JobID())
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return ErrJobHasReferences
	}

	if err = jobRepo.Delete(ctx, cmd.TenantID(), cmd.JobID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
