package commands

import (
	"context"
)

// RemoveTaskCommandHandler removes a task from its job aggregate.
type RemoveTaskCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewRemoveTaskCommandHandler creates a handler for task removal.
func NewRemoveTaskCommandHandler(uowFactory JobUoWFactory) RemoveTaskCommandHandler {
	return RemoveTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task removal command.
func (h RemoveTaskCommandHandler) Handle(ctx context.Context, cmd RemoveTaskCommand) error {
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

	if err = aggregate.RemoveTask(cmd.TaskID()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
