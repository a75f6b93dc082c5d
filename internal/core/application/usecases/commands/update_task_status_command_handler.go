package commands

import (
	"context"
)

// UpdateTaskStatusCommandHandler applies a lifecycle action to a task within
// its job aggregate.
type UpdateTaskStatusCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewUpdateTaskStatusCommandHandler creates a handler for task status changes.
func NewUpdateTaskStatusCommandHandler(uowFactory JobUoWFactory) UpdateTaskStatusCommandHandler {
	return UpdateTaskStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task status command.
func (h UpdateTaskStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTaskStatusCommand) error {
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

	task, err := aggregate.TaskByID(cmd.TaskID())
	if err != nil {
		return err
	}

	switch cmd.Action() {
	case TaskActionStart:
		err = task.Start()
	case TaskActionComplete:
		err = task.Complete(cmd.ActualDuration())
	case TaskActionCancel:
		err = task.Cancel()
	}
	if err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
