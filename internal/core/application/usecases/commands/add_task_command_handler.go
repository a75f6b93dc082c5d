package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
)

// AddTaskCommandHandler appends a task to a job. Terminal jobs reject new
// tasks at the domain level.
type AddTaskCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewAddTaskCommandHandler creates a handler for task creation.
func NewAddTaskCommandHandler(uowFactory JobUoWFactory) AddTaskCommandHandler {
	return AddTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task creation command.
func (h AddTaskCommandHandler) Handle(ctx context.Context, cmd AddTaskCommand) error {
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

	task, err := job.NewTask(cmd.TaskID(), cmd.Title(), cmd.EstimatedDuration(), cmd.SortOrder())
	if err != nil {
		return err
	}
	if err = aggregate.AddTask(task); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
