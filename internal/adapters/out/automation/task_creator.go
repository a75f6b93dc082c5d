package automation

import (
	"context"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/kernel"
)

// CommandTaskCreator creates trigger-spawned tasks through the regular
// AddTask use case, so automation goes through the same invariants as a
// dispatcher adding a task by hand.
type CommandTaskCreator struct {
	handler commands.AddTaskCommandHandler
}

// NewCommandTaskCreator creates a task creator over the AddTask handler.
func NewCommandTaskCreator(handler commands.AddTaskCommandHandler) *CommandTaskCreator {
	return &CommandTaskCreator{handler: handler}
}

// CreateTask appends a pending task with no duration estimate to the job.
func (c *CommandTaskCreator) CreateTask(ctx context.Context, tenantID, jobID kernel.UUID, title string) error {
	cmd, err := commands.NewAddTaskCommand(kernel.NewUUID(), jobID, tenantID, title, 0, 0)
	if err != nil {
		return err
	}
	return c.handler.Handle(ctx, cmd)
}
