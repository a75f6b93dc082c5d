package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrRemoveTaskCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrRemoveTaskCommandIsNotConstructed = errors.New(
	"RemoveTaskCommand must be created via NewRemoveTaskCommand constructor",
)

// RemoveTaskCommand represents a request to remove a task from a job.
type RemoveTaskCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	jobID    kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveTaskCommand creates a command to remove a task.
func NewRemoveTaskCommand(taskID, jobID, tenantID kernel.UUID) (RemoveTaskCommand, error) {
	cmd := RemoveTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taskID.Validate(),
		jobID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return RemoveTaskCommand{}, err
	}

	cmd.taskID = taskID
	cmd.jobID = jobID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveTaskCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTaskCommandIsNotConstructed)
}

func (c RemoveTaskCommand) TaskID() kernel.UUID   { return c.taskID }
func (c RemoveTaskCommand) JobID() kernel.UUID    { return c.jobID }
func (c RemoveTaskCommand) TenantID() kernel.UUID { return c.tenantID }
