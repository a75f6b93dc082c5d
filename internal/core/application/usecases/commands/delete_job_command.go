package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrDeleteJobCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrDeleteJobCommandIsNotConstructed = errors.New(
	"DeleteJobCommand must be created via NewDeleteJobCommand constructor",
)

// DeleteJobCommand represents a request to hard-delete a job. Deletion is
// guarded: it only succeeds when no tasks, schedule events or time entries
// reference the job. Cancellation is the soft-delete path for anything else.
type DeleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteJobCommand creates a command to hard-delete a job.
func NewDeleteJobCommand(jobID, tenantID kernel.UUID) (DeleteJobCommand, error) {
	cmd := DeleteJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(jobID.Validate(), tenantID.Validate()); err != nil {
		return DeleteJobCommand{}, err
	}

	cmd.jobID = jobID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteJobCommand) Validate() error {
	return c.guard.Validate(ErrDeleteJobCommandIsNotConstructed)
}

func (c DeleteJobCommand) JobID() kernel.UUID    { return c.jobID }
func (c DeleteJobCommand) TenantID() kernel.UUID { return c.tenantID }
