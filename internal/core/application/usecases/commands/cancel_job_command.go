package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrCancelJobCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand represents a request to delete a job. Jobs are never hard
// deleted: status history, schedule events and logged time must survive for
// reporting, so deletion is a transition to Cancelled.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	tenantID kernel.UUID
	actor    string
	reason   string

	guard guard.ConstructorGuard
}

// NewCancelJobCommand creates a command to cancel (soft-delete) a job.
func NewCancelJobCommand(jobID, tenantID kernel.UUID, actor, reason string) (CancelJobCommand, error) {
	cmd := CancelJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(jobID.Validate(), tenantID.Validate()); err != nil {
		return CancelJobCommand{}, err
	}
	if actor == "" {
		return CancelJobCommand{}, errs.NewValueIsRequiredError("actor")
	}

	cmd.jobID = jobID
	cmd.tenantID = tenantID
	cmd.actor = actor
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

func (c CancelJobCommand) JobID() kernel.UUID    { return c.jobID }
func (c CancelJobCommand) TenantID() kernel.UUID { return c.tenantID }
func (c CancelJobCommand) Actor() string         { return c.actor }
func (c CancelJobCommand) Reason() string        { return c.reason }
