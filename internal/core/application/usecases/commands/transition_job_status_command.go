package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrTransitionJobStatusCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrTransitionJobStatusCommandIsNotConstructed = errors.New(
	"TransitionJobStatusCommand must be created via NewTransitionJobStatusCommand constructor",
)

// TransitionJobStatusCommand represents a request to move a job to a new
// lifecycle state, recording who did it and why.
type TransitionJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	tenantID kernel.UUID
	target   job.Status
	actor    string
	reason   string
	notes    string

	guard guard.ConstructorGuard
}

// NewTransitionJobStatusCommand creates a command to transition a job's status.
func NewTransitionJobStatusCommand(
	jobID, tenantID kernel.UUID,
	target job.Status,
	actor, reason, notes string,
) (TransitionJobStatusCommand, error) {
	cmd := TransitionJobStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(jobID.Validate(), tenantID.Validate(), target.Validate()); err != nil {
		return TransitionJobStatusCommand{}, err
	}
	if actor == "" {
		return TransitionJobStatusCommand{}, errs.NewValueIsRequiredError("actor")
	}

	cmd.jobID = jobID
	cmd.tenantID = tenantID
	cmd.target = target
	cmd.actor = actor
	cmd.reason = reason
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionJobStatusCommandIsNotConstructed)
}

func (c TransitionJobStatusCommand) JobID() kernel.UUID    { return c.jobID }
func (c TransitionJobStatusCommand) TenantID() kernel.UUID { return c.tenantID }
func (c TransitionJobStatusCommand) Target() job.Status    { return c.target }
func (c TransitionJobStatusCommand) Actor() string         { return c.actor }
func (c TransitionJobStatusCommand) Reason() string        { return c.reason }
func (c TransitionJobStatusCommand) Notes() string         { return c.notes }
