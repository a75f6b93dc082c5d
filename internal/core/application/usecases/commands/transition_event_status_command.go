package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrTransitionEventStatusCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrTransitionEventStatusCommandIsNotConstructed = errors.New(
	"TransitionEventStatusCommand must be created via NewTransitionEventStatusCommand constructor",
)

// TransitionEventStatusCommand represents a request to move a schedule event
// through its lifecycle (confirm, start, complete, cancel).
type TransitionEventStatusCommand struct { //nolint:recvcheck //using for validation
	eventID  kernel.UUID
	tenantID kernel.UUID
	target   schedule.EventStatus
	actor    string
	reason   string

	guard guard.ConstructorGuard
}

// NewTransitionEventStatusCommand creates a command to transition an event's status.
func NewTransitionEventStatusCommand(
	eventID, tenantID kernel.UUID,
	target schedule.EventStatus,
	actor, reason string,
) (TransitionEventStatusCommand, error) {
	cmd := TransitionEventStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(eventID.Validate(), tenantID.Validate(), target.Validate()); err != nil {
		return TransitionEventStatusCommand{}, err
	}
	if actor == "" {
		return TransitionEventStatusCommand{}, errs.NewValueIsRequiredError("actor")
	}

	cmd.eventID = eventID
	cmd.tenantID = tenantID
	cmd.target = target
	cmd.actor = actor
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionEventStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionEventStatusCommandIsNotConstructed)
}

func (c TransitionEventStatusCommand) EventID() kernel.UUID          { return c.eventID }
func (c TransitionEventStatusCommand) TenantID() kernel.UUID         { return c.tenantID }
func (c TransitionEventStatusCommand) Target() schedule.EventStatus  { return c.target }
func (c TransitionEventStatusCommand) Actor() string                 { return c.actor }
func (c TransitionEventStatusCommand) Reason() string                { return c.reason }
