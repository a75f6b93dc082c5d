package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrDeleteScheduleEventCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrDeleteScheduleEventCommandIsNotConstructed = errors.New(
	"DeleteScheduleEventCommand must be created via NewDeleteScheduleEventCommand constructor",
)

// DeleteScheduleEventCommand represents a request to permanently remove a
// schedule event together with its status history. Cancelling keeps the
// history; deleting is for events created in error.
type DeleteScheduleEventCommand struct { //nolint:recvcheck //using for validation
	eventID  kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteScheduleEventCommand creates a command to delete a schedule event.
func NewDeleteScheduleEventCommand(eventID, tenantID kernel.UUID) (DeleteScheduleEventCommand, error) {
	cmd := DeleteScheduleEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(eventID.Validate(), tenantID.Validate()); err != nil {
		return DeleteScheduleEventCommand{}, err
	}

	cmd.eventID = eventID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteScheduleEventCommand) Validate() error {
	return c.guard.Validate(ErrDeleteScheduleEventCommandIsNotConstructed)
}

func (c DeleteScheduleEventCommand) EventID() kernel.UUID  { return c.eventID }
func (c DeleteScheduleEventCommand) TenantID() kernel.UUID { return c.tenantID }
