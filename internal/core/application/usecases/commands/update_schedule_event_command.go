package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrUpdateScheduleEventCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrUpdateScheduleEventCommandIsNotConstructed = errors.New(
	"UpdateScheduleEventCommand must be created via NewUpdateScheduleEventCommand constructor",
)

// UpdateScheduleEventCommand represents a request to reschedule an existing
// event: new window, new crew assignment, or both. The event being updated is
// excluded from its own conflict scan.
type UpdateScheduleEventCommand struct { //nolint:recvcheck //using for validation
	eventID       kernel.UUID
	tenantID      kernel.UUID
	window        kernel.TimeWindow
	crewMemberIDs []kernel.UUID
	notes         string
	allowOverride bool
	actor         string

	guard guard.ConstructorGuard
}

// NewUpdateScheduleEventCommand creates a command to reschedule an event.
func NewUpdateScheduleEventCommand(
	eventID, tenantID kernel.UUID,
	start, end time.Time,
	crewMemberIDs []kernel.UUID,
	notes string,
	allowOverride bool,
	actor string,
) (UpdateScheduleEventCommand, error) {
	cmd := UpdateScheduleEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(eventID.Validate(), tenantID.Validate()); err != nil {
		return UpdateScheduleEventCommand{}, err
	}

	window, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		return UpdateScheduleEventCommand{}, err
	}
	if len(crewMemberIDs) == 0 {
		return UpdateScheduleEventCommand{}, errs.NewValueIsRequiredError("crewMemberIDs")
	}
	if actor == "" {
		return UpdateScheduleEventCommand{}, errs.NewValueIsRequiredError("actor")
	}

	cmd.eventID = eventID
	cmd.tenantID = tenantID
	cmd.window = window
	cmd.crewMemberIDs = crewMemberIDs
	cmd.notes = notes
	cmd.allowOverride = allowOverride
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateScheduleEventCommand) Validate() error {
	return c.guard.Validate(ErrUpdateScheduleEventCommandIsNotConstructed)
}

func (c UpdateScheduleEventCommand) EventID() kernel.UUID         { return c.eventID }
func (c UpdateScheduleEventCommand) TenantID() kernel.UUID        { return c.tenantID }
func (c UpdateScheduleEventCommand) Window() kernel.TimeWindow    { return c.window }
func (c UpdateScheduleEventCommand) CrewMemberIDs() []kernel.UUID { return c.crewMemberIDs }
func (c UpdateScheduleEventCommand) Notes() string                { return c.notes }
func (c UpdateScheduleEventCommand) AllowOverride() bool          { return c.allowOverride }
func (c UpdateScheduleEventCommand) Actor() string                { return c.actor }
