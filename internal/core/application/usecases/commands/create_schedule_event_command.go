package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrCreateScheduleEventCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrCreateScheduleEventCommandIsNotConstructed = errors.New(
	"CreateScheduleEventCommand must be created via NewCreateScheduleEventCommand constructor",
)

// CreateScheduleEventCommand represents a request to book one or more crew
// members onto a job for a time window.
//
// allowOverride lets a dispatcher knowingly double-book crew: conflicts and
// availability violations are then recorded in the automation event payload
// instead of rejecting the command.
type CreateScheduleEventCommand struct { //nolint:recvcheck //using for validation
	eventID       kernel.UUID
	tenantID      kernel.UUID
	jobID         kernel.UUID
	window        kernel.TimeWindow
	crewMemberIDs []kernel.UUID
	notes         string
	allowOverride bool
	actor         string

	guard guard.ConstructorGuard
}

// NewCreateScheduleEventCommand creates a command to schedule crew onto a job.
// The window bounds are validated here; crew existence, conflicts and
// dependencies are checked by the handler against transactional state.
func NewCreateScheduleEventCommand(
	eventID, tenantID, jobID kernel.UUID,
	start, end time.Time,
	crewMemberIDs []kernel.UUID,
	notes string,
	allowOverride bool,
	actor string,
) (CreateScheduleEventCommand, error) {
	cmd := CreateScheduleEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(eventID.Validate(), tenantID.Validate(), jobID.Validate()); err != nil {
		return CreateScheduleEventCommand{}, err
	}

	window, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		return CreateScheduleEventCommand{}, err
	}
	if len(crewMemberIDs) == 0 {
		return CreateScheduleEventCommand{}, errs.NewValueIsRequiredError("crewMemberIDs")
	}
	if actor == "" {
		return CreateScheduleEventCommand{}, errs.NewValueIsRequiredError("actor")
	}

	cmd.eventID = eventID
	cmd.tenantID = tenantID
	cmd.jobID = jobID
	cmd.window = window
	cmd.crewMemberIDs = crewMemberIDs
	cmd.notes = notes
	cmd.allowOverride = allowOverride
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateScheduleEventCommand) Validate() error {
	return c.guard.Validate(ErrCreateScheduleEventCommandIsNotConstructed)
}

func (c CreateScheduleEventCommand) EventID() kernel.UUID          { return c.eventID }
func (c CreateScheduleEventCommand) TenantID() kernel.UUID         { return c.tenantID }
func (c CreateScheduleEventCommand) JobID() kernel.UUID            { return c.jobID }
func (c CreateScheduleEventCommand) Window() kernel.TimeWindow     { return c.window }
func (c CreateScheduleEventCommand) CrewMemberIDs() []kernel.UUID  { return c.crewMemberIDs }
func (c CreateScheduleEventCommand) Notes() string                 { return c.notes }
func (c CreateScheduleEventCommand) AllowOverride() bool           { return c.allowOverride }
func (c CreateScheduleEventCommand) Actor() string                 { return c.actor }
