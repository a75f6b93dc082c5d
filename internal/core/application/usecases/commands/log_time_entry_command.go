package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrLogTimeEntryCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrLogTimeEntryCommandIsNotConstructed = errors.New(
	"LogTimeEntryCommand must be created via NewLogTimeEntryCommand constructor",
)

// LogTimeEntryCommand represents a request to record time a crew member worked
// on a job. Time may be logged against completed jobs: reporting follows
// reality, not the other way around.
type LogTimeEntryCommand struct { //nolint:recvcheck //using for validation
	entryID      kernel.UUID
	tenantID     kernel.UUID
	jobID        kernel.UUID
	crewMemberID kernel.UUID
	window       kernel.TimeWindow
	note         string

	guard guard.ConstructorGuard
}

// NewLogTimeEntryCommand creates a command to log worked time.
func NewLogTimeEntryCommand(
	entryID, tenantID, jobID, crewMemberID kernel.UUID,
	start, end time.Time,
	note string,
) (LogTimeEntryCommand, error) {
	cmd := LogTimeEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entryID.Validate(),
		tenantID.Validate(),
		jobID.Validate(),
		crewMemberID.Validate(),
	); err != nil {
		return LogTimeEntryCommand{}, err
	}

	window, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		return LogTimeEntryCommand{}, err
	}

	cmd.entryID = entryID
	cmd.tenantID = tenantID
	cmd.jobID = jobID
	cmd.crewMemberID = crewMemberID
	cmd.window = window
	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogTimeEntryCommand) Validate() error {
	return c.guard.Validate(ErrLogTimeEntryCommandIsNotConstructed)
}

func (c LogTimeEntryCommand) EntryID() kernel.UUID        { return c.entryID }
func (c LogTimeEntryCommand) TenantID() kernel.UUID       { return c.tenantID }
func (c LogTimeEntryCommand) JobID() kernel.UUID          { return c.jobID }
func (c LogTimeEntryCommand) CrewMemberID() kernel.UUID   { return c.crewMemberID }
func (c LogTimeEntryCommand) Window() kernel.TimeWindow   { return c.window }
func (c LogTimeEntryCommand) Note() string                { return c.note }
