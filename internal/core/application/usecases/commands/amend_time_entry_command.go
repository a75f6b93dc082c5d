package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrAmendTimeEntryCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrAmendTimeEntryCommandIsNotConstructed = errors.New(
	"AmendTimeEntryCommand must be created via NewAmendTimeEntryCommand constructor",
)

// AmendTimeEntryCommand represents a request to correct a logged time entry.
type AmendTimeEntryCommand struct { //nolint:recvcheck //using for validation
	entryID  kernel.UUID
	tenantID kernel.UUID
	window   kernel.TimeWindow
	note     string

	guard guard.ConstructorGuard
}

// NewAmendTimeEntryCommand creates a command to amend a time entry.
func NewAmendTimeEntryCommand(
	entryID, tenantID kernel.UUID,
	start, end time.Time,
	note string,
) (AmendTimeEntryCommand, error) {
	cmd := AmendTimeEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entryID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return AmendTimeEntryCommand{}, err
	}

	window, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		return AmendTimeEntryCommand{}, err
	}

	cmd.entryID = entryID
	cmd.tenantID = tenantID
	cmd.window = window
	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AmendTimeEntryCommand) Validate() error {
	return c.guard.Validate(ErrAmendTimeEntryCommandIsNotConstructed)
}

func (c AmendTimeEntryCommand) EntryID() kernel.UUID      { return c.entryID }
func (c AmendTimeEntryCommand) TenantID() kernel.UUID     { return c.tenantID }
func (c AmendTimeEntryCommand) Window() kernel.TimeWindow { return c.window }
func (c AmendTimeEntryCommand) Note() string              { return c.note }
