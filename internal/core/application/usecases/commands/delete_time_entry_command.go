package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrDeleteTimeEntryCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrDeleteTimeEntryCommandIsNotConstructed = errors.New(
	"DeleteTimeEntryCommand must be created via NewDeleteTimeEntryCommand constructor",
)

// DeleteTimeEntryCommand represents a request to remove a logged time entry,
// typically one recorded against the wrong job.
type DeleteTimeEntryCommand struct { //nolint:recvcheck //using for validation
	entryID  kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTimeEntryCommand creates a command to delete a time entry.
func NewDeleteTimeEntryCommand(entryID, tenantID kernel.UUID) (DeleteTimeEntryCommand, error) {
	cmd := DeleteTimeEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(entryID.Validate(), tenantID.Validate()); err != nil {
		return DeleteTimeEntryCommand{}, err
	}

	cmd.entryID = entryID
	cmd.tenantID = tenantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTimeEntryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTimeEntryCommandIsNotConstructed)
}

func (c DeleteTimeEntryCommand) EntryID() kernel.UUID  { return c.entryID }
func (c DeleteTimeEntryCommand) TenantID() kernel.UUID { return c.tenantID }
