package commands

import (
	"context"
)

// DeleteTimeEntryCommandHandler removes a logged time entry.
type DeleteTimeEntryCommandHandler struct {
	uowFactory TimeEntryUoWFactory
}

// NewDeleteTimeEntryCommandHandler creates a handler for time entry deletion.
func NewDeleteTimeEntryCommandHandler(uowFactory TimeEntryUoWFactory) DeleteTimeEntryCommandHandler {
	return DeleteTimeEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the time entry deletion command.
func (h DeleteTimeEntryCommandHandler) Handle(ctx context.Context, cmd DeleteTimeEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TimeEntryRepository().Delete(ctx, cmd.TenantID(), cmd.EntryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
