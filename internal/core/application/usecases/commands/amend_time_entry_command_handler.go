package commands

import (
	"context"
)

// AmendTimeEntryCommandHandler corrects the window or note of an existing
// time entry.
type AmendTimeEntryCommandHandler struct {
	uowFactory TimeEntryUoWFactory
}

// NewAmendTimeEntryCommandHandler creates a handler for time entry amendments.
func NewAmendTimeEntryCommandHandler(uowFactory TimeEntryUoWFactory) AmendTimeEntryCommandHandler {
	return AmendTimeEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the amendment command.
func (h AmendTimeEntryCommandHandler) Handle(ctx context.Context, cmd AmendTimeEntryCommand) error {
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

	entryRepo := uow.TimeEntryRepository()

	entry, err := entryRepo.Get(ctx, cmd.TenantID(), cmd.EntryID())
	if err != nil {
		return err
	}

	if err = entry.Amend(cmd.Window(), cmd.Note()); err != nil {
		return err
	}

	if err = entryRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
