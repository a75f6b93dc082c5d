package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/schedule"
)

// LogTimeEntryCommandHandler records worked time against a job. The job must
// exist, but unlike scheduling this accepts any job status.
type LogTimeEntryCommandHandler struct {
	uowFactory TimeEntryUoWFactory
}

// NewLogTimeEntryCommandHandler creates a handler for time logging.
func NewLogTimeEntryCommandHandler(uowFactory TimeEntryUoWFactory) LogTimeEntryCommandHandler {
	return LogTimeEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the time logging command.
func (h LogTimeEntryCommandHandler) Handle(ctx context.Context, cmd LogTimeEntryCommand) error {
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

	if _, err := uow.JobRepository().Get(ctx, cmd.TenantID(), cmd.JobID()); err != nil {
		return err
	}

	entry, err := schedule.NewTimeEntry(
		cmd.EntryID(), cmd.TenantID(), cmd.JobID(), cmd.CrewMemberID(),
		cmd.Window(), cmd.Note(),
	)
	if err != nil {
		return err
	}

	if err = uow.TimeEntryRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
