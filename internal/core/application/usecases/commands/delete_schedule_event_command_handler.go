package commands

import (
	"context"
)

// DeleteScheduleEventCommandHandler permanently removes a schedule event.
type DeleteScheduleEventCommandHandler struct {
	uowFactory EventUoWFactory
}

// NewDeleteScheduleEventCommandHandler creates a handler for event deletion.
func NewDeleteScheduleEventCommandHandler(uowFactory EventUoWFactory) DeleteScheduleEventCommandHandler {
	return DeleteScheduleEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the event deletion command.
func (h DeleteScheduleEventCommandHandler) Handle(ctx context.Context, cmd DeleteScheduleEventCommand) error {
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

	if err := uow.ScheduleEventRepository().Delete(ctx, cmd.TenantID(), cmd.EventID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
