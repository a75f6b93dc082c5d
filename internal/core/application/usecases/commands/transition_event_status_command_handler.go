package commands

import (
	"context"
)

// TransitionEventStatusCommandHandler moves a schedule event through its
// lifecycle and appends the status-log row in the same transaction. Job status
// stays an explicit, separate decision: starting an event does not silently
// start its job.
type TransitionEventStatusCommandHandler struct {
	uowFactory ScheduleUoWFactory
}

// NewTransitionEventStatusCommandHandler creates a handler for event status transitions.
func NewTransitionEventStatusCommandHandler(uowFactory ScheduleUoWFactory) TransitionEventStatusCommandHandler {
	return TransitionEventStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the event status transition command.
func (h TransitionEventStatusCommandHandler) Handle(ctx context.Context, cmd TransitionEventStatusCommand) error {
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

	scheduleRepo := uow.ScheduleEventRepository()

	event, err := scheduleRepo.Get(ctx, cmd.TenantID(), cmd.EventID())
	if err != nil {
		return err
	}

	logRow, err := event.TransitionTo(cmd.Target(), cmd.Actor(), cmd.Reason())
	if err != nil {
		return err
	}

	if err = scheduleRepo.Update(ctx, event); err != nil {
		return err
	}
	if err = scheduleRepo.AddStatusLog(ctx, logRow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
