package commands

import (
	"context"
)

// DeleteTriggerCommandHandler permanently removes an automation trigger.
type DeleteTriggerCommandHandler struct {
	uowFactory TriggerUoWFactory
}

// NewDeleteTriggerCommandHandler creates a handler for trigger deletion.
func NewDeleteTriggerCommandHandler(uowFactory TriggerUoWFactory) DeleteTriggerCommandHandler {
	return DeleteTriggerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trigger deletion command.
func (h DeleteTriggerCommandHandler) Handle(ctx context.Context, cmd DeleteTriggerCommand) error {
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

	if err := uow.TriggerRepository().Delete(ctx, cmd.TenantID(), cmd.TriggerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
