package commands

import (
	"context"
)

// UpdateTriggerCommandHandler updates an automation trigger's rule fields.
type UpdateTriggerCommandHandler struct {
	uowFactory TriggerUoWFactory
}

// NewUpdateTriggerCommandHandler creates a handler for trigger updates.
func NewUpdateTriggerCommandHandler(uowFactory TriggerUoWFactory) UpdateTriggerCommandHandler {
	return UpdateTriggerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trigger update command.
func (h UpdateTriggerCommandHandler) Handle(ctx context.Context, cmd UpdateTriggerCommand) error {
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

	triggerRepo := uow.TriggerRepository()

	aggregate, err := triggerRepo.Get(ctx, cmd.TenantID(), cmd.TriggerID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.Condition(), cmd.ActionType(), cmd.ActionConfig(), cmd.IsActive()); err != nil {
		return err
	}

	if err = triggerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
