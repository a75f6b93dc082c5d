package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/trigger"
)

// CreateTriggerCommandHandler registers a new automation trigger.
type CreateTriggerCommandHandler struct {
	uowFactory TriggerUoWFactory
}

// NewCreateTriggerCommandHandler creates a handler for trigger registration.
func NewCreateTriggerCommandHandler(uowFactory TriggerUoWFactory) CreateTriggerCommandHandler {
	return CreateTriggerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trigger creation command.
func (h CreateTriggerCommandHandler) Handle(ctx context.Context, cmd CreateTriggerCommand) error {
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

	aggregate, err := trigger.NewTrigger(
		cmd.TriggerID(), cmd.TenantID(), cmd.JobID(),
		cmd.TriggerType(), cmd.Condition(),
		cmd.ActionType(), cmd.ActionConfig(),
	)
	if err != nil {
		return err
	}

	if err = uow.TriggerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
