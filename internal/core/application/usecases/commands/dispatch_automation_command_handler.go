package commands

import (
	"context"

	"fieldservice/internal/core/domain/services"
)

// DispatchAutomationCommandHandler drains pending outbox rows and runs each
// through the automation engine. Rows are processed independently: an error on
// one row counts a failed attempt on that row and the pass moves on.
type DispatchAutomationCommandHandler struct {
	uowFactory AutomationUoWFactory
	engine     *services.AutomationEngine
}

// NewDispatchAutomationCommandHandler creates a handler for outbox draining.
func NewDispatchAutomationCommandHandler(
	uowFactory AutomationUoWFactory,
	engine *services.AutomationEngine,
) DispatchAutomationCommandHandler {
	return DispatchAutomationCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle processes one drain pass and returns the number of rows processed
// successfully.
func (h DispatchAutomationCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchAutomationCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.DispatchOutbox()
	triggerRepo := uow.TriggerRepository()

	pending, err := outbox.GetAllPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, row := range pending {
		triggers, lookupErr := triggerRepo.GetAllActiveForType(ctx, row.TenantID(), row.EventType())
		if lookupErr != nil {
			row.MarkAttemptFailed()
			if updateErr := outbox.Update(ctx, row); updateErr != nil {
				return processed, updateErr
			}
			continue
		}

		event := services.DomainEvent{
			Type:       row.EventType(),
			TenantID:   row.TenantID(),
			JobID:      row.JobID(),
			OccurredAt: row.OccurredAt(),
			Context:    row.Payload(),
		}

		for _, fired := range h.engine.Evaluate(ctx, event, triggers) {
			if updateErr := triggerRepo.Update(ctx, fired); updateErr != nil {
				return processed, updateErr
			}
		}

		row.MarkProcessed()
		if updateErr := outbox.Update(ctx, row); updateErr != nil {
			return processed, updateErr
		}
		processed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return processed, nil
}
