package commands

import (
	"context"
)

// RemoveDependencyCommandHandler withdraws a dependency edge. Removing an edge
// can never create a cycle, so no graph check is needed.
type RemoveDependencyCommandHandler struct {
	uowFactory JobGraphUoWFactory
}

// NewRemoveDependencyCommandHandler creates a handler for dependency removal.
func NewRemoveDependencyCommandHandler(uowFactory JobGraphUoWFactory) RemoveDependencyCommandHandler {
	return RemoveDependencyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dependency removal command.
func (h RemoveDependencyCommandHandler) Handle(ctx context.Context, cmd RemoveDependencyCommand) error {
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

	if err := uow.DependencyRepository().Remove(ctx,
		cmd.TenantID(), cmd.DependentID(), cmd.PrerequisiteID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
