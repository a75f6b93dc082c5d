package commands

import (
	"context"
)

// RemoveCrewAvailabilityCommandHandler withdraws a declared availability window.
type RemoveCrewAvailabilityCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewRemoveCrewAvailabilityCommandHandler creates a handler for availability removal.
func NewRemoveCrewAvailabilityCommandHandler(uowFactory CrewUoWFactory) RemoveCrewAvailabilityCommandHandler {
	return RemoveCrewAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability removal command.
func (h RemoveCrewAvailabilityCommandHandler) Handle(ctx context.Context, cmd RemoveCrewAvailabilityCommand) error {
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

	crewRepo := uow.CrewRepository()

	member, err := crewRepo.Get(ctx, cmd.TenantID(), cmd.CrewMemberID())
	if err != nil {
		return err
	}

	if err = member.RemoveAvailability(cmd.AvailabilityID()); err != nil {
		return err
	}

	if err = crewRepo.Update(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
