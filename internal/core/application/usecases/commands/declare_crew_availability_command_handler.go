package commands

import (
	"context"
)

// DeclareCrewAvailabilityCommandHandler declares an availability or blackout
// window for a crew member. Overlap with the member's existing windows is
// rejected by the aggregate with crew.ErrAvailabilityOverlap.
type DeclareCrewAvailabilityCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewDeclareCrewAvailabilityCommandHandler creates a handler for availability declarations.
func NewDeclareCrewAvailabilityCommandHandler(uowFactory CrewUoWFactory) DeclareCrewAvailabilityCommandHandler {
	return DeclareCrewAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability declaration command.
func (h DeclareCrewAvailabilityCommandHandler) Handle(ctx context.Context, cmd DeclareCrewAvailabilityCommand) error {
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

	if _, err = member.DeclareAvailability(cmd.Window(), cmd.Kind()); err != nil {
		return err
	}

	if err = crewRepo.Update(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
