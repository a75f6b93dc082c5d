package commands

import (
	"context"
)

// DeactivateCrewMemberCommandHandler soft-deletes a crew member by clearing
// the active flag.
type DeactivateCrewMemberCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewDeactivateCrewMemberCommandHandler creates a handler for crew member deactivation.
func NewDeactivateCrewMemberCommandHandler(uowFactory CrewUoWFactory) DeactivateCrewMemberCommandHandler {
	return DeactivateCrewMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command. Deactivating an already inactive
// member is a no-op and succeeds.
func (h DeactivateCrewMemberCommandHandler) Handle(ctx context.Context, cmd DeactivateCrewMemberCommand) error {
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

	member.Deactivate()

	if err = crewRepo.Update(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
