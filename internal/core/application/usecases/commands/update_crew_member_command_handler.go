package commands

import (
	"context"
)

// UpdateCrewMemberCommandHandler updates a crew member's details and active
// flag. Deactivation does not touch existing schedule events; it only removes
// the member from future candidate sets.
type UpdateCrewMemberCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewUpdateCrewMemberCommandHandler creates a handler for crew member updates.
func NewUpdateCrewMemberCommandHandler(uowFactory CrewUoWFactory) UpdateCrewMemberCommandHandler {
	return UpdateCrewMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the crew member update command.
func (h UpdateCrewMemberCommandHandler) Handle(ctx context.Context, cmd UpdateCrewMemberCommand) error {
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

	if err = member.UpdateDetails(cmd.Name(), cmd.Skills(), cmd.MaxHoursPerDay(), cmd.MaxHoursPerWeek()); err != nil {
		return err
	}
	if cmd.IsActive() {
		member.Activate()
	} else {
		member.Deactivate()
	}

	if err = crewRepo.Update(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
