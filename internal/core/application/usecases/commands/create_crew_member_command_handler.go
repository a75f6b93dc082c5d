package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/crew"
)

// CreateCrewMemberCommandHandler handles crew member registration.
type CreateCrewMemberCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewCreateCrewMemberCommandHandler creates a handler for crew registration.
func NewCreateCrewMemberCommandHandler(uowFactory CrewUoWFactory) CreateCrewMemberCommandHandler {
	return CreateCrewMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the crew member creation command. Working-hour limits are
// validated by the aggregate.
func (h CreateCrewMemberCommandHandler) Handle(ctx context.Context, cmd CreateCrewMemberCommand) error {
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

	member, err := crew.NewCrewMember(
		cmd.CrewMemberID(), cmd.TenantID(),
		cmd.Name(), cmd.Skills(),
		cmd.MaxHoursPerDay(), cmd.MaxHoursPerWeek(),
	)
	if err != nil {
		return err
	}

	if err = uow.CrewRepository().Add(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
