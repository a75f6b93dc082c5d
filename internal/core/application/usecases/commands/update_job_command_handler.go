package commands

import (
	"context"
)

// UpdateJobCommandHandler handles updates to a job's descriptive fields.
// Terminal jobs reject updates at the domain level.
type UpdateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewUpdateJobCommandHandler creates a handler for job update operations.
func NewUpdateJobCommandHandler(uowFactory JobUoWFactory) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job update command.
func (h UpdateJobCommandHandler) Handle(ctx context.Context, cmd UpdateJobCommand) error {
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

	jobRepo := uow.JobRepository()

	aggregate, err := jobRepo.Get(ctx, cmd.TenantID(), cmd.JobID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(cmd.Title(), cmd.Priority(), cmd.EstimatedDuration()); err != nil {
		return err
	}
	if err = aggregate.SetRequirements(cmd.RequiredSkills(), cmd.RequiredEquipment()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
