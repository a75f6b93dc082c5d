package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"
)

// CancelJobCommandHandler handles job cancellation, the soft-delete of the
// system. The transition is recorded in the status history and announced as a
// STATUS_CHANGE automation event.
type CancelJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCancelJobCommandHandler creates a handler for job cancellation operations.
func NewCancelJobCommandHandler(uowFactory JobUoWFactory) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job cancellation command. Already terminal jobs are
// rejected by the status machine with ErrInvalidTransition.
func (h CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) error {
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

	previous := aggregate.Status()
	logRow, err := aggregate.TransitionTo(job.StatusCancelled, cmd.Actor(), cmd.Reason(), "")
	if err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = jobRepo.AddStatusLog(ctx, logRow); err != nil {
		return err
	}

	dispatch, err := trigger.NewDispatch(
		kernel.NewUUID(), cmd.TenantID(), cmd.JobID(),
		trigger.TypeStatusChange, logRow.OccurredAt(),
		map[string]any{
			"previousStatus": previous.String(),
			"newStatus":      job.StatusCancelled.String(),
			"reason":         cmd.Reason(),
			"actor":          cmd.Actor(),
		},
	)
	if err != nil {
		return err
	}
	if err = uow.DispatchOutbox().Add(ctx, dispatch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
