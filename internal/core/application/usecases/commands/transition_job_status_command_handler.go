package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/core/domain/services"
)

// TransitionJobStatusCommandHandler moves a job through its lifecycle.
// The current status is re-read inside the transaction, so a stale client can
// never apply a transition that the freshly loaded state forbids. Every
// accepted transition writes a status-log row and enqueues a STATUS_CHANGE
// automation event atomically with the job update.
//
// Moving to Scheduled is additionally gated on the dependency graph: a job
// with incomplete prerequisites is rejected with UnmetDependencyError.
type TransitionJobStatusCommandHandler struct {
	uowFactory JobGraphUoWFactory
}

// NewTransitionJobStatusCommandHandler creates a handler for job status transitions.
func NewTransitionJobStatusCommandHandler(uowFactory JobGraphUoWFactory) TransitionJobStatusCommandHandler {
	return TransitionJobStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
func (h TransitionJobStatusCommandHandler) Handle(ctx context.Context, cmd TransitionJobStatusCommand) error {
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

	if cmd.Target() == job.StatusScheduled {
		if err = h.checkPrerequisites(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	previous := aggregate.Status()
	logRow, err := aggregate.TransitionTo(cmd.Target(), cmd.Actor(), cmd.Reason(), cmd.Notes())
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
			"newStatus":      cmd.Target().String(),
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

// checkPrerequisites rejects the transition when any prerequisite job of the
// aggregate is not yet Completed.
func (h TransitionJobStatusCommandHandler) checkPrerequisites(
	ctx context.Context,
	uow JobGraphUoW,
	aggregate *job.Job,
) error {
	edges, err := uow.DependencyRepository().GetAllForTenant(ctx, aggregate.TenantID())
	if err != nil {
		return err
	}

	graph := services.NewDependencyGraph(edges)
	prereqIDs := graph.Prerequisites(aggregate.ID())
	if len(prereqIDs) == 0 {
		return nil
	}

	prereqs, err := uow.JobRepository().GetMany(ctx, aggregate.TenantID(), prereqIDs)
	if err != nil {
		return err
	}

	statuses := make(map[kernel.UUID]job.Status, len(prereqs))
	for _, p := range prereqs {
		statuses[p.ID()] = p.Status()
	}

	blocking := graph.BlockingPrerequisites(aggregate.ID(), func(id kernel.UUID) (job.Status, bool) {
		s, ok := statuses[id]
		return s, ok
	})
	if len(blocking) > 0 {
		return NewUnmetDependencyError(blocking)
	}
	return nil
}
