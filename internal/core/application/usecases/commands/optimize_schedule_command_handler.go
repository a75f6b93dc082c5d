package commands

import (
	"context"

	"fieldservice/internal/core/domain/services"
)

// OptimizeScheduleCommandHandler runs the deterministic optimizer over the
// tenant's Planned jobs and returns a proposal. Nothing is persisted: the
// caller turns accepted assignments into schedule events through the regular
// scheduling command, which re-checks conflicts at booking time.
type OptimizeScheduleCommandHandler struct {
	uowFactory PlanningUoWFactory
	optimizer  services.ScheduleOptimizer
}

// NewOptimizeScheduleCommandHandler creates a handler for schedule optimization.
func NewOptimizeScheduleCommandHandler(uowFactory PlanningUoWFactory) OptimizeScheduleCommandHandler {
	return OptimizeScheduleCommandHandler{
		uowFactory: uowFactory,
		optimizer:  services.NewScheduleOptimizer(),
	}
}

// Handle processes the optimization command and returns the proposed plan.
func (h OptimizeScheduleCommandHandler) Handle(
	ctx context.Context,
	cmd OptimizeScheduleCommand,
) (services.OptimizationPlan, error) {
	if err := cmd.Validate(); err != nil {
		return services.OptimizationPlan{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.OptimizationPlan{}, err
	}

	// Read-only use case: the transaction only pins a consistent snapshot.
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobs, err := uow.JobRepository().GetAllUnscheduled(ctx, cmd.TenantID())
	if err != nil {
		return services.OptimizationPlan{}, err
	}

	members, err := uow.CrewRepository().GetAllActive(ctx, cmd.TenantID())
	if err != nil {
		return services.OptimizationPlan{}, err
	}

	events, err := uow.ScheduleEventRepository().GetAllActive(ctx, cmd.TenantID())
	if err != nil {
		return services.OptimizationPlan{}, err
	}

	index := services.BuildAvailabilityIndex(members, events)
	return h.optimizer.Plan(ctx, jobs, members, index, cmd.Horizon())
}
