package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/pkg/errs"
)

// AddDependencyCommandHandler adds a dependency edge between two jobs.
// Both jobs must exist in the tenant, and the new edge must keep the tenant's
// dependency graph acyclic. The cycle check runs against the edge set read in
// the same transaction that inserts the edge.
type AddDependencyCommandHandler struct {
	uowFactory JobGraphUoWFactory
}

// NewAddDependencyCommandHandler creates a handler for dependency creation.
func NewAddDependencyCommandHandler(uowFactory JobGraphUoWFactory) AddDependencyCommandHandler {
	return AddDependencyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dependency creation command. Returns
// services.ErrCyclicDependency when the edge would close a cycle.
func (h AddDependencyCommandHandler) Handle(ctx context.Context, cmd AddDependencyCommand) error {
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

	jobs, err := uow.JobRepository().GetMany(ctx, cmd.TenantID(),
		[]kernel.UUID{cmd.DependentID(), cmd.PrerequisiteID()})
	if err != nil {
		return err
	}
	found := make(map[kernel.UUID]struct{}, len(jobs))
	for _, j := range jobs {
		found[j.ID()] = struct{}{}
	}
	for _, id := range []kernel.UUID{cmd.DependentID(), cmd.PrerequisiteID()} {
		if _, ok := found[id]; !ok {
			return errs.NewObjectNotFoundError("jobID", id)
		}
	}

	depRepo := uow.DependencyRepository()

	edges, err := depRepo.GetAllForTenant(ctx, cmd.TenantID())
	if err != nil {
		return err
	}

	graph := services.NewDependencyGraph(edges)
	if err = graph.AddEdge(cmd.DependentID(), cmd.PrerequisiteID()); err != nil {
		return err
	}

	edge, err := job.NewDependency(kernel.NewUUID(), cmd.TenantID(), cmd.DependentID(), cmd.PrerequisiteID())
	if err != nil {
		return err
	}
	if err = depRepo.Add(ctx, edge); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
