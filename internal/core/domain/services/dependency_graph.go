package services

import (
	"errors"
	"sort"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
)

// ErrCyclicDependency is returned when adding a dependency edge would make the
// dependency graph cyclic, including the degenerate self-dependency case.
var ErrCyclicDependency = errors.New("dependency would create a cycle")

// DependencyGraph is a domain service over the "depends on" edges between jobs
// of a tenant. Edges point from the dependent job to its prerequisite; the
// graph must stay acyclic at all times.
type DependencyGraph struct {
	prerequisites map[kernel.UUID][]kernel.UUID
}

// NewDependencyGraph builds a graph from the persisted dependency edges.
func NewDependencyGraph(edges []*job.Dependency) *DependencyGraph {
	g := &DependencyGraph{
		prerequisites: make(map[kernel.UUID][]kernel.UUID, len(edges)),
	}
	for _, edge := range edges {
		if edge == nil {
			continue
		}
		g.prerequisites[edge.DependentID()] = append(g.prerequisites[edge.DependentID()], edge.PrerequisiteID())
	}
	for id := range g.prerequisites {
		sortUUIDs(g.prerequisites[id])
	}
	return g
}

// Prerequisites returns the direct prerequisites of a job, sorted by id.
func (g *DependencyGraph) Prerequisites(jobID kernel.UUID) []kernel.UUID {
	return g.prerequisites[jobID]
}

// WouldCreateCycle reports whether adding the edge dependent -> prerequisite
// would close a cycle. That is the case exactly when the dependent job is
// already reachable from the prerequisite by following existing edges.
func (g *DependencyGraph) WouldCreateCycle(dependentID, prerequisiteID kernel.UUID) bool {
	if dependentID.IsEqual(prerequisiteID) {
		return true
	}
	return g.reachable(prerequisiteID, dependentID)
}

// AddEdge records a validated edge in the in-memory graph. It rejects the edge
// with ErrCyclicDependency instead of corrupting the graph.
func (g *DependencyGraph) AddEdge(dependentID, prerequisiteID kernel.UUID) error {
	if g.WouldCreateCycle(dependentID, prerequisiteID) {
		return ErrCyclicDependency
	}
	g.prerequisites[dependentID] = append(g.prerequisites[dependentID], prerequisiteID)
	sortUUIDs(g.prerequisites[dependentID])
	return nil
}

// BlockingPrerequisites returns the direct prerequisites of a job that are not
// yet Completed. statusOf resolves a job id to its current status; ids it
// cannot resolve are treated as blocking, since an unknown prerequisite cannot
// be proven complete.
func (g *DependencyGraph) BlockingPrerequisites(
	jobID kernel.UUID,
	statusOf func(kernel.UUID) (job.Status, bool),
) []kernel.UUID {
	var blocking []kernel.UUID
	for _, prereqID := range g.prerequisites[jobID] {
		status, ok := statusOf(prereqID)
		if !ok || status != job.StatusCompleted {
			blocking = append(blocking, prereqID)
		}
	}
	return blocking
}

// CanSchedule reports whether every direct prerequisite of the job is Completed.
func (g *DependencyGraph) CanSchedule(
	jobID kernel.UUID,
	statusOf func(kernel.UUID) (job.Status, bool),
) bool {
	return len(g.BlockingPrerequisites(jobID, statusOf)) == 0
}

// reachable walks prerequisite edges from start looking for target.
func (g *DependencyGraph) reachable(start, target kernel.UUID) bool {
	visited := make(map[kernel.UUID]struct{})
	stack := []kernel.UUID{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.IsEqual(target) {
			return true
		}
		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}
		stack = append(stack, g.prerequisites[current]...)
	}
	return false
}

func sortUUIDs(ids []kernel.UUID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
}
