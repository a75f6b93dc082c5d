package services

import (
	"context"
	"sort"

	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
)

// Assignment is a single proposed crew booking for a job.
type Assignment struct {
	JobID        kernel.UUID
	CrewMemberID kernel.UUID
	Window       kernel.TimeWindow
}

// UnassignedJob names a job the optimizer could not place, with a
// human-readable reason.
type UnassignedJob struct {
	JobID  kernel.UUID
	Reason string
}

// OptimizationPlan is the optimizer output: a proposal only, nothing is
// persisted until the caller turns assignments into schedule events.
type OptimizationPlan struct {
	Assignments []Assignment
	Unassigned  []UnassignedJob
}

const (
	reasonNoQualifiedCrew = "no active crew member has the required skills"
	reasonNoFreeSlot      = "no free slot within the planning horizon"
)

// ScheduleOptimizer is a domain service that proposes crew assignments for a
// batch of unscheduled jobs.
//
// The algorithm is deterministic: the same jobs, crew and index state always
// produce the same plan.
//
// Placement order:
//   - jobs are processed by descending priority, ties broken by ascending
//     creation time, then by job id
//   - for each job, active crew members whose skill set covers the job's
//     required skills are considered in ascending crew id order
//   - the first candidate with a free slot in the horizon wins, taking the
//     earliest slot their availability allows
//   - each placement is reserved in the index so later jobs see it
type ScheduleOptimizer struct{}

// NewScheduleOptimizer creates a new ScheduleOptimizer instance.
func NewScheduleOptimizer() ScheduleOptimizer {
	return ScheduleOptimizer{}
}

// Plan proposes assignments for the given jobs within the planning horizon.
// The index is mutated: every proposed assignment is reserved in it. The
// context is checked between jobs so long batches can be cancelled.
func (o ScheduleOptimizer) Plan(
	ctx context.Context,
	jobs []*job.Job,
	members []*crew.CrewMember,
	index *AvailabilityIndex,
	horizon kernel.TimeWindow,
) (OptimizationPlan, error) {
	var plan OptimizationPlan

	for _, j := range orderJobs(jobs) {
		if err := ctx.Err(); err != nil {
			return OptimizationPlan{}, err
		}

		candidates := qualifiedMembers(members, j.RequiredSkills())
		if len(candidates) == 0 {
			plan.Unassigned = append(plan.Unassigned, UnassignedJob{
				JobID:  j.ID(),
				Reason: reasonNoQualifiedCrew,
			})
			continue
		}

		placed := false
		for _, member := range candidates {
			slot, ok := index.FindEarliestSlot(member.ID(), j.EstimatedDuration(), horizon)
			if !ok {
				continue
			}
			index.Reserve(member.ID(), slot)
			plan.Assignments = append(plan.Assignments, Assignment{
				JobID:        j.ID(),
				CrewMemberID: member.ID(),
				Window:       slot,
			})
			placed = true
			break
		}

		if !placed {
			plan.Unassigned = append(plan.Unassigned, UnassignedJob{
				JobID:  j.ID(),
				Reason: reasonNoFreeSlot,
			})
		}
	}

	return plan, nil
}

// orderJobs returns a copy of jobs in placement order: priority descending,
// then creation time ascending, then id ascending.
func orderJobs(jobs []*job.Job) []*job.Job {
	ordered := make([]*job.Job, 0, len(jobs))
	for _, j := range jobs {
		if j != nil {
			ordered = append(ordered, j)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Priority() != b.Priority() {
			return a.Priority() > b.Priority()
		}
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().Before(b.CreatedAt())
		}
		return a.ID().String() < b.ID().String()
	})
	return ordered
}

// qualifiedMembers filters to active members covering the required skills,
// sorted by id so candidate order is stable.
func qualifiedMembers(members []*crew.CrewMember, requiredSkills []string) []*crew.CrewMember {
	out := make([]*crew.CrewMember, 0, len(members))
	for _, m := range members {
		if m == nil || !m.IsActive() {
			continue
		}
		if !m.HasSkills(requiredSkills) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}
