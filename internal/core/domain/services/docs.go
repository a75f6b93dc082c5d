// Package services contains stateless domain services implementing the
// scheduling and automation logic that spans multiple aggregates:
//
//   - ConflictDetector finds schedule events competing for the same crew member
//     in overlapping time windows.
//   - AvailabilityIndex answers "is this crew member free here" and searches for
//     the earliest free slot inside a planning horizon.
//   - DependencyGraph guards the job dependency edge set against cycles and
//     decides whether a job's prerequisites allow scheduling.
//   - ScheduleOptimizer produces a deterministic assignment proposal for a batch
//     of unscheduled jobs.
//   - AutomationEngine evaluates automation triggers against domain events and
//     dispatches their actions with per-trigger failure isolation.
package services
