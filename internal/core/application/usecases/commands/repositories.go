// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fieldservice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface covering the repositories it
// touches, so tests only have to mock what is actually used.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// CrewRepoFactory provides access to the crew repository within a transaction.
	CrewRepoFactory interface {
		CrewRepository() ports.CrewRepository
	}

	// ScheduleRepoFactory provides access to the schedule event repository within a transaction.
	ScheduleRepoFactory interface {
		ScheduleEventRepository() ports.ScheduleEventRepository
	}

	// TimeEntryRepoFactory provides access to the time entry repository within a transaction.
	TimeEntryRepoFactory interface {
		TimeEntryRepository() ports.TimeEntryRepository
	}

	// DependencyRepoFactory provides access to the dependency repository within a transaction.
	DependencyRepoFactory interface {
		DependencyRepository() ports.DependencyRepository
	}

	// TriggerRepoFactory provides access to the trigger repository within a transaction.
	TriggerRepoFactory interface {
		TriggerRepository() ports.TriggerRepository
	}

	// OutboxFactory provides access to the automation outbox within a transaction.
	OutboxFactory interface {
		DispatchOutbox() ports.DispatchOutbox
	}

	// JobUoW manages transactions for commands that modify job aggregates and
	// enqueue automation events.
	JobUoW interface {
		TxManager
		JobRepoFactory
		OutboxFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// JobGraphUoW adds the dependency edge set to the job transaction, used by
	// commands that must consult or modify the dependency graph.
	JobGraphUoW interface {
		TxManager
		JobRepoFactory
		DependencyRepoFactory
		OutboxFactory
	}

	// JobGraphUoWFactory creates new job+dependency unit of work instances.
	JobGraphUoWFactory interface {
		Create() JobGraphUoW
	}

	// JobPurgeUoW covers the guarded hard delete of a job, which must verify
	// that no events or time entries still reference it.
	JobPurgeUoW interface {
		TxManager
		JobRepoFactory
		ScheduleRepoFactory
		TimeEntryRepoFactory
	}

	// JobPurgeUoWFactory creates new job purge unit of work instances.
	JobPurgeUoWFactory interface {
		Create() JobPurgeUoW
	}

	// EventUoW manages transactions for event-only operations.
	EventUoW interface {
		TxManager
		ScheduleRepoFactory
	}

	// EventUoWFactory creates new event unit of work instances.
	EventUoWFactory interface {
		Create() EventUoW
	}

	// CrewUoW manages transactions for crew-only operations.
	CrewUoW interface {
		TxManager
		CrewRepoFactory
	}

	// CrewUoWFactory creates new crew unit of work instances.
	CrewUoWFactory interface {
		Create() CrewUoW
	}

	// ScheduleUoW manages transactions for scheduling commands, which cut
	// across jobs, crew, events and the dependency graph.
	ScheduleUoW interface {
		TxManager
		JobRepoFactory
		CrewRepoFactory
		ScheduleRepoFactory
		DependencyRepoFactory
		OutboxFactory
	}

	// ScheduleUoWFactory creates new schedule unit of work instances.
	ScheduleUoWFactory interface {
		Create() ScheduleUoW
	}

	// TimeEntryUoW manages transactions for time logging commands.
	TimeEntryUoW interface {
		TxManager
		JobRepoFactory
		TimeEntryRepoFactory
	}

	// TimeEntryUoWFactory creates new time entry unit of work instances.
	TimeEntryUoWFactory interface {
		Create() TimeEntryUoW
	}

	// TriggerUoW manages transactions for trigger administration commands.
	TriggerUoW interface {
		TxManager
		TriggerRepoFactory
	}

	// TriggerUoWFactory creates new trigger unit of work instances.
	TriggerUoWFactory interface {
		Create() TriggerUoW
	}

	// AutomationUoW manages transactions for the outbox dispatch job.
	AutomationUoW interface {
		TxManager
		TriggerRepoFactory
		OutboxFactory
	}

	// AutomationUoWFactory creates new automation unit of work instances.
	AutomationUoWFactory interface {
		Create() AutomationUoW
	}

	// PlanningUoW provides the read set of the schedule optimizer.
	PlanningUoW interface {
		TxManager
		JobRepoFactory
		CrewRepoFactory
		ScheduleRepoFactory
	}

	// PlanningUoWFactory creates new planning unit of work instances.
	PlanningUoWFactory interface {
		Create() PlanningUoW
	}
)
