package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// JobRepository returns a JobRepository bound to the current transaction.
	JobRepository() JobRepository

	// CrewRepository returns a CrewRepository bound to the current transaction.
	CrewRepository() CrewRepository

	// ScheduleEventRepository returns a ScheduleEventRepository bound to the
	// current transaction.
	ScheduleEventRepository() ScheduleEventRepository

	// TimeEntryRepository returns a TimeEntryRepository bound to the current
	// transaction.
	TimeEntryRepository() TimeEntryRepository

	// DependencyRepository returns a DependencyRepository bound to the current
	// transaction.
	DependencyRepository() DependencyRepository

	// TriggerRepository returns a TriggerRepository bound to the current
	// transaction.
	TriggerRepository() TriggerRepository

	// DispatchOutbox returns a DispatchOutbox bound to the current transaction.
	DispatchOutbox() DispatchOutbox
}
