// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: all repositories
// obtained from it share the same database transaction, so a job transition,
// its status log row and its outbox row commit or roll back together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.JobRepository().Add(ctx, job); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation must use its own unit of work instance; instances
// are not safe for concurrent use.
package postgres

import (
	"context"

	"fieldservice/internal/adapters/out/postgres/crewrepo"
	"fieldservice/internal/adapters/out/postgres/dependencyrepo"
	"fieldservice/internal/adapters/out/postgres/jobrepo"
	"fieldservice/internal/adapters/out/postgres/schedulerepo"
	"fieldservice/internal/adapters/out/postgres/triggerrepo"
	"fieldservice/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database handle. Every call to Create returns a fresh unit of work with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction across the repositories of
// a single business operation. Repositories obtained before Begin run their
// statements in auto-commit mode; after Begin they share the transaction until
// Commit or Rollback closes it.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// JobRepository returns a job repository bound to the current transaction.
func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn())
}

// CrewRepository returns a crew repository bound to the current transaction.
func (uow *GormUnitOfWork) CrewRepository() ports.CrewRepository {
	return crewrepo.NewGormCrewRepository(uow.conn())
}

// ScheduleEventRepository returns a schedule event repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ScheduleEventRepository() ports.ScheduleEventRepository {
	return schedulerepo.NewGormScheduleEventRepository(uow.conn())
}

// TimeEntryRepository returns a time entry repository bound to the current
// transaction.
func (uow *GormUnitOfWork) TimeEntryRepository() ports.TimeEntryRepository {
	return schedulerepo.NewGormTimeEntryRepository(uow.conn())
}

// DependencyRepository returns a dependency repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DependencyRepository() ports.DependencyRepository {
	return dependencyrepo.NewGormDependencyRepository(uow.conn())
}

// TriggerRepository returns a trigger repository bound to the current
// transaction.
func (uow *GormUnitOfWork) TriggerRepository() ports.TriggerRepository {
	return triggerrepo.NewGormTriggerRepository(uow.conn())
}

// DispatchOutbox returns an automation outbox bound to the current transaction.
func (uow *GormUnitOfWork) DispatchOutbox() ports.DispatchOutbox {
	return triggerrepo.NewGormDispatchOutbox(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
