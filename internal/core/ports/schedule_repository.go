package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
)

// ScheduleEventRepository defines the persistence contract for schedule event
// aggregates and their status history.
type ScheduleEventRepository interface {
	// Add persists a new schedule event to storage.
	Add(ctx context.Context, aggregate *schedule.Event) error

	// Update persists changes to an existing schedule event.
	Update(ctx context.Context, aggregate *schedule.Event) error

	// Get retrieves a schedule event by its unique identifier, scoped to the
	// tenant. Returns errs.ObjectNotFoundError when no such event exists.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*schedule.Event, error)

	// Delete permanently removes an event and its status history. Returns
	// errs.ObjectNotFoundError when no such event exists.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error

	// GetAllActiveForCrew retrieves the events that currently occupy any of
	// the given crew members (Planned, Confirmed or InProgress). This is the
	// candidate set for conflict detection.
	GetAllActiveForCrew(ctx context.Context, tenantID kernel.UUID, crewIDs []kernel.UUID) ([]*schedule.Event, error)

	// GetAllActive retrieves every event of the tenant that occupies crew
	// time, used to build the availability index for batch optimization.
	GetAllActive(ctx context.Context, tenantID kernel.UUID) ([]*schedule.Event, error)

	// GetAllForJob retrieves every event attached to a job, regardless of status.
	GetAllForJob(ctx context.Context, tenantID, jobID kernel.UUID) ([]*schedule.Event, error)

	// AddStatusLog appends a status transition record to the event's history.
	AddStatusLog(ctx context.Context, logRow *schedule.EventStatusLog) error
}

// TimeEntryRepository defines the persistence contract for logged work time.
type TimeEntryRepository interface {
	// Add persists a new time entry.
	Add(ctx context.Context, entry *schedule.TimeEntry) error

	// Update persists an amended time entry.
	Update(ctx context.Context, entry *schedule.TimeEntry) error

	// Get retrieves a time entry by id, scoped to the tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*schedule.TimeEntry, error)

	// Delete permanently removes a time entry. Returns
	// errs.ObjectNotFoundError when no such entry exists.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error

	// GetAllForJob retrieves the time entries logged against a job.
	GetAllForJob(ctx context.Context, tenantID, jobID kernel.UUID) ([]*schedule.TimeEntry, error)
}
