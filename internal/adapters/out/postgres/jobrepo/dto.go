// Package jobrepo provides data transfer objects and mapping functions for job persistence.
// This package implements the repository pattern for the job aggregate, handling
// the conversion between domain entities and database representations.
package jobrepo

import (
	"time"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JobDTO represents the database structure for persisting job aggregates.
// Statuses and job numbers are stored in their canonical string form so the
// read-side queries can serve them without another mapping step.
type JobDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TenantID          uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_jobs_tenant_number"`
	CustomerID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	SourceQuoteID     *uuid.UUID     `gorm:"type:uuid"`
	Number            string         `gorm:"type:varchar(32);not null;uniqueIndex:idx_jobs_tenant_number"`
	Title             string         `gorm:"type:varchar(255);not null"`
	Status            string         `gorm:"type:varchar(32);not null;index"`
	Priority          int            `gorm:"type:int;not null"`
	EstimatedDuration int64          `gorm:"type:bigint;not null"`
	ScheduledStart    *time.Time     `gorm:"type:timestamptz"`
	ScheduledEnd      *time.Time     `gorm:"type:timestamptz"`
	RequiredSkills    pq.StringArray `gorm:"type:text[]"`
	RequiredEquipment pq.StringArray `gorm:"type:text[]"`
	CreatedBy         string         `gorm:"type:varchar(255);not null"`
	CreatedAt         time.Time      `gorm:"type:timestamptz;not null"`
	Tasks             []TaskDTO      `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// TaskDTO represents the database structure for persisting task entities.
// Links to its job via foreign key; the sort order preserves checklist position.
type TaskDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID             uuid.UUID `gorm:"type:uuid;not null;index"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Status            string    `gorm:"type:varchar(32);not null"`
	EstimatedDuration int64     `gorm:"type:bigint;not null"`
	ActualDuration    int64     `gorm:"type:bigint;not null"`
	SortOrder         int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "job_tasks"
}

// StatusLogDTO represents the database structure for the append-only job status history.
type StatusLogDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID          uuid.UUID `gorm:"type:uuid;not null;index"`
	PreviousStatus string    `gorm:"type:varchar(32);not null"`
	NextStatus     string    `gorm:"type:varchar(32);not null"`
	Reason         string    `gorm:"type:text"`
	Notes          string    `gorm:"type:text"`
	Actor          string    `gorm:"type:varchar(255);not null"`
	OccurredAt     time.Time `gorm:"type:timestamptz;not null;index"`
}

// TableName specifies the database table name for job status log entries.
func (StatusLogDTO) TableName() string {
	return "job_status_logs"
}

// SequenceDTO represents the per-tenant, per-year job number counter.
// Allocation happens through an atomic upsert in NextSequence.
type SequenceDTO struct {
	TenantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year     int       `gorm:"primaryKey"`
	Value    int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for job number sequences.
func (SequenceDTO) TableName() string {
	return "job_sequences"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	jobID := aggregate.ID().Bytes()

	var sourceQuoteID *uuid.UUID
	if aggregate.SourceQuoteID() != nil {
		raw := aggregate.SourceQuoteID().Bytes()
		sourceQuoteID = &raw
	}

	var scheduledStart, scheduledEnd *time.Time
	if window := aggregate.ScheduledWindow(); window != nil {
		start, end := window.Start(), window.End()
		scheduledStart, scheduledEnd = &start, &end
	}

	tasks := make([]TaskDTO, 0, len(aggregate.Tasks()))
	for _, t := range aggregate.Tasks() {
		tasks = append(tasks, TaskDTO{
			ID:                t.ID().Bytes(),
			JobID:             jobID,
			Title:             t.Title(),
			Status:            t.Status().String(),
			EstimatedDuration: int64(t.EstimatedDuration()),
			ActualDuration:    int64(t.ActualDuration()),
			SortOrder:         t.SortOrder(),
		})
	}

	return JobDTO{
		ID:                jobID,
		TenantID:          aggregate.TenantID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		SourceQuoteID:     sourceQuoteID,
		Number:            aggregate.Number().String(),
		Title:             aggregate.Title(),
		Status:            aggregate.Status().String(),
		Priority:          aggregate.Priority(),
		EstimatedDuration: int64(aggregate.EstimatedDuration()),
		ScheduledStart:    scheduledStart,
		ScheduledEnd:      scheduledEnd,
		RequiredSkills:    pq.StringArray(aggregate.RequiredSkills()),
		RequiredEquipment: pq.StringArray(aggregate.RequiredEquipment()),
		CreatedBy:         aggregate.CreatedBy(),
		CreatedAt:         aggregate.CreatedAt(),
		Tasks:             tasks,
	}
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate including all tasks using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var sourceQuoteID *kernel.UUID
	if dto.SourceQuoteID != nil {
		quoteID, quoteErr := kernel.UUIDFromBytes((*dto.SourceQuoteID)[:])
		if quoteErr != nil {
			return nil, quoteErr
		}
		sourceQuoteID = &quoteID
	}

	number, err := job.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}
	status, err := job.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var scheduledWindow *kernel.TimeWindow
	if dto.ScheduledStart != nil && dto.ScheduledEnd != nil {
		window, windowErr := kernel.NewTimeWindow(*dto.ScheduledStart, *dto.ScheduledEnd)
		if windowErr != nil {
			return nil, windowErr
		}
		scheduledWindow = &window
	}

	tasks := make([]*job.Task, 0, len(dto.Tasks))
	for _, taskDto := range dto.Tasks {
		task, taskErr := taskToDomain(taskDto)
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, task)
	}

	return job.RestoreJob(
		id, tenantID, customerID,
		sourceQuoteID,
		number,
		dto.Title,
		status,
		dto.Priority,
		time.Duration(dto.EstimatedDuration),
		scheduledWindow,
		dto.RequiredSkills,
		dto.RequiredEquipment,
		dto.CreatedBy,
		dto.CreatedAt,
		tasks,
	)
}

// taskToDomain converts a task DTO to a domain entity.
func taskToDomain(dto TaskDTO) (*job.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := job.TaskStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return job.RestoreTask(
		id,
		dto.Title,
		status,
		time.Duration(dto.EstimatedDuration),
		time.Duration(dto.ActualDuration),
		dto.SortOrder,
	)
}

// statusLogFromDomain converts a status log row to its database representation.
func statusLogFromDomain(logRow *job.StatusLog) StatusLogDTO {
	return StatusLogDTO{
		ID:             logRow.ID().Bytes(),
		JobID:          logRow.JobID().Bytes(),
		PreviousStatus: logRow.Previous().String(),
		NextStatus:     logRow.Next().String(),
		Reason:         logRow.Reason(),
		Notes:          logRow.Notes(),
		Actor:          logRow.Actor(),
		OccurredAt:     logRow.OccurredAt(),
	}
}
