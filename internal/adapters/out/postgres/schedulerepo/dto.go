// Package schedulerepo provides data transfer objects and mapping functions for
// schedule event and time entry persistence. Crew assignments are stored as a
// text array of UUID strings so conflict lookups can use the array overlap
// operator without a join table.
package schedulerepo

import (
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EventDTO represents the database structure for persisting schedule events.
type EventDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	JobID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	StartTime     time.Time      `gorm:"type:timestamptz;not null;index"`
	EndTime       time.Time      `gorm:"type:timestamptz;not null"`
	CrewMemberIDs pq.StringArray `gorm:"type:text[];not null"`
	Status        string         `gorm:"type:varchar(32);not null;index"`
	Notes         string         `gorm:"type:text"`
}

// TableName specifies the database table name for schedule events.
func (EventDTO) TableName() string {
	return "schedule_events"
}

// EventStatusLogDTO represents the append-only schedule event status history.
type EventStatusLogDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PreviousStatus string    `gorm:"type:varchar(32);not null"`
	NextStatus     string    `gorm:"type:varchar(32);not null"`
	Reason         string    `gorm:"type:text"`
	Actor          string    `gorm:"type:varchar(255);not null"`
	OccurredAt     time.Time `gorm:"type:timestamptz;not null;index"`
}

// TableName specifies the database table name for event status log entries.
func (EventStatusLogDTO) TableName() string {
	return "schedule_event_status_logs"
}

// TimeEntryDTO represents the database structure for logged work time.
type TimeEntryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	JobID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CrewMemberID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime    time.Time `gorm:"type:timestamptz;not null"`
	EndTime      time.Time `gorm:"type:timestamptz;not null"`
	Note         string    `gorm:"type:text"`
}

// TableName specifies the database table name for time entries.
func (TimeEntryDTO) TableName() string {
	return "time_entries"
}

// eventFromDomain converts a schedule event aggregate to its database representation.
func eventFromDomain(aggregate *schedule.Event) EventDTO {
	crewIDs := make(pq.StringArray, 0, len(aggregate.CrewIDs()))
	for _, id := range aggregate.CrewIDs() {
		crewIDs = append(crewIDs, id.String())
	}

	return EventDTO{
		ID:            aggregate.ID().Bytes(),
		TenantID:      aggregate.TenantID().Bytes(),
		JobID:         aggregate.JobID().Bytes(),
		StartTime:     aggregate.Window().Start(),
		EndTime:       aggregate.Window().End(),
		CrewMemberIDs: crewIDs,
		Status:        aggregate.Status().String(),
		Notes:         aggregate.Notes(),
	}
}

// eventToDomain converts a database DTO to a schedule event aggregate.
func eventToDomain(dto EventDTO) (*schedule.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}
	window, err := kernel.NewTimeWindow(dto.StartTime, dto.EndTime)
	if err != nil {
		return nil, err
	}
	status, err := schedule.EventStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	crewIDs := make([]kernel.UUID, 0, len(dto.CrewMemberIDs))
	for _, raw := range dto.CrewMemberIDs {
		crewID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		crewIDs = append(crewIDs, crewID)
	}

	return schedule.RestoreEvent(id, tenantID, jobID, window, crewIDs, status, dto.Notes)
}

// eventStatusLogFromDomain converts an event status log row to its database representation.
func eventStatusLogFromDomain(logRow *schedule.EventStatusLog) EventStatusLogDTO {
	return EventStatusLogDTO{
		ID:             logRow.ID().Bytes(),
		EventID:        logRow.EventID().Bytes(),
		PreviousStatus: logRow.Previous().String(),
		NextStatus:     logRow.Next().String(),
		Reason:         logRow.Reason(),
		Actor:          logRow.Actor(),
		OccurredAt:     logRow.OccurredAt(),
	}
}

// timeEntryFromDomain converts a time entry to its database representation.
func timeEntryFromDomain(entry *schedule.TimeEntry) TimeEntryDTO {
	return TimeEntryDTO{
		ID:           entry.ID().Bytes(),
		TenantID:     entry.TenantID().Bytes(),
		JobID:        entry.JobID().Bytes(),
		CrewMemberID: entry.CrewMemberID().Bytes(),
		StartTime:    entry.Window().Start(),
		EndTime:      entry.Window().End(),
		Note:         entry.Note(),
	}
}

// timeEntryToDomain converts a database DTO to a time entry.
func timeEntryToDomain(dto TimeEntryDTO) (*schedule.TimeEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}
	crewMemberID, err := kernel.UUIDFromBytes(dto.CrewMemberID[:])
	if err != nil {
		return nil, err
	}
	window, err := kernel.NewTimeWindow(dto.StartTime, dto.EndTime)
	if err != nil {
		return nil, err
	}

	return schedule.RestoreTimeEntry(id, tenantID, jobID, crewMemberID, window, dto.Note)
}
