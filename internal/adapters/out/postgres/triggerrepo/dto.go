// Package triggerrepo provides data transfer objects and mapping functions for
// automation trigger and outbox persistence. Conditions, action configs and
// event payloads are free-form documents, stored as JSON columns.
package triggerrepo

import (
	"encoding/json"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TriggerDTO represents the database structure for persisting automation triggers.
type TriggerDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	JobID         *uuid.UUID     `gorm:"type:uuid;index"`
	TriggerType   string         `gorm:"type:varchar(32);not null;index"`
	Condition     datatypes.JSON `gorm:"type:jsonb"`
	ActionType    string         `gorm:"type:varchar(32);not null"`
	ActionConfig  datatypes.JSON `gorm:"type:jsonb"`
	IsActive      bool           `gorm:"type:boolean;not null"`
	LastTriggered *time.Time     `gorm:"type:timestamptz"`
	TriggerCount  int64          `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for automation triggers.
func (TriggerDTO) TableName() string {
	return "automation_triggers"
}

// DispatchDTO represents the database structure for the automation outbox.
type DispatchDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	JobID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	EventType  string         `gorm:"type:varchar(32);not null"`
	OccurredAt time.Time      `gorm:"type:timestamptz;not null"`
	Payload    datatypes.JSON `gorm:"type:jsonb"`
	Status     string         `gorm:"type:varchar(16);not null;index"`
	Attempts   int            `gorm:"type:int;not null"`
	CreatedAt  time.Time      `gorm:"type:timestamptz;not null;index"`
}

// TableName specifies the database table name for outbox rows.
func (DispatchDTO) TableName() string {
	return "automation_dispatches"
}

// triggerFromDomain converts a trigger aggregate to its database representation.
func triggerFromDomain(aggregate *trigger.Trigger) (TriggerDTO, error) {
	var jobID *uuid.UUID
	if aggregate.JobID() != nil {
		raw := aggregate.JobID().Bytes()
		jobID = &raw
	}

	condition, err := json.Marshal(aggregate.Condition())
	if err != nil {
		return TriggerDTO{}, err
	}
	actionConfig, err := json.Marshal(aggregate.ActionConfig())
	if err != nil {
		return TriggerDTO{}, err
	}

	return TriggerDTO{
		ID:            aggregate.ID().Bytes(),
		TenantID:      aggregate.TenantID().Bytes(),
		JobID:         jobID,
		TriggerType:   string(aggregate.TriggerType()),
		Condition:     datatypes.JSON(condition),
		ActionType:    string(aggregate.ActionType()),
		ActionConfig:  datatypes.JSON(actionConfig),
		IsActive:      aggregate.IsActive(),
		LastTriggered: aggregate.LastTriggered(),
		TriggerCount:  aggregate.TriggerCount(),
	}, nil
}

// triggerToDomain converts a database DTO to a trigger aggregate.
func triggerToDomain(dto TriggerDTO) (*trigger.Trigger, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var jobID *kernel.UUID
	if dto.JobID != nil {
		scopedID, jobErr := kernel.UUIDFromBytes((*dto.JobID)[:])
		if jobErr != nil {
			return nil, jobErr
		}
		jobID = &scopedID
	}

	var condition trigger.Condition
	if len(dto.Condition) > 0 {
		if err = json.Unmarshal(dto.Condition, &condition); err != nil {
			return nil, err
		}
	}

	var actionConfig map[string]any
	if len(dto.ActionConfig) > 0 {
		if err = json.Unmarshal(dto.ActionConfig, &actionConfig); err != nil {
			return nil, err
		}
	}

	return trigger.RestoreTrigger(
		id, tenantID,
		jobID,
		trigger.Type(dto.TriggerType),
		condition,
		trigger.ActionType(dto.ActionType),
		actionConfig,
		dto.IsActive,
		dto.LastTriggered,
		dto.TriggerCount,
	)
}

// dispatchFromDomain converts an outbox row to its database representation.
func dispatchFromDomain(row *trigger.Dispatch) (DispatchDTO, error) {
	payload, err := json.Marshal(row.Payload())
	if err != nil {
		return DispatchDTO{}, err
	}

	return DispatchDTO{
		ID:         row.ID().Bytes(),
		TenantID:   row.TenantID().Bytes(),
		JobID:      row.JobID().Bytes(),
		EventType:  string(row.EventType()),
		OccurredAt: row.OccurredAt(),
		Payload:    datatypes.JSON(payload),
		Status:     row.Status().String(),
		Attempts:   row.Attempts(),
		CreatedAt:  row.CreatedAt(),
	}, nil
}

// dispatchToDomain converts a database DTO to an outbox row.
func dispatchToDomain(dto DispatchDTO) (*trigger.Dispatch, error) {
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
	status, err := trigger.DispatchStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if len(dto.Payload) > 0 {
		if err = json.Unmarshal(dto.Payload, &payload); err != nil {
			return nil, err
		}
	}

	return trigger.RestoreDispatch(
		id, tenantID, jobID,
		trigger.Type(dto.EventType),
		dto.OccurredAt,
		payload,
		status,
		dto.Attempts,
		dto.CreatedAt,
	)
}
