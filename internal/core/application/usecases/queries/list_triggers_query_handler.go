package queries

import (
	"context"
	"encoding/json"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListTriggersQueryHandler reads the tenant's automation triggers.
type ListTriggersQueryHandler struct {
	db *gorm.DB
}

// NewListTriggersQueryHandler creates a handler for trigger list queries.
func NewListTriggersQueryHandler(db *gorm.DB) ListTriggersQueryHandler {
	return ListTriggersQueryHandler{db: db}
}

// Handle executes the query, returning triggers in insertion-stable id order.
func (h ListTriggersQueryHandler) Handle(
	ctx context.Context,
	query ListTriggersQuery,
) ([]ListTriggersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	triggers := make([]ListTriggersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			job_id,
			trigger_type,
			condition,
			action_type,
			action_config,
			is_active,
			last_triggered,
			trigger_count
		FROM automation_triggers
		WHERE tenant_id = ?
		ORDER BY id
	`, query.TenantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListTriggersQueryResponse
		var id uuid.UUID
		var jobID *uuid.UUID
		var condition, actionConfig []byte

		err = rows.Scan(
			&id,
			&jobID,
			&resp.TriggerType,
			&condition,
			&resp.ActionType,
			&actionConfig,
			&resp.IsActive,
			&resp.LastTriggered,
			&resp.TriggerCount,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if jobID != nil {
			scopedID, idErr := kernel.UUIDFromBytes(jobID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.JobID = &scopedID
		}
		if len(condition) > 0 {
			if err = json.Unmarshal(condition, &resp.Condition); err != nil {
				return nil, err
			}
		}
		if len(actionConfig) > 0 {
			if err = json.Unmarshal(actionConfig, &resp.ActionConfig); err != nil {
				return nil, err
			}
		}
		triggers = append(triggers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return triggers, nil
}
