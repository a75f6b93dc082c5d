package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobHistoryQueryHandler reads a job's status transitions. The join on jobs
// enforces tenant scoping: history of another tenant's job comes back empty.
type GetJobHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetJobHistoryQueryHandler creates a handler for job history queries.
func NewGetJobHistoryQueryHandler(db *gorm.DB) GetJobHistoryQueryHandler {
	return GetJobHistoryQueryHandler{db: db}
}

// Handle executes the query, returning transitions newest first.
func (h GetJobHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetJobHistoryQuery,
) ([]GetJobHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetJobHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.previous_status,
			l.next_status,
			l.reason,
			l.notes,
			l.actor,
			l.occurred_at
		FROM job_status_logs l
		JOIN jobs j ON j.id = l.job_id
		WHERE j.tenant_id = ? AND l.job_id = ?
		ORDER BY l.occurred_at DESC, l.id
	`, query.TenantID().String(), query.JobID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetJobHistoryQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.PreviousStatus,
			&resp.NewStatus,
			&resp.Reason,
			&resp.Notes,
			&resp.Actor,
			&resp.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		history = append(history, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
