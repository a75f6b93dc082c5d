package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListJobEventsQueryHandler reads the schedule events of a single job.
type ListJobEventsQueryHandler struct {
	db *gorm.DB
}

// NewListJobEventsQueryHandler creates a handler for job event list queries.
func NewListJobEventsQueryHandler(db *gorm.DB) ListJobEventsQueryHandler {
	return ListJobEventsQueryHandler{db: db}
}

// Handle executes the query, returning events ordered by start time.
func (h ListJobEventsQueryHandler) Handle(
	ctx context.Context,
	query ListJobEventsQuery,
) ([]ListJobEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]ListJobEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			start_time,
			end_time,
			crew_member_ids,
			notes
		FROM schedule_events
		WHERE tenant_id = ? AND job_id = ?
		ORDER BY start_time, id
	`, query.TenantID().String(), query.JobID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListJobEventsQueryResponse
		var id uuid.UUID
		var crewIDs pq.StringArray

		err = rows.Scan(
			&id,
			&resp.Status,
			&resp.Start,
			&resp.End,
			&crewIDs,
			&resp.Notes,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		resp.CrewMemberIDs = make([]kernel.UUID, 0, len(crewIDs))
		for _, raw := range crewIDs {
			crewID, idErr := kernel.UUIDFromString(raw)
			if idErr != nil {
				return nil, idErr
			}
			resp.CrewMemberIDs = append(resp.CrewMemberIDs, crewID)
		}
		events = append(events, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
