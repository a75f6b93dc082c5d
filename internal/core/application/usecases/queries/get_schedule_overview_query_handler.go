package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetScheduleOverviewQueryHandler reads the schedule board for a time range.
// Overlap uses half-open interval semantics: an event ending exactly at the
// range start is not included.
type GetScheduleOverviewQueryHandler struct {
	db *gorm.DB
}

// NewGetScheduleOverviewQueryHandler creates a handler for schedule overview queries.
func NewGetScheduleOverviewQueryHandler(db *gorm.DB) GetScheduleOverviewQueryHandler {
	return GetScheduleOverviewQueryHandler{db: db}
}

// Handle executes the query, returning events ordered by start time.
func (h GetScheduleOverviewQueryHandler) Handle(
	ctx context.Context,
	query GetScheduleOverviewQuery,
) ([]GetScheduleOverviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetScheduleOverviewQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.job_id,
			j.number,
			j.title,
			e.status,
			e.start_time,
			e.end_time,
			e.crew_member_ids,
			e.notes
		FROM schedule_events e
		JOIN jobs j ON j.id = e.job_id
		WHERE e.tenant_id = ?
		  AND e.start_time < ?
		  AND e.end_time > ?
		ORDER BY e.start_time, e.id
	`, query.TenantID().String(), query.Window().End(), query.Window().Start()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetScheduleOverviewQueryResponse
		var id, jobID uuid.UUID
		var crewIDs pq.StringArray

		err = rows.Scan(
			&id,
			&jobID,
			&resp.JobNumber,
			&resp.JobTitle,
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
		if resp.JobID, err = kernel.UUIDFromBytes(jobID[:]); err != nil {
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
