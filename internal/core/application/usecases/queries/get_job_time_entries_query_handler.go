package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobTimeEntriesQueryHandler reads a job's time entries joined with the crew
// member names.
type GetJobTimeEntriesQueryHandler struct {
	db *gorm.DB
}

// NewGetJobTimeEntriesQueryHandler creates a handler for time entry queries.
func NewGetJobTimeEntriesQueryHandler(db *gorm.DB) GetJobTimeEntriesQueryHandler {
	return GetJobTimeEntriesQueryHandler{db: db}
}

// Handle executes the query, returning entries in chronological order.
func (h GetJobTimeEntriesQueryHandler) Handle(
	ctx context.Context,
	query GetJobTimeEntriesQuery,
) ([]GetJobTimeEntriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetJobTimeEntriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.crew_member_id,
			c.name,
			t.start_time,
			t.end_time,
			t.note
		FROM time_entries t
		JOIN crew_members c ON c.id = t.crew_member_id
		WHERE t.tenant_id = ? AND t.job_id = ?
		ORDER BY t.start_time, t.id
	`, query.TenantID().String(), query.JobID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetJobTimeEntriesQueryResponse
		var id, crewMemberID uuid.UUID

		err = rows.Scan(
			&id,
			&crewMemberID,
			&resp.CrewMemberName,
			&resp.Start,
			&resp.End,
			&resp.Note,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CrewMemberID, err = kernel.UUIDFromBytes(crewMemberID[:]); err != nil {
			return nil, err
		}
		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
