package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// FindScheduleConflictsQueryHandler finds occupying events that overlap a
// proposed booking. Overlap uses the same half-open rule the conflict detector
// applies on writes, so a dry run and the subsequent create agree.
type FindScheduleConflictsQueryHandler struct {
	db *gorm.DB
}

// NewFindScheduleConflictsQueryHandler creates a handler for conflict probes.
func NewFindScheduleConflictsQueryHandler(db *gorm.DB) FindScheduleConflictsQueryHandler {
	return FindScheduleConflictsQueryHandler{db: db}
}

// Handle executes the probe, returning conflicting events ordered by start time.
func (h FindScheduleConflictsQueryHandler) Handle(
	ctx context.Context,
	query FindScheduleConflictsQuery,
) ([]FindScheduleConflictsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	probeIDs := make(pq.StringArray, 0, len(query.CrewIDs()))
	for _, id := range query.CrewIDs() {
		probeIDs = append(probeIDs, id.String())
	}

	occupying := []string{
		schedule.EventStatusPlanned.String(),
		schedule.EventStatusConfirmed.String(),
		schedule.EventStatusInProgress.String(),
	}

	conflicts := make([]FindScheduleConflictsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			job_id,
			status,
			start_time,
			end_time,
			crew_member_ids
		FROM schedule_events
		WHERE tenant_id = ?
		  AND status IN ?
		  AND crew_member_ids && ?
		  AND start_time < ?
		  AND end_time > ?
		ORDER BY start_time, id
	`, query.TenantID().String(), occupying, probeIDs,
		query.Window().End(), query.Window().Start()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp FindScheduleConflictsQueryResponse
		var id, jobID uuid.UUID
		var crewIDs pq.StringArray

		err = rows.Scan(
			&id,
			&jobID,
			&resp.Status,
			&resp.Start,
			&resp.End,
			&crewIDs,
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
		conflicts = append(conflicts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return conflicts, nil
}
