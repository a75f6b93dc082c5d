package queries

import (
	"context"
	"database/sql"
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCrewAvailabilityQueryHandler reads the declared windows of a crew
// member. The crew_availability table carries no tenant column, so tenancy is
// enforced by resolving the member first.
type ListCrewAvailabilityQueryHandler struct {
	db *gorm.DB
}

// NewListCrewAvailabilityQueryHandler creates a handler for availability queries.
func NewListCrewAvailabilityQueryHandler(db *gorm.DB) ListCrewAvailabilityQueryHandler {
	return ListCrewAvailabilityQueryHandler{db: db}
}

// Handle executes the query, returning windows ordered by start time.
// Returns a not-found error when the crew member does not exist for the
// tenant, so an empty roster entry is distinguishable from an empty schedule.
func (h ListCrewAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query ListCrewAvailabilityQuery,
) ([]ListCrewAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var memberID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM crew_members
		WHERE tenant_id = ? AND id = ?
	`, query.TenantID().String(), query.CrewMemberID().String()).Row().Scan(&memberID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("crewMember", query.CrewMemberID().String())
	}
	if err != nil {
		return nil, err
	}

	windows := make([]ListCrewAvailabilityQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			start_time,
			end_time,
			kind
		FROM crew_availability
		WHERE crew_member_id = ?
		ORDER BY start_time, id
	`, query.CrewMemberID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListCrewAvailabilityQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Start,
			&resp.End,
			&resp.Kind,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		windows = append(windows, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return windows, nil
}
