package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListCrewMembersQueryHandler reads the tenant's crew roster sorted by name.
type ListCrewMembersQueryHandler struct {
	db *gorm.DB
}

// NewListCrewMembersQueryHandler creates a handler for crew roster queries.
func NewListCrewMembersQueryHandler(db *gorm.DB) ListCrewMembersQueryHandler {
	return ListCrewMembersQueryHandler{db: db}
}

// Handle executes the query.
func (h ListCrewMembersQueryHandler) Handle(
	ctx context.Context,
	query ListCrewMembersQuery,
) ([]ListCrewMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]ListCrewMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			skills,
			max_hours_per_day,
			max_hours_per_week,
			is_active
		FROM crew_members
		WHERE tenant_id = ?
		ORDER BY name, id
	`, query.TenantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListCrewMembersQueryResponse
		var id uuid.UUID
		var skills pq.StringArray

		err = rows.Scan(
			&id,
			&resp.Name,
			&skills,
			&resp.MaxHoursPerDay,
			&resp.MaxHoursPerWeek,
			&resp.IsActive,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Skills = skills
		members = append(members, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
