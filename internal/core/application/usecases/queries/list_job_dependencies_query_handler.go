package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListJobDependenciesQueryHandler reads the dependency edges touching a job.
type ListJobDependenciesQueryHandler struct {
	db *gorm.DB
}

// NewListJobDependenciesQueryHandler creates a handler for dependency list queries.
func NewListJobDependenciesQueryHandler(db *gorm.DB) ListJobDependenciesQueryHandler {
	return ListJobDependenciesQueryHandler{db: db}
}

// Handle executes the query.
func (h ListJobDependenciesQueryHandler) Handle(
	ctx context.Context,
	query ListJobDependenciesQuery,
) ([]ListJobDependenciesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	edges := make([]ListJobDependenciesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.dependent_id,
			dep.number,
			d.prerequisite_id,
			pre.number
		FROM job_dependencies d
		JOIN jobs dep ON dep.id = d.dependent_id
		JOIN jobs pre ON pre.id = d.prerequisite_id
		WHERE d.tenant_id = ?
		  AND (d.dependent_id = ? OR d.prerequisite_id = ?)
		ORDER BY d.id
	`, query.TenantID().String(), query.JobID().String(), query.JobID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListJobDependenciesQueryResponse
		var id, dependentID, prerequisiteID uuid.UUID

		err = rows.Scan(
			&id,
			&dependentID,
			&resp.DependentNumber,
			&prerequisiteID,
			&resp.PrerequisiteNumber,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DependentID, err = kernel.UUIDFromBytes(dependentID[:]); err != nil {
			return nil, err
		}
		if resp.PrerequisiteID, err = kernel.UUIDFromBytes(prerequisiteID[:]); err != nil {
			return nil, err
		}
		edges = append(edges, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}
