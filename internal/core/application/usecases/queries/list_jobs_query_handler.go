package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListJobsQueryHandler reads the tenant's jobs straight from the jobs table.
//
// Example:
//
//	handler := NewListJobsQueryHandler(db)
//	query, _ := NewListJobsQuery(tenantID, nil)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list jobs: %v", err)
//	    return err
//	}
type ListJobsQueryHandler struct {
	db *gorm.DB
}

// NewListJobsQueryHandler creates a handler for job list queries.
func NewListJobsQueryHandler(db *gorm.DB) ListJobsQueryHandler {
	return ListJobsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by priority descending, then
// creation time, matching the order the optimizer would process them in.
func (h ListJobsQueryHandler) Handle(
	ctx context.Context,
	query ListJobsQuery,
) ([]ListJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]ListJobsQueryResponse, 0)

	sql := `
		SELECT
			id,
			customer_id,
			number,
			title,
			status,
			priority,
			scheduled_start,
			scheduled_end,
			created_at
		FROM jobs
		WHERE tenant_id = ?`
	args := []any{query.TenantID().String()}

	if query.Status() != nil {
		sql += ` AND status = ?`
		args = append(args, query.Status().String())
	}
	sql += ` ORDER BY priority DESC, created_at, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListJobsQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&resp.Number,
			&resp.Title,
			&resp.Status,
			&resp.Priority,
			&resp.ScheduledStart,
			&resp.ScheduledEnd,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		jobs = append(jobs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
