package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetJobQueryHandler reads a single job and its tasks.
type GetJobQueryHandler struct {
	db *gorm.DB
}

// NewGetJobQueryHandler creates a handler for job detail queries.
func NewGetJobQueryHandler(db *gorm.DB) GetJobQueryHandler {
	return GetJobQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the job
// does not exist within the tenant.
func (h GetJobQueryHandler) Handle(
	ctx context.Context,
	query GetJobQuery,
) (*GetJobQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var resp GetJobQueryResponse
	var id, customerID uuid.UUID
	var sourceQuoteID *uuid.UUID
	var estimated int64
	var skills, equipment pq.StringArray

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			source_quote_id,
			number,
			title,
			status,
			priority,
			estimated_duration,
			scheduled_start,
			scheduled_end,
			required_skills,
			required_equipment,
			created_by,
			created_at
		FROM jobs
		WHERE tenant_id = ? AND id = ?
	`, query.TenantID().String(), query.JobID().String()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&sourceQuoteID,
		&resp.Number,
		&resp.Title,
		&resp.Status,
		&resp.Priority,
		&estimated,
		&resp.ScheduledStart,
		&resp.ScheduledEnd,
		&skills,
		&equipment,
		&resp.CreatedBy,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("job", query.JobID().String())
		}
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return nil, err
	}
	if sourceQuoteID != nil {
		quoteID, idErr := kernel.UUIDFromBytes(sourceQuoteID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.SourceQuoteID = &quoteID
	}
	resp.EstimatedDuration = time.Duration(estimated)
	resp.RequiredSkills = []string(skills)
	resp.RequiredEquipment = []string(equipment)

	resp.Tasks, err = h.loadTasks(ctx, query.JobID())
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (h GetJobQueryHandler) loadTasks(ctx context.Context, jobID kernel.UUID) ([]GetJobTaskResponse, error) {
	tasks := make([]GetJobTaskResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			status,
			estimated_duration,
			actual_duration,
			sort_order
		FROM job_tasks
		WHERE job_id = ?
		ORDER BY sort_order, id
	`, jobID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var task GetJobTaskResponse
		var id uuid.UUID
		var estimated, actual int64

		err = rows.Scan(
			&id,
			&task.Title,
			&task.Status,
			&estimated,
			&actual,
			&task.SortOrder,
		)
		if err != nil {
			return nil, err
		}

		if task.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		task.EstimatedDuration = time.Duration(estimated)
		task.ActualDuration = time.Duration(actual)
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
