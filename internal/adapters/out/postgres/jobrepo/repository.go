package jobrepo

import (
	"context"
	"errors"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// Add saves a new job with its tasks to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing job to the database. Tasks removed from the
// aggregate are deleted, added or changed tasks are upserted.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	keepIDs := make([]uuid.UUID, 0, len(dto.Tasks))
	for _, task := range dto.Tasks {
		keepIDs = append(keepIDs, task.ID)
	}

	orphans := r.db.WithContext(ctx).Where("job_id = ?", dto.ID)
	if len(keepIDs) > 0 {
		orphans = orphans.Where("id NOT IN ?", keepIDs)
	}
	if err := orphans.Delete(&TaskDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a job by ID within the tenant.
func (r *GormJobRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*job.Job, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto JobDTO
	err := r.db.WithContext(ctx).
		Preload("Tasks", taskOrder).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete permanently removes a job, its tasks and its status history. Tasks
// are removed by the cascade on the foreign key; status log rows are deleted
// explicitly because history has no constraint back to the job.
func (r *GormJobRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID.Bytes(), id.Bytes()).
		Delete(&JobDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("job", id.String())
	}

	return r.db.WithContext(ctx).
		Where("job_id = ?", id.Bytes()).
		Delete(&StatusLogDTO{}).Error
}

// GetMany retrieves the jobs with the given ids within the tenant. Ids that do
// not exist are silently absent from the result.
func (r *GormJobRepository) GetMany(
	ctx context.Context,
	tenantID kernel.UUID,
	ids []kernel.UUID,
) ([]*job.Job, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*job.Job{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Preload("Tasks", taskOrder).
		Where("tenant_id = ? AND id IN ?", tenantID.Bytes(), rawIDs).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllUnscheduled retrieves the tenant's jobs still in Planned status,
// highest priority first.
func (r *GormJobRepository) GetAllUnscheduled(ctx context.Context, tenantID kernel.UUID) ([]*job.Job, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Preload("Tasks", taskOrder).
		Where("tenant_id = ? AND status = ?", tenantID.Bytes(), job.StatusPlanned.String()).
		Order("priority DESC, created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// NextSequence atomically allocates the next job number sequence value for the
// tenant and year. The upsert guarantees two concurrent callers never observe
// the same value.
func (r *GormJobRepository) NextSequence(ctx context.Context, tenantID kernel.UUID, year int) (int, error) {
	if err := tenantID.Validate(); err != nil {
		return 0, err
	}

	var value int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO job_sequences (tenant_id, year, value)
		VALUES (?, ?, 1)
		ON CONFLICT (tenant_id, year) DO UPDATE SET value = job_sequences.value + 1
		RETURNING value
	`, tenantID.Bytes(), year).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}

// AddStatusLog appends a status transition record to the job's history.
func (r *GormJobRepository) AddStatusLog(ctx context.Context, logRow *job.StatusLog) error {
	dto := statusLogFromDomain(logRow)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func taskOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order, id")
}

func toDomainSlice(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, aggregate)
	}
	return jobs, nil
}
