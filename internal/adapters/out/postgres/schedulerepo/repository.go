package schedulerepo

import (
	"context"
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
	"fieldservice/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// occupyingStatuses returns the event statuses that count as crew commitments.
func occupyingStatuses() []string {
	return []string{
		schedule.EventStatusPlanned.String(),
		schedule.EventStatusConfirmed.String(),
		schedule.EventStatusInProgress.String(),
	}
}

// GormScheduleEventRepository implements ScheduleEventRepository using GORM.
type GormScheduleEventRepository struct {
	db *gorm.DB
}

// NewGormScheduleEventRepository creates a new GORM schedule event repository.
func NewGormScheduleEventRepository(db *gorm.DB) *GormScheduleEventRepository {
	return &GormScheduleEventRepository{db: db}
}

// Add saves a new schedule event to the database.
func (r *GormScheduleEventRepository) Add(ctx context.Context, aggregate *schedule.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := eventFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing schedule event to the database.
func (r *GormScheduleEventRepository) Update(ctx context.Context, aggregate *schedule.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := eventFromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a schedule event by ID within the tenant.
func (r *GormScheduleEventRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*schedule.Event, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto EventDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("schedule event", id.String())
		}
		return nil, err
	}

	return eventToDomain(dto)
}

// Delete permanently removes an event and its status history.
func (r *GormScheduleEventRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID.Bytes(), id.Bytes()).
		Delete(&EventDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("schedule event", id.String())
	}

	return r.db.WithContext(ctx).
		Where("event_id = ?", id.Bytes()).
		Delete(&EventStatusLogDTO{}).Error
}

// GetAllActiveForCrew retrieves the occupying events assigned to any of the
// given crew members, using the array overlap operator on the crew id column.
func (r *GormScheduleEventRepository) GetAllActiveForCrew(
	ctx context.Context,
	tenantID kernel.UUID,
	crewIDs []kernel.UUID,
) ([]*schedule.Event, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if len(crewIDs) == 0 {
		return []*schedule.Event{}, nil
	}

	rawIDs := make(pq.StringArray, 0, len(crewIDs))
	for _, id := range crewIDs {
		rawIDs = append(rawIDs, id.String())
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status IN ? AND crew_member_ids && ?",
			tenantID.Bytes(), occupyingStatuses(), rawIDs).
		Order("start_time, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return eventsToDomain(dtos)
}

// GetAllActive retrieves every occupying event of the tenant.
func (r *GormScheduleEventRepository) GetAllActive(ctx context.Context, tenantID kernel.UUID) ([]*schedule.Event, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status IN ?", tenantID.Bytes(), occupyingStatuses()).
		Order("start_time, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return eventsToDomain(dtos)
}

// GetAllForJob retrieves every event attached to a job, regardless of status.
func (r *GormScheduleEventRepository) GetAllForJob(
	ctx context.Context,
	tenantID, jobID kernel.UUID,
) ([]*schedule.Event, error) {
	if err := errors.Join(tenantID.Validate(), jobID.Validate()); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND job_id = ?", tenantID.Bytes(), jobID.Bytes()).
		Order("start_time, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return eventsToDomain(dtos)
}

// AddStatusLog appends a status transition record to the event's history.
func (r *GormScheduleEventRepository) AddStatusLog(ctx context.Context, logRow *schedule.EventStatusLog) error {
	dto := eventStatusLogFromDomain(logRow)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func eventsToDomain(dtos []EventDTO) ([]*schedule.Event, error) {
	events := make([]*schedule.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := eventToDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// GormTimeEntryRepository implements TimeEntryRepository using GORM.
type GormTimeEntryRepository struct {
	db *gorm.DB
}

// NewGormTimeEntryRepository creates a new GORM time entry repository.
func NewGormTimeEntryRepository(db *gorm.DB) *GormTimeEntryRepository {
	return &GormTimeEntryRepository{db: db}
}

// Add saves a new time entry to the database.
func (r *GormTimeEntryRepository) Add(ctx context.Context, entry *schedule.TimeEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := timeEntryFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an amended time entry to the database.
func (r *GormTimeEntryRepository) Update(ctx context.Context, entry *schedule.TimeEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := timeEntryFromDomain(entry)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a time entry by ID within the tenant.
func (r *GormTimeEntryRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*schedule.TimeEntry, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto TimeEntryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("time entry", id.String())
		}
		return nil, err
	}

	return timeEntryToDomain(dto)
}

// Delete permanently removes a time entry.
func (r *GormTimeEntryRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID.Bytes(), id.Bytes()).
		Delete(&TimeEntryDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("time entry", id.String())
	}

	return nil
}

// GetAllForJob retrieves the time entries logged against a job in chronological order.
func (r *GormTimeEntryRepository) GetAllForJob(
	ctx context.Context,
	tenantID, jobID kernel.UUID,
) ([]*schedule.TimeEntry, error) {
	if err := errors.Join(tenantID.Validate(), jobID.Validate()); err != nil {
		return nil, err
	}

	var dtos []TimeEntryDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND job_id = ?", tenantID.Bytes(), jobID.Bytes()).
		Order("start_time, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*schedule.TimeEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := timeEntryToDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
