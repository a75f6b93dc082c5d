package triggerrepo

import (
	"context"
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTriggerRepository implements TriggerRepository using GORM.
type GormTriggerRepository struct {
	db *gorm.DB
}

// NewGormTriggerRepository creates a new GORM trigger repository.
func NewGormTriggerRepository(db *gorm.DB) *GormTriggerRepository {
	return &GormTriggerRepository{db: db}
}

// Add saves a new trigger to the database.
func (r *GormTriggerRepository) Add(ctx context.Context, aggregate *trigger.Trigger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := triggerFromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing trigger to the database.
func (r *GormTriggerRepository) Update(ctx context.Context, aggregate *trigger.Trigger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := triggerFromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a trigger by ID within the tenant.
func (r *GormTriggerRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*trigger.Trigger, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto TriggerDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trigger", id.String())
		}
		return nil, err
	}

	return triggerToDomain(dto)
}

// Delete removes a trigger permanently.
func (r *GormTriggerRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).
		Delete(&TriggerDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("trigger", id.String())
	}

	return nil
}

// GetAllActiveForType retrieves the tenant's active triggers listening for the
// given event type, both global and job-scoped ones.
func (r *GormTriggerRepository) GetAllActiveForType(
	ctx context.Context,
	tenantID kernel.UUID,
	eventType trigger.Type,
) ([]*trigger.Trigger, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if err := eventType.Validate(); err != nil {
		return nil, err
	}

	var dtos []TriggerDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND trigger_type = ? AND is_active",
			tenantID.Bytes(), string(eventType)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return triggersToDomain(dtos)
}

// GetAllForTenant retrieves every trigger of the tenant.
func (r *GormTriggerRepository) GetAllForTenant(ctx context.Context, tenantID kernel.UUID) ([]*trigger.Trigger, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TriggerDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return triggersToDomain(dtos)
}

func triggersToDomain(dtos []TriggerDTO) ([]*trigger.Trigger, error) {
	triggers := make([]*trigger.Trigger, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := triggerToDomain(dto)
		if err != nil {
			return nil, err
		}
		triggers = append(triggers, aggregate)
	}
	return triggers, nil
}

// GormDispatchOutbox implements DispatchOutbox using GORM.
type GormDispatchOutbox struct {
	db *gorm.DB
}

// NewGormDispatchOutbox creates a new GORM outbox.
func NewGormDispatchOutbox(db *gorm.DB) *GormDispatchOutbox {
	return &GormDispatchOutbox{db: db}
}

// Add persists a pending outbox row.
func (r *GormDispatchOutbox) Add(ctx context.Context, row *trigger.Dispatch) error {
	dto, err := dispatchFromDomain(row)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists the delivery state of a row after an attempt.
func (r *GormDispatchOutbox) Update(ctx context.Context, row *trigger.Dispatch) error {
	dto, err := dispatchFromDomain(row)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetAllPending retrieves up to limit pending rows, oldest first.
func (r *GormDispatchOutbox) GetAllPending(ctx context.Context, limit int) ([]*trigger.Dispatch, error) {
	var dtos []DispatchDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", trigger.DispatchStatusPending.String()).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rows := make([]*trigger.Dispatch, 0, len(dtos))
	for _, dto := range dtos {
		row, rowErr := dispatchToDomain(dto)
		if rowErr != nil {
			return nil, rowErr
		}
		rows = append(rows, row)
	}

	return rows, nil
}
