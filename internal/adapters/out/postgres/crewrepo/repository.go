package crewrepo

import (
	"context"
	"errors"

	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCrewRepository implements CrewRepository using GORM.
type GormCrewRepository struct {
	db *gorm.DB
}

// NewGormCrewRepository creates a new GORM crew repository.
func NewGormCrewRepository(db *gorm.DB) *GormCrewRepository {
	return &GormCrewRepository{db: db}
}

// Add saves a new crew member with declared availability to the database.
func (r *GormCrewRepository) Add(ctx context.Context, aggregate *crew.CrewMember) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing crew member to the database. Withdrawn availability
// windows are deleted, declared ones are upserted.
func (r *GormCrewRepository) Update(ctx context.Context, aggregate *crew.CrewMember) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	keepIDs := make([]uuid.UUID, 0, len(dto.Availability))
	for _, entry := range dto.Availability {
		keepIDs = append(keepIDs, entry.ID)
	}

	orphans := r.db.WithContext(ctx).Where("crew_member_id = ?", dto.ID)
	if len(keepIDs) > 0 {
		orphans = orphans.Where("id NOT IN ?", keepIDs)
	}
	if err := orphans.Delete(&AvailabilityDTO{}).Error; err != nil {
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

// Get retrieves a crew member by ID within the tenant.
func (r *GormCrewRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*crew.CrewMember, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto CrewMemberDTO
	err := r.db.WithContext(ctx).
		Preload("Availability", availabilityOrder).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("crew member", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves the crew members with the given ids within the tenant.
func (r *GormCrewRepository) GetMany(
	ctx context.Context,
	tenantID kernel.UUID,
	ids []kernel.UUID,
) ([]*crew.CrewMember, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*crew.CrewMember{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []CrewMemberDTO
	err := r.db.WithContext(ctx).
		Preload("Availability", availabilityOrder).
		Where("tenant_id = ? AND id IN ?", tenantID.Bytes(), rawIDs).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActive retrieves the tenant's active crew members ordered by name.
func (r *GormCrewRepository) GetAllActive(ctx context.Context, tenantID kernel.UUID) ([]*crew.CrewMember, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CrewMemberDTO
	err := r.db.WithContext(ctx).
		Preload("Availability", availabilityOrder).
		Where("tenant_id = ? AND is_active", tenantID.Bytes()).
		Order("name, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func availabilityOrder(db *gorm.DB) *gorm.DB {
	return db.Order("start_time, id")
}

func toDomainSlice(dtos []CrewMemberDTO) ([]*crew.CrewMember, error) {
	members := make([]*crew.CrewMember, 0, len(dtos))
	for _, dto := range dtos {
		member, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}
