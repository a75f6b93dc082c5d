// Package dependencyrepo persists job dependency edges. Edges are flat rows
// without an aggregate of their own, so the DTO mapping lives alongside the
// repository.
package dependencyrepo

import (
	"context"
	"errors"
	"fmt"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DependencyDTO represents the database structure for a dependency edge.
// The unique index keeps the edge set free of duplicates per tenant.
type DependencyDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_dependencies_edge"`
	DependentID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_dependencies_edge"`
	PrerequisiteID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_dependencies_edge"`
}

// TableName specifies the database table name for dependency edges.
func (DependencyDTO) TableName() string {
	return "job_dependencies"
}

// GormDependencyRepository implements DependencyRepository using GORM.
type GormDependencyRepository struct {
	db *gorm.DB
}

// NewGormDependencyRepository creates a new GORM dependency repository.
func NewGormDependencyRepository(db *gorm.DB) *GormDependencyRepository {
	return &GormDependencyRepository{db: db}
}

// Add persists a dependency edge.
func (r *GormDependencyRepository) Add(ctx context.Context, edge *job.Dependency) error {
	dto := fromDomain(edge)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Remove deletes the edge between the two jobs.
func (r *GormDependencyRepository) Remove(
	ctx context.Context,
	tenantID, dependentID, prerequisiteID kernel.UUID,
) error {
	if err := errors.Join(
		tenantID.Validate(),
		dependentID.Validate(),
		prerequisiteID.Validate(),
	); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND dependent_id = ? AND prerequisite_id = ?",
			tenantID.Bytes(), dependentID.Bytes(), prerequisiteID.Bytes()).
		Delete(&DependencyDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dependency",
			fmt.Sprintf("%s -> %s", dependentID, prerequisiteID))
	}

	return nil
}

// GetAllForTenant retrieves every dependency edge of the tenant.
func (r *GormDependencyRepository) GetAllForTenant(ctx context.Context, tenantID kernel.UUID) ([]*job.Dependency, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DependencyDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllForJob retrieves the edges touching a job, in either direction.
func (r *GormDependencyRepository) GetAllForJob(
	ctx context.Context,
	tenantID, jobID kernel.UUID,
) ([]*job.Dependency, error) {
	if err := errors.Join(tenantID.Validate(), jobID.Validate()); err != nil {
		return nil, err
	}

	var dtos []DependencyDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND (dependent_id = ? OR prerequisite_id = ?)",
			tenantID.Bytes(), jobID.Bytes(), jobID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func fromDomain(edge *job.Dependency) DependencyDTO {
	return DependencyDTO{
		ID:             edge.ID().Bytes(),
		TenantID:       edge.TenantID().Bytes(),
		DependentID:    edge.DependentID().Bytes(),
		PrerequisiteID: edge.PrerequisiteID().Bytes(),
	}
}

func toDomain(dto DependencyDTO) (*job.Dependency, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	dependentID, err := kernel.UUIDFromBytes(dto.DependentID[:])
	if err != nil {
		return nil, err
	}
	prerequisiteID, err := kernel.UUIDFromBytes(dto.PrerequisiteID[:])
	if err != nil {
		return nil, err
	}

	return job.RestoreDependency(id, tenantID, dependentID, prerequisiteID)
}

func toDomainSlice(dtos []DependencyDTO) ([]*job.Dependency, error) {
	edges := make([]*job.Dependency, 0, len(dtos))
	for _, dto := range dtos {
		edge, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}
	return edges, nil
}
