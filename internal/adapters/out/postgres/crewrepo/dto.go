// Package crewrepo provides data transfer objects and mapping functions for crew persistence.
// This package implements the repository pattern for the crew member aggregate, handling
// the conversion between domain entities and database representations.
package crewrepo

import (
	"time"

	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CrewMemberDTO represents the database structure for persisting crew member aggregates.
type CrewMemberDTO struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	TenantID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name            string            `gorm:"type:varchar(255);not null"`
	Skills          pq.StringArray    `gorm:"type:text[]"`
	MaxHoursPerDay  int               `gorm:"type:int;not null"`
	MaxHoursPerWeek int               `gorm:"type:int;not null"`
	IsActive        bool              `gorm:"type:boolean;not null"`
	Availability    []AvailabilityDTO `gorm:"foreignKey:CrewMemberID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for crew member entities.
func (CrewMemberDTO) TableName() string {
	return "crew_members"
}

// AvailabilityDTO represents the database structure for declared availability
// and blackout windows. Links to the crew member via foreign key.
type AvailabilityDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CrewMemberID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime    time.Time `gorm:"type:timestamptz;not null"`
	EndTime      time.Time `gorm:"type:timestamptz;not null"`
	Kind         string    `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for availability windows.
func (AvailabilityDTO) TableName() string {
	return "crew_availability"
}

// fromDomain converts a crew member domain aggregate to its database representation.
func fromDomain(aggregate *crew.CrewMember) CrewMemberDTO {
	memberID := aggregate.ID().Bytes()

	availability := make([]AvailabilityDTO, 0, len(aggregate.Availability()))
	for _, entry := range aggregate.Availability() {
		availability = append(availability, AvailabilityDTO{
			ID:           entry.ID().Bytes(),
			CrewMemberID: memberID,
			StartTime:    entry.Window().Start(),
			EndTime:      entry.Window().End(),
			Kind:         entry.Kind().String(),
		})
	}

	return CrewMemberDTO{
		ID:              memberID,
		TenantID:        aggregate.TenantID().Bytes(),
		Name:            aggregate.Name(),
		Skills:          pq.StringArray(aggregate.Skills()),
		MaxHoursPerDay:  aggregate.MaxHoursPerDay(),
		MaxHoursPerWeek: aggregate.MaxHoursPerWeek(),
		IsActive:        aggregate.IsActive(),
		Availability:    availability,
	}
}

// toDomain converts a database DTO to a crew member domain aggregate.
// Reconstructs the complete aggregate including availability windows using RestoreCrewMember.
func toDomain(dto CrewMemberDTO) (*crew.CrewMember, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	availability := make([]*crew.Availability, 0, len(dto.Availability))
	for _, entryDto := range dto.Availability {
		entry, entryErr := availabilityToDomain(entryDto)
		if entryErr != nil {
			return nil, entryErr
		}
		availability = append(availability, entry)
	}

	return crew.RestoreCrewMember(
		id, tenantID,
		dto.Name,
		dto.Skills,
		dto.MaxHoursPerDay,
		dto.MaxHoursPerWeek,
		dto.IsActive,
		availability,
	)
}

// availabilityToDomain converts an availability DTO to a domain entity.
func availabilityToDomain(dto AvailabilityDTO) (*crew.Availability, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	window, err := kernel.NewTimeWindow(dto.StartTime, dto.EndTime)
	if err != nil {
		return nil, err
	}
	kind, err := crew.AvailabilityKindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	return crew.NewAvailability(id, window, kind)
}
