package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/kernel"
)

// CrewRepository defines the persistence contract for crew member aggregates
// with their declared availability windows.
type CrewRepository interface {
	// Add persists a new crew member aggregate to storage.
	Add(ctx context.Context, aggregate *crew.CrewMember) error

	// Update persists changes to an existing crew member, including declared
	// and removed availability windows and the active flag.
	Update(ctx context.Context, aggregate *crew.CrewMember) error

	// Get retrieves a crew member by its unique identifier, scoped to the
	// tenant. Returns errs.ObjectNotFoundError when no such member exists.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*crew.CrewMember, error)

	// GetMany retrieves several crew members by id in a single round trip.
	GetMany(ctx context.Context, tenantID kernel.UUID, ids []kernel.UUID) ([]*crew.CrewMember, error)

	// GetAllActive retrieves the tenant's active (non-deactivated) crew
	// members, the candidate set for scheduling.
	GetAllActive(ctx context.Context, tenantID kernel.UUID) ([]*crew.CrewMember, error)
}
