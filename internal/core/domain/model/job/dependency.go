package job

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
)

// ErrSelfDependency is returned when a job is declared as its own prerequisite.
var ErrSelfDependency = errors.New("a job cannot depend on itself")

// Dependency is a directed "must-complete-before" edge: the dependent job may
// not be scheduled until the prerequisite job is Completed. The edge set per
// tenant must stay acyclic; the DependencyGraph service enforces that before
// insertion.
type Dependency struct {
	id             kernel.UUID
	tenantID       kernel.UUID
	dependentID    kernel.UUID
	prerequisiteID kernel.UUID
}

// NewDependency creates a dependency edge.
func NewDependency(id, tenantID, dependentID, prerequisiteID kernel.UUID) (*Dependency, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		dependentID.Validate(),
		prerequisiteID.Validate(),
	); err != nil {
		return nil, err
	}
	if dependentID.IsEqual(prerequisiteID) {
		return nil, ErrSelfDependency
	}

	return &Dependency{
		id:             id,
		tenantID:       tenantID,
		dependentID:    dependentID,
		prerequisiteID: prerequisiteID,
	}, nil
}

// RestoreDependency reconstructs a dependency edge from persistence.
func RestoreDependency(id, tenantID, dependentID, prerequisiteID kernel.UUID) (*Dependency, error) {
	return NewDependency(id, tenantID, dependentID, prerequisiteID)
}

func (d *Dependency) ID() kernel.UUID             { return d.id }
func (d *Dependency) TenantID() kernel.UUID       { return d.tenantID }
func (d *Dependency) DependentID() kernel.UUID    { return d.dependentID }
func (d *Dependency) PrerequisiteID() kernel.UUID { return d.prerequisiteID }
