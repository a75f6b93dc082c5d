package queries

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/pkg/guard"
)

var ErrListTriggersQueryIsNotConstructed = errors.New(
	"ListTriggersQuery must be created via NewListTriggersQuery constructor",
)

// ListTriggersQuery retrieves every automation trigger of the tenant,
// including inactive ones, for the administration view.
type ListTriggersQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListTriggersQuery creates a query for the tenant's triggers.
func NewListTriggersQuery(tenantID kernel.UUID) (ListTriggersQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return ListTriggersQuery{}, err
	}
	return ListTriggersQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTriggersQuery) Validate() error {
	return q.guard.Validate(ErrListTriggersQueryIsNotConstructed)
}

func (q ListTriggersQuery) TenantID() kernel.UUID { return q.tenantID }

// ListTriggersQueryResponse is one automation rule with its fire bookkeeping.
type ListTriggersQueryResponse struct {
	ID            kernel.UUID
	JobID         *kernel.UUID
	TriggerType   string
	Condition     trigger.Condition
	ActionType    string
	ActionConfig  map[string]any
	IsActive      bool
	LastTriggered *time.Time
	TriggerCount  int64
}
