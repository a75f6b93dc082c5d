package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"
)

// TriggerRepository defines the persistence contract for automation triggers.
type TriggerRepository interface {
	// Add persists a new trigger.
	Add(ctx context.Context, aggregate *trigger.Trigger) error

	// Update persists changes to an existing trigger, including fire
	// bookkeeping after successful dispatches.
	Update(ctx context.Context, aggregate *trigger.Trigger) error

	// Get retrieves a trigger by id, scoped to the tenant. Returns
	// errs.ObjectNotFoundError when no such trigger exists.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*trigger.Trigger, error)

	// Delete removes a trigger permanently.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error

	// GetAllActiveForType retrieves the tenant's active triggers listening for
	// the given event type, both global and job-scoped ones.
	GetAllActiveForType(ctx context.Context, tenantID kernel.UUID, eventType trigger.Type) ([]*trigger.Trigger, error)

	// GetAllForTenant retrieves every trigger of the tenant.
	GetAllForTenant(ctx context.Context, tenantID kernel.UUID) ([]*trigger.Trigger, error)
}

// DispatchOutbox defines the persistence contract for the automation outbox.
// Command handlers insert pending rows inside their transaction; the dispatch
// job drains them after commit.
type DispatchOutbox interface {
	// Add persists a pending outbox row.
	Add(ctx context.Context, dispatch *trigger.Dispatch) error

	// Update persists the delivery state of a row after an attempt.
	Update(ctx context.Context, dispatch *trigger.Dispatch) error

	// GetAllPending retrieves up to limit pending rows ordered by creation
	// time, oldest first.
	GetAllPending(ctx context.Context, limit int) ([]*trigger.Dispatch, error)
}
