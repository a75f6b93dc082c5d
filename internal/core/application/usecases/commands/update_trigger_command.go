package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/pkg/guard"
)

// ErrUpdateTriggerCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrUpdateTriggerCommandIsNotConstructed = errors.New(
	"UpdateTriggerCommand must be created via NewUpdateTriggerCommand constructor",
)

// UpdateTriggerCommand represents a request to change a trigger's rule fields
// or toggle it on and off.
type UpdateTriggerCommand struct { //nolint:recvcheck //using for validation
	triggerID    kernel.UUID
	tenantID     kernel.UUID
	condition    trigger.Condition
	actionType   trigger.ActionType
	actionConfig map[string]any
	isActive     bool

	guard guard.ConstructorGuard
}

// NewUpdateTriggerCommand creates a command to update a trigger.
func NewUpdateTriggerCommand(
	triggerID, tenantID kernel.UUID,
	condition trigger.Condition,
	actionType trigger.ActionType,
	actionConfig map[string]any,
	isActive bool,
) (UpdateTriggerCommand, error) {
	cmd := UpdateTriggerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		triggerID.Validate(),
		tenantID.Validate(),
		condition.Validate(),
		actionType.Validate(),
	); err != nil {
		return UpdateTriggerCommand{}, err
	}

	cmd.triggerID = triggerID
	cmd.tenantID = tenantID
	cmd.condition = condition
	cmd.actionType = actionType
	cmd.actionConfig = actionConfig
	cmd.isActive = isActive
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTriggerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTriggerCommandIsNotConstructed)
}

func (c UpdateTriggerCommand) TriggerID() kernel.UUID         { return c.triggerID }
func (c UpdateTriggerCommand) TenantID() kernel.UUID          { return c.tenantID }
func (c UpdateTriggerCommand) Condition() trigger.Condition   { return c.condition }
func (c UpdateTriggerCommand) ActionType() trigger.ActionType { return c.actionType }
func (c UpdateTriggerCommand) ActionConfig() map[string]any   { return c.actionConfig }
func (c UpdateTriggerCommand) IsActive() bool                 { return c.isActive }
