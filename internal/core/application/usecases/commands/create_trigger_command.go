package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/pkg/guard"
)

// ErrCreateTriggerCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrCreateTriggerCommandIsNotConstructed = errors.New(
	"CreateTriggerCommand must be created via NewCreateTriggerCommand constructor",
)

// CreateTriggerCommand represents a request to register an automation trigger,
// either global (jobID nil) or scoped to a single job.
type CreateTriggerCommand struct { //nolint:recvcheck //using for validation
	triggerID    kernel.UUID
	tenantID     kernel.UUID
	jobID        *kernel.UUID
	triggerType  trigger.Type
	condition    trigger.Condition
	actionType   trigger.ActionType
	actionConfig map[string]any

	guard guard.ConstructorGuard
}

// NewCreateTriggerCommand creates a command to register a trigger. The trigger
// type, condition grammar and action type are validated here so malformed
// rules never reach the store.
func NewCreateTriggerCommand(
	triggerID, tenantID kernel.UUID,
	jobID *kernel.UUID,
	triggerType trigger.Type,
	condition trigger.Condition,
	actionType trigger.ActionType,
	actionConfig map[string]any,
) (CreateTriggerCommand, error) {
	cmd := CreateTriggerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		triggerID.Validate(),
		tenantID.Validate(),
		triggerType.Validate(),
		condition.Validate(),
		actionType.Validate(),
	); err != nil {
		return CreateTriggerCommand{}, err
	}
	if jobID != nil {
		if err := jobID.Validate(); err != nil {
			return CreateTriggerCommand{}, err
		}
	}

	cmd.triggerID = triggerID
	cmd.tenantID = tenantID
	cmd.jobID = jobID
	cmd.triggerType = triggerType
	cmd.condition = condition
	cmd.actionType = actionType
	cmd.actionConfig = actionConfig
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTriggerCommand) Validate() error {
	return c.guard.Validate(ErrCreateTriggerCommandIsNotConstructed)
}

func (c CreateTriggerCommand) TriggerID() kernel.UUID          { return c.triggerID }
func (c CreateTriggerCommand) TenantID() kernel.UUID           { return c.tenantID }
func (c CreateTriggerCommand) JobID() *kernel.UUID             { return c.jobID }
func (c CreateTriggerCommand) TriggerType() trigger.Type       { return c.triggerType }
func (c CreateTriggerCommand) Condition() trigger.Condition    { return c.condition }
func (c CreateTriggerCommand) ActionType() trigger.ActionType  { return c.actionType }
func (c CreateTriggerCommand) ActionConfig() map[string]any    { return c.actionConfig }
