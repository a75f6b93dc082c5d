package trigger

import (
	"errors"
	"fmt"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrTriggerIsNotConstructed is returned when using an improperly initialized Trigger.
var ErrTriggerIsNotConstructed = errors.New("Trigger must be created via NewTrigger or RestoreTrigger")

// Type identifies the domain event a trigger listens for.
type Type string

const (
	TypeJobCreated      Type = "JOB_CREATED"
	TypeStatusChange    Type = "STATUS_CHANGE"
	TypeScheduleCreated Type = "SCHEDULE_CREATED"
	TypeScheduleUpdated Type = "SCHEDULE_UPDATED"
)

// Validate checks whether the type is one of the defined domain events.
func (t Type) Validate() error {
	switch t {
	case TypeJobCreated, TypeStatusChange, TypeScheduleCreated, TypeScheduleUpdated:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("trigger type",
			fmt.Errorf("%q is not a supported trigger type", string(t)))
	}
}

// ActionType identifies the side effect dispatched when a trigger fires.
type ActionType string

const (
	ActionNotify          ActionType = "NOTIFY"
	ActionCreateTask      ActionType = "CREATE_TASK"
	ActionGenerateInvoice ActionType = "GENERATE_INVOICE"
)

// Validate checks whether the action type is supported.
func (a ActionType) Validate() error {
	switch a {
	case ActionNotify, ActionCreateTask, ActionGenerateInvoice:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action type",
			fmt.Errorf("%q is not a supported action type", string(a)))
	}
}

// Trigger is an automation rule: when a matching domain event occurs, the
// configured action is dispatched. A trigger is either global (jobID nil) or
// scoped to a single job.
type Trigger struct {
	id            kernel.UUID
	tenantID      kernel.UUID
	jobID         *kernel.UUID
	triggerType   Type
	condition     Condition
	actionType    ActionType
	actionConfig  map[string]any
	isActive      bool
	lastTriggered *time.Time
	triggerCount  int64
	guard         guard.ConstructorGuard
}

// NewTrigger creates an active trigger with a zero fire count.
func NewTrigger(
	id, tenantID kernel.UUID,
	jobID *kernel.UUID,
	triggerType Type,
	condition Condition,
	actionType ActionType,
	actionConfig map[string]any,
) (*Trigger, error) {
	tr := &Trigger{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tr.setIDs(id, tenantID, jobID),
		triggerType.Validate(),
		condition.Validate(),
		actionType.Validate(),
	); err != nil {
		return nil, err
	}

	tr.triggerType = triggerType
	tr.condition = condition
	tr.actionType = actionType
	tr.actionConfig = actionConfig
	return tr, nil
}

// RestoreTrigger reconstructs a trigger from persistence.
func RestoreTrigger(
	id, tenantID kernel.UUID,
	jobID *kernel.UUID,
	triggerType Type,
	condition Condition,
	actionType ActionType,
	actionConfig map[string]any,
	isActive bool,
	lastTriggered *time.Time,
	triggerCount int64,
) (*Trigger, error) {
	tr, err := NewTrigger(id, tenantID, jobID, triggerType, condition, actionType, actionConfig)
	if err != nil {
		return nil, err
	}
	tr.isActive = isActive
	tr.lastTriggered = lastTriggered
	tr.triggerCount = triggerCount
	return tr, nil
}

// Validate ensures the trigger was constructed through a factory function.
func (t *Trigger) Validate() error {
	if t == nil {
		return ErrTriggerIsNotConstructed
	}
	return t.guard.Validate(ErrTriggerIsNotConstructed)
}

func (t *Trigger) ID() kernel.UUID            { return t.id }
func (t *Trigger) TenantID() kernel.UUID      { return t.tenantID }
func (t *Trigger) JobID() *kernel.UUID        { return t.jobID }
func (t *Trigger) TriggerType() Type          { return t.triggerType }
func (t *Trigger) Condition() Condition       { return t.condition }
func (t *Trigger) ActionType() ActionType     { return t.actionType }
func (t *Trigger) ActionConfig() map[string]any { return t.actionConfig }
func (t *Trigger) IsActive() bool             { return t.isActive }
func (t *Trigger) LastTriggered() *time.Time  { return t.lastTriggered }
func (t *Trigger) TriggerCount() int64        { return t.triggerCount }

// IsGlobal reports whether the trigger applies to every job in the tenant.
func (t *Trigger) IsGlobal() bool {
	return t.jobID == nil
}

// AppliesTo reports whether the trigger listens for the given event type on the
// given job. Inactive triggers apply to nothing.
func (t *Trigger) AppliesTo(triggerType Type, jobID kernel.UUID) bool {
	if !t.isActive || t.triggerType != triggerType {
		return false
	}
	return t.IsGlobal() || t.jobID.IsEqual(jobID)
}

// Matches evaluates the condition predicate against an event context.
func (t *Trigger) Matches(context map[string]any) bool {
	return t.condition.Matches(context)
}

// MarkFired records a successful dispatch. The fire count only ever grows.
func (t *Trigger) MarkFired(at time.Time) {
	t.triggerCount++
	fired := at.UTC()
	t.lastTriggered = &fired
}

// Update replaces the mutable rule fields.
func (t *Trigger) Update(condition Condition, actionType ActionType, actionConfig map[string]any, isActive bool) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := errors.Join(condition.Validate(), actionType.Validate()); err != nil {
		return err
	}
	t.condition = condition
	t.actionType = actionType
	t.actionConfig = actionConfig
	t.isActive = isActive
	return nil
}

func (t *Trigger) setIDs(id, tenantID kernel.UUID, jobID *kernel.UUID) error {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return err
	}
	if jobID != nil {
		if err := jobID.Validate(); err != nil {
			return err
		}
	}
	t.id = id
	t.tenantID = tenantID
	t.jobID = jobID
	return nil
}
