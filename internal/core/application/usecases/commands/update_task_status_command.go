package commands

import (
	"errors"
	"fmt"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrUpdateTaskStatusCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrUpdateTaskStatusCommandIsNotConstructed = errors.New(
	"UpdateTaskStatusCommand must be created via NewUpdateTaskStatusCommand constructor",
)

// TaskAction names the lifecycle operation applied to a task.
type TaskAction string

const (
	TaskActionStart    TaskAction = "start"
	TaskActionComplete TaskAction = "complete"
	TaskActionCancel   TaskAction = "cancel"
)

// Validate checks whether the action is one of the supported operations.
func (a TaskAction) Validate() error {
	switch a {
	case TaskActionStart, TaskActionComplete, TaskActionCancel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("task action",
			fmt.Errorf("%q is not a supported task action", string(a)))
	}
}

// UpdateTaskStatusCommand represents a request to start, complete or cancel a
// task within a job. Completion records the actual time spent.
type UpdateTaskStatusCommand struct { //nolint:recvcheck //using for validation
	taskID         kernel.UUID
	jobID          kernel.UUID
	tenantID       kernel.UUID
	action         TaskAction
	actualDuration time.Duration

	guard guard.ConstructorGuard
}

// NewUpdateTaskStatusCommand creates a command to change a task's status.
func NewUpdateTaskStatusCommand(
	taskID, jobID, tenantID kernel.UUID,
	action TaskAction,
	actualDuration time.Duration,
) (UpdateTaskStatusCommand, error) {
	cmd := UpdateTaskStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taskID.Validate(),
		jobID.Validate(),
		tenantID.Validate(),
		action.Validate(),
	); err != nil {
		return UpdateTaskStatusCommand{}, err
	}
	if actualDuration < 0 {
		return UpdateTaskStatusCommand{}, errs.NewValueIsInvalidError("actualDuration")
	}

	cmd.taskID = taskID
	cmd.jobID = jobID
	cmd.tenantID = tenantID
	cmd.action = action
	cmd.actualDuration = actualDuration
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskStatusCommandIsNotConstructed)
}

func (c UpdateTaskStatusCommand) TaskID() kernel.UUID            { return c.taskID }
func (c UpdateTaskStatusCommand) JobID() kernel.UUID             { return c.jobID }
func (c UpdateTaskStatusCommand) TenantID() kernel.UUID          { return c.tenantID }
func (c UpdateTaskStatusCommand) Action() TaskAction             { return c.action }
func (c UpdateTaskStatusCommand) ActualDuration() time.Duration  { return c.actualDuration }
