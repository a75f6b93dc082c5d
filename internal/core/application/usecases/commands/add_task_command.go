package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrAddTaskCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrAddTaskCommandIsNotConstructed = errors.New(
	"AddTaskCommand must be created via NewAddTaskCommand constructor",
)

// AddTaskCommand represents a request to append a task to a job.
type AddTaskCommand struct { //nolint:recvcheck //using for validation
	taskID            kernel.UUID
	jobID             kernel.UUID
	tenantID          kernel.UUID
	title             string
	estimatedDuration time.Duration
	sortOrder         int

	guard guard.ConstructorGuard
}

// NewAddTaskCommand creates a command to add a task to a job.
func NewAddTaskCommand(
	taskID, jobID, tenantID kernel.UUID,
	title string,
	estimatedDuration time.Duration,
	sortOrder int,
) (AddTaskCommand, error) {
	cmd := AddTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(taskID.Validate(), jobID.Validate(), tenantID.Validate()); err != nil {
		return AddTaskCommand{}, err
	}
	if title == "" {
		return AddTaskCommand{}, errs.NewValueIsRequiredError("title")
	}
	if estimatedDuration < 0 {
		return AddTaskCommand{}, errs.NewValueIsInvalidError("estimatedDuration")
	}

	cmd.taskID = taskID
	cmd.jobID = jobID
	cmd.tenantID = tenantID
	cmd.title = title
	cmd.estimatedDuration = estimatedDuration
	cmd.sortOrder = sortOrder
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTaskCommand) Validate() error {
	return c.guard.Validate(ErrAddTaskCommandIsNotConstructed)
}

func (c AddTaskCommand) TaskID() kernel.UUID               { return c.taskID }
func (c AddTaskCommand) JobID() kernel.UUID                { return c.jobID }
func (c AddTaskCommand) TenantID() kernel.UUID             { return c.tenantID }
func (c AddTaskCommand) Title() string                     { return c.title }
func (c AddTaskCommand) EstimatedDuration() time.Duration  { return c.estimatedDuration }
func (c AddTaskCommand) SortOrder() int                    { return c.sortOrder }
