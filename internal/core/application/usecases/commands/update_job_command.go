package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrUpdateJobCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand represents a request to change the descriptive fields and
// requirement sets of an existing job. Status changes go through
// TransitionJobStatusCommand instead.
type UpdateJobCommand struct { //nolint:recvcheck //using for validation
	jobID             kernel.UUID
	tenantID          kernel.UUID
	title             string
	priority          int
	estimatedDuration time.Duration
	requiredSkills    []string
	requiredEquipment []string

	guard guard.ConstructorGuard
}

// NewUpdateJobCommand creates a command to update a job's details.
func NewUpdateJobCommand(
	jobID, tenantID kernel.UUID,
	title string,
	priority int,
	estimatedDuration time.Duration,
	requiredSkills, requiredEquipment []string,
) (UpdateJobCommand, error) {
	cmd := UpdateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(jobID.Validate(), tenantID.Validate()); err != nil {
		return UpdateJobCommand{}, err
	}
	if title == "" {
		return UpdateJobCommand{}, errs.NewValueIsRequiredError("title")
	}
	if priority < 0 {
		return UpdateJobCommand{}, errs.NewValueIsInvalidError("priority")
	}
	if estimatedDuration <= 0 {
		return UpdateJobCommand{}, errs.NewValueIsInvalidError("estimatedDuration")
	}

	cmd.jobID = jobID
	cmd.tenantID = tenantID
	cmd.title = title
	cmd.priority = priority
	cmd.estimatedDuration = estimatedDuration
	cmd.requiredSkills = requiredSkills
	cmd.requiredEquipment = requiredEquipment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

func (c UpdateJobCommand) JobID() kernel.UUID               { return c.jobID }
func (c UpdateJobCommand) TenantID() kernel.UUID            { return c.tenantID }
func (c UpdateJobCommand) Title() string                    { return c.title }
func (c UpdateJobCommand) Priority() int                    { return c.priority }
func (c UpdateJobCommand) EstimatedDuration() time.Duration { return c.estimatedDuration }
func (c UpdateJobCommand) RequiredSkills() []string         { return c.requiredSkills }
func (c UpdateJobCommand) RequiredEquipment() []string      { return c.requiredEquipment }
