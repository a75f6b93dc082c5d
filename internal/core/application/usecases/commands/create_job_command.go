package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrCreateJobCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to create a new job, either directly or
// from an accepted quote. When task titles are supplied (one per quote line
// item) the tasks are created with the job in the same transaction.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(kernel.NewUUID(), tenantID, customerID, nil,
//	    "Replace water heater", 3, 4*time.Hour, []string{"plumbing"}, nil, nil, "dispatcher")
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID             kernel.UUID
	tenantID          kernel.UUID
	customerID        kernel.UUID
	sourceQuoteID     *kernel.UUID
	title             string
	priority          int
	estimatedDuration time.Duration
	requiredSkills    []string
	requiredEquipment []string
	taskTitles        []string
	createdBy         string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to register a new job.
func NewCreateJobCommand(
	jobID, tenantID, customerID kernel.UUID,
	sourceQuoteID *kernel.UUID,
	title string,
	priority int,
	estimatedDuration time.Duration,
	requiredSkills, requiredEquipment, taskTitles []string,
	createdBy string,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(jobID, tenantID, customerID, sourceQuoteID),
		cmd.setTitle(title),
		cmd.setPriority(priority),
		cmd.setEstimatedDuration(estimatedDuration),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateJobCommand{}, err
	}

	cmd.requiredSkills = requiredSkills
	cmd.requiredEquipment = requiredEquipment
	cmd.taskTitles = taskTitles
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) JobID() kernel.UUID                  { return c.jobID }
func (c CreateJobCommand) TenantID() kernel.UUID               { return c.tenantID }
func (c CreateJobCommand) CustomerID() kernel.UUID             { return c.customerID }
func (c CreateJobCommand) SourceQuoteID() *kernel.UUID         { return c.sourceQuoteID }
func (c CreateJobCommand) Title() string                       { return c.title }
func (c CreateJobCommand) Priority() int                       { return c.priority }
func (c CreateJobCommand) EstimatedDuration() time.Duration    { return c.estimatedDuration }
func (c CreateJobCommand) RequiredSkills() []string            { return c.requiredSkills }
func (c CreateJobCommand) RequiredEquipment() []string         { return c.requiredEquipment }
func (c CreateJobCommand) TaskTitles() []string                { return c.taskTitles }
func (c CreateJobCommand) CreatedBy() string                   { return c.createdBy }

func (c *CreateJobCommand) setIDs(jobID, tenantID, customerID kernel.UUID, sourceQuoteID *kernel.UUID) error {
	if err := errors.Join(jobID.Validate(), tenantID.Validate(), customerID.Validate()); err != nil {
		return err
	}
	if sourceQuoteID != nil {
		if err := sourceQuoteID.Validate(); err != nil {
			return err
		}
	}
	c.jobID = jobID
	c.tenantID = tenantID
	c.customerID = customerID
	c.sourceQuoteID = sourceQuoteID
	return nil
}

func (c *CreateJobCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CreateJobCommand) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsInvalidError("priority")
	}
	c.priority = priority
	return nil
}

func (c *CreateJobCommand) setEstimatedDuration(estimated time.Duration) error {
	if estimated <= 0 {
		return errs.NewValueIsInvalidError("estimatedDuration")
	}
	c.estimatedDuration = estimated
	return nil
}

func (c *CreateJobCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	c.createdBy = createdBy
	return nil
}
