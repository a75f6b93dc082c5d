package job

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created through
	// NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob")

	// ErrTitleIsRequired is returned when attempting to create a job without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

	// ErrJobIsTerminal is returned when mutating a job that is Completed or Cancelled.
	ErrJobIsTerminal = errors.New("job is in a terminal status")

	// ErrTaskNotFound is returned when a task id does not belong to the job.
	ErrTaskNotFound = errors.New("task not found")
)

// Job is a unit of field work for a customer, tracked through a status lifecycle.
// It is the aggregate root over its tasks and status history.
//
// Invariants:
//   - id, tenant, customer and job number are valid
//   - status transitions follow the allowed-transition table in status.go
//   - once Completed or Cancelled the job accepts no further mutation
//   - requiredSkills and requiredEquipment behave as sets (normalized, deduplicated)
type Job struct {
	id                kernel.UUID
	tenantID          kernel.UUID
	customerID        kernel.UUID
	sourceQuoteID     *kernel.UUID
	number            Number
	title             string
	status            Status
	priority          int
	estimatedDuration time.Duration
	scheduledWindow   *kernel.TimeWindow
	requiredSkills    []string
	requiredEquipment []string
	createdBy         string
	createdAt         time.Time
	tasks             []*Task
	guard             guard.ConstructorGuard
}

// NewJob creates a job in Planned status.
//
// Parameters:
//   - id, tenantID, customerID: identifiers (must be valid UUIDs)
//   - sourceQuoteID: the accepted quote this job originates from, nil when created directly
//   - number: tenant-unique job number allocated by the repository
//   - title: human-readable summary (required)
//   - priority: relative urgency, higher is scheduled first (must be >= 0)
//   - estimated: expected total duration, used by the schedule optimizer (must be > 0)
//   - requiredSkills, requiredEquipment: capability sets a crew must satisfy
//   - createdBy: actor identifier (required)
func NewJob(
	id, tenantID, customerID kernel.UUID,
	sourceQuoteID *kernel.UUID,
	number Number,
	title string,
	priority int,
	estimated time.Duration,
	requiredSkills, requiredEquipment []string,
	createdBy string,
) (*Job, error) {
	j := &Job{
		status: StatusPlanned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setIDs(id, tenantID, customerID, sourceQuoteID),
		j.setNumber(number),
		j.setTitle(title),
		j.setPriority(priority),
		j.setEstimatedDuration(estimated),
		j.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	j.requiredSkills = normalizeSet(requiredSkills)
	j.requiredEquipment = normalizeSet(requiredEquipment)
	j.createdAt = time.Now().UTC()
	return j, nil
}

// RestoreJob reconstructs a job aggregate from persistence, including its tasks.
func RestoreJob(
	id, tenantID, customerID kernel.UUID,
	sourceQuoteID *kernel.UUID,
	number Number,
	title string,
	status Status,
	priority int,
	estimated time.Duration,
	scheduledWindow *kernel.TimeWindow,
	requiredSkills, requiredEquipment []string,
	createdBy string,
	createdAt time.Time,
	tasks []*Task,
) (*Job, error) {
	j := &Job{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setIDs(id, tenantID, customerID, sourceQuoteID),
		j.setNumber(number),
		j.setTitle(title),
		j.setPriority(priority),
		j.setEstimatedDuration(estimated),
		j.setCreatedBy(createdBy),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	j.status = status
	j.scheduledWindow = scheduledWindow
	j.requiredSkills = normalizeSet(requiredSkills)
	j.requiredEquipment = normalizeSet(requiredEquipment)
	j.createdAt = createdAt
	j.tasks = tasks
	return j, nil
}

// Validate ensures the job was constructed through NewJob or RestoreJob.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// IsEqual compares two jobs by identity.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

func (j *Job) ID() kernel.UUID                     { return j.id }
func (j *Job) TenantID() kernel.UUID               { return j.tenantID }
func (j *Job) CustomerID() kernel.UUID             { return j.customerID }
func (j *Job) SourceQuoteID() *kernel.UUID         { return j.sourceQuoteID }
func (j *Job) Number() Number                      { return j.number }
func (j *Job) Title() string                       { return j.title }
func (j *Job) Status() Status                      { return j.status }
func (j *Job) Priority() int                       { return j.priority }
func (j *Job) EstimatedDuration() time.Duration    { return j.estimatedDuration }
func (j *Job) ScheduledWindow() *kernel.TimeWindow { return j.scheduledWindow }
func (j *Job) RequiredSkills() []string            { return j.requiredSkills }
func (j *Job) RequiredEquipment() []string         { return j.requiredEquipment }
func (j *Job) CreatedBy() string                   { return j.createdBy }
func (j *Job) CreatedAt() time.Time                { return j.createdAt }
func (j *Job) Tasks() []*Task                      { return j.tasks }

// TransitionTo moves the job to a new lifecycle state and returns the status-log
// row recording the transition. The caller persists the job and the log row in
// the same transaction. No log row is produced on rejection.
func (j *Job) TransitionTo(target Status, actor, reason, notes string) (*StatusLog, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	previous := j.status
	next, err := j.status.TransitionTo(target)
	if err != nil {
		return nil, err
	}

	logRow, err := NewStatusLog(j.id, previous, next, actor, reason, notes)
	if err != nil {
		return nil, err
	}

	j.status = next
	return logRow, nil
}

// MarkScheduled records the committed schedule window on the job. When the job is
// still Planned it also transitions to Scheduled and returns the log row; when the
// job already carries a schedule only the window is replaced and no log is written.
func (j *Job) MarkScheduled(window kernel.TimeWindow, actor string) (*StatusLog, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if j.status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s", ErrJobIsTerminal, j.status)
	}

	j.scheduledWindow = &window
	if j.status != StatusPlanned {
		return nil, nil
	}

	return j.TransitionTo(StatusScheduled, actor, "schedule event committed", "")
}

// UpdateDetails replaces the mutable descriptive fields of the job.
func (j *Job) UpdateDetails(title string, priority int, estimated time.Duration) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if j.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrJobIsTerminal, j.status)
	}

	return errors.Join(
		j.setTitle(title),
		j.setPriority(priority),
		j.setEstimatedDuration(estimated),
	)
}

// SetRequirements replaces the skill and equipment sets.
func (j *Job) SetRequirements(skills, equipment []string) error {
	if j.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrJobIsTerminal, j.status)
	}
	j.requiredSkills = normalizeSet(skills)
	j.requiredEquipment = normalizeSet(equipment)
	return nil
}

// AddTask appends a task to the job.
func (j *Job) AddTask(task *Task) error {
	if task == nil {
		return errs.NewValueIsRequiredError("task")
	}
	if j.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrJobIsTerminal, j.status)
	}
	j.tasks = append(j.tasks, task)
	return nil
}

// TaskByID finds a task belonging to the job.
func (j *Job) TaskByID(id kernel.UUID) (*Task, error) {
	for _, t := range j.tasks {
		if t.ID().IsEqual(id) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// RemoveTask detaches a task from the job.
func (j *Job) RemoveTask(id kernel.UUID) error {
	if j.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrJobIsTerminal, j.status)
	}
	for i, t := range j.tasks {
		if t.ID().IsEqual(id) {
			j.tasks = append(j.tasks[:i], j.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

func (j *Job) setIDs(id, tenantID, customerID kernel.UUID, sourceQuoteID *kernel.UUID) error {
	if err := errors.Join(id.Validate(), tenantID.Validate(), customerID.Validate()); err != nil {
		return err
	}
	if sourceQuoteID != nil {
		if err := sourceQuoteID.Validate(); err != nil {
			return err
		}
	}
	j.id = id
	j.tenantID = tenantID
	j.customerID = customerID
	j.sourceQuoteID = sourceQuoteID
	return nil
}

func (j *Job) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	j.number = number
	return nil
}

func (j *Job) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleIsRequired
	}
	j.title = title
	return nil
}

func (j *Job) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is negative", priority))
	}
	j.priority = priority
	return nil
}

func (j *Job) setEstimatedDuration(estimated time.Duration) error {
	if estimated <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated duration",
			fmt.Errorf("%s is not greater than 0", estimated))
	}
	j.estimatedDuration = estimated
	return nil
}

func (j *Job) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	j.createdBy = createdBy
	return nil
}

// normalizeSet trims, deduplicates and sorts a string set.
func normalizeSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
