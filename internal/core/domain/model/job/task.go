package job

import (
	"fmt"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
)

// TaskStatus represents the lifecycle state of a single task within a job.
type TaskStatus int

const (
	TaskStatusUnknown TaskStatus = iota
	TaskStatusPending
	TaskStatusInProgress
	TaskStatusCompleted
	TaskStatusCancelled
)

func taskStatusStrings() map[TaskStatus]string {
	return map[TaskStatus]string{
		TaskStatusUnknown:    "Unknown",
		TaskStatusPending:    "Pending",
		TaskStatusInProgress: "InProgress",
		TaskStatusCompleted:  "Completed",
		TaskStatusCancelled:  "Cancelled",
	}
}

// TaskStatusFromString parses a persisted task status name.
func TaskStatusFromString(s string) (TaskStatus, error) {
	for status, name := range taskStatusStrings() {
		if status != TaskStatusUnknown && name == s {
			return status, nil
		}
	}
	return TaskStatusUnknown, fmt.Errorf("%q is not a valid task status", s)
}

// Validate checks whether the task status is one of the defined states.
func (s TaskStatus) Validate() error {
	if s == TaskStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("task status",
			fmt.Errorf("%d is not a valid task status", int(s)))
	}
	if _, ok := taskStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("task status",
			fmt.Errorf("%d is not a valid task status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the task status.
func (s TaskStatus) String() string {
	if name, ok := taskStatusStrings()[s]; ok {
		return name
	}
	return "Unknown"
}

// Task is a unit of work inside a Job. Tasks are created individually or in bulk
// when a job originates from an accepted quote (one task per line item).
type Task struct {
	id                kernel.UUID
	title             string
	status            TaskStatus
	estimatedDuration time.Duration
	actualDuration    time.Duration
	sortOrder         int
}

// NewTask creates a pending task.
func NewTask(id kernel.UUID, title string, estimated time.Duration, sortOrder int) (*Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if estimated < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("estimated duration",
			fmt.Errorf("%s is negative", estimated))
	}

	return &Task{
		id:                id,
		title:             title,
		status:            TaskStatusPending,
		estimatedDuration: estimated,
		sortOrder:         sortOrder,
	}, nil
}

// RestoreTask reconstructs a task from persistence.
func RestoreTask(
	id kernel.UUID,
	title string,
	status TaskStatus,
	estimated, actual time.Duration,
	sortOrder int,
) (*Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Task{
		id:                id,
		title:             title,
		status:            status,
		estimatedDuration: estimated,
		actualDuration:    actual,
		sortOrder:         sortOrder,
	}, nil
}

func (t *Task) ID() kernel.UUID                   { return t.id }
func (t *Task) Title() string                     { return t.title }
func (t *Task) Status() TaskStatus                { return t.status }
func (t *Task) EstimatedDuration() time.Duration  { return t.estimatedDuration }
func (t *Task) ActualDuration() time.Duration     { return t.actualDuration }
func (t *Task) SortOrder() int                    { return t.sortOrder }

// Rename updates the task title.
func (t *Task) Rename(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	t.title = title
	return nil
}

// Start moves a pending task into progress.
func (t *Task) Start() error {
	if t.status != TaskStatusPending {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.status, TaskStatusInProgress)
	}
	t.status = TaskStatusInProgress
	return nil
}

// Complete finishes the task, recording the actual duration spent.
func (t *Task) Complete(actual time.Duration) error {
	if t.status != TaskStatusPending && t.status != TaskStatusInProgress {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.status, TaskStatusCompleted)
	}
	if actual < 0 {
		return errs.NewValueIsInvalidErrorWithCause("actual duration",
			fmt.Errorf("%s is negative", actual))
	}
	t.status = TaskStatusCompleted
	t.actualDuration = actual
	return nil
}

// Cancel abandons the task.
func (t *Task) Cancel() error {
	if t.status == TaskStatusCompleted || t.status == TaskStatusCancelled {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.status, TaskStatusCancelled)
	}
	t.status = TaskStatusCancelled
	return nil
}
