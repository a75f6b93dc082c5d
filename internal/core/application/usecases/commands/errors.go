package commands

import (
	"errors"
	"fmt"
	"strings"

	"fieldservice/internal/core/domain/model/kernel"
)

var (
	// ErrSchedulingConflict is the sentinel wrapped by SchedulingConflictError.
	// Use errors.Is to detect it and errors.As to read the conflicting events.
	ErrSchedulingConflict = errors.New("scheduling conflict")

	// ErrUnmetDependencies is the sentinel wrapped by UnmetDependencyError.
	ErrUnmetDependencies = errors.New("job has incomplete prerequisites")

	// ErrCrewMemberInactive is returned when scheduling onto a deactivated crew member.
	ErrCrewMemberInactive = errors.New("crew member is deactivated")

	// ErrCrewNotAvailable is the sentinel wrapped by CrewNotAvailableError.
	ErrCrewNotAvailable = errors.New("crew member is not available in the requested window")

	// ErrJobHasReferences is returned when hard-deleting a job that still has
	// tasks, schedule events or time entries attached.
	ErrJobHasReferences = errors.New("job is referenced by tasks, events or time entries")
)

// SchedulingConflictError reports which existing events compete with the
// requested assignment.
type SchedulingConflictError struct {
	ConflictingEventIDs []kernel.UUID
}

func (e *SchedulingConflictError) Error() string {
	ids := make([]string, len(e.ConflictingEventIDs))
	for i, id := range e.ConflictingEventIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("scheduling conflict with events: %s", strings.Join(ids, ", "))
}

func (e *SchedulingConflictError) Unwrap() error {
	return ErrSchedulingConflict
}

// NewSchedulingConflictError creates a SchedulingConflictError from the
// conflicting event ids.
func NewSchedulingConflictError(ids []kernel.UUID) error {
	return &SchedulingConflictError{ConflictingEventIDs: ids}
}

// UnmetDependencyError reports which prerequisite jobs block scheduling.
type UnmetDependencyError struct {
	BlockingJobIDs []kernel.UUID
}

func (e *UnmetDependencyError) Error() string {
	ids := make([]string, len(e.BlockingJobIDs))
	for i, id := range e.BlockingJobIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("job has incomplete prerequisites: %s", strings.Join(ids, ", "))
}

func (e *UnmetDependencyError) Unwrap() error {
	return ErrUnmetDependencies
}

// NewUnmetDependencyError creates an UnmetDependencyError from the blocking
// prerequisite ids.
func NewUnmetDependencyError(ids []kernel.UUID) error {
	return &UnmetDependencyError{BlockingJobIDs: ids}
}

// CrewNotAvailableError reports which crew member failed the availability check.
type CrewNotAvailableError struct {
	CrewMemberID kernel.UUID
}

func (e *CrewNotAvailableError) Error() string {
	return fmt.Sprintf("crew member %s is not available in the requested window", e.CrewMemberID)
}

func (e *CrewNotAvailableError) Unwrap() error {
	return ErrCrewNotAvailable
}
