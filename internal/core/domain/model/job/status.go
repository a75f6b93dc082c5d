package job

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a requested status change is not present
// in the allowed-transition table. Use errors.Is to detect it.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a job.
// It implements a state machine with defined transitions so jobs always follow
// the field-service workflow.
//
// State transitions:
//
//	Planned ──> Scheduled ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> OnHold / Cancelled
//
// OnHold and Cancelled are reachable from any non-terminal state; a job on hold
// may resume to any non-terminal forward state. Completed and Cancelled are
// terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlanned is the initial status of every job.
	StatusPlanned

	// StatusScheduled indicates the job has at least one committed schedule event.
	StatusScheduled

	// StatusInProgress indicates a crew is actively working the job.
	StatusInProgress

	// StatusCompleted is a terminal success state.
	StatusCompleted

	// StatusOnHold pauses a job without cancelling it.
	StatusOnHold

	// StatusCancelled is a terminal failure state and doubles as the soft-delete marker.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPlanned:    "Planned",
		StatusScheduled:  "Scheduled",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusOnHold:     "OnHold",
		StatusCancelled:  "Cancelled",
	}
}

// allowedTransitions is the single source of truth for the job state machine.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPlanned:    {StatusScheduled, StatusOnHold, StatusCancelled},
		StatusScheduled:  {StatusInProgress, StatusOnHold, StatusCancelled},
		StatusInProgress: {StatusCompleted, StatusOnHold, StatusCancelled},
		StatusOnHold:     {StatusPlanned, StatusScheduled, StatusInProgress, StatusCancelled},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
}

// StatusFromString parses a persisted or user-supplied status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%q is not a valid job status", s)
}

// Validate checks whether the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := allowedTransitions()[s]; !ok {
		return fmt.Errorf("%d is not a valid job status", int(s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if name, ok := statusStrings()[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a single state transition.
// It returns ErrInvalidTransition (wrapped with both states) when the move is not
// in the allowed-transition table.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, fmt.Errorf("%w: %s", ErrInvalidTransition, err)
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}
