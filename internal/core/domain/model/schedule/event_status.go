package schedule

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a requested event status change is not
// present in the allowed-transition table.
var ErrInvalidTransition = errors.New("invalid event status transition")

// EventStatus represents the lifecycle state of a schedule event.
//
// State transitions:
//
//	Planned ──> Confirmed ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// A planned event may also start directly (Planned -> InProgress) when a crew
// shows up without an explicit confirmation step. Completed and Cancelled are
// terminal. Only Planned, Confirmed and InProgress events occupy crew time for
// conflict detection.
type EventStatus int

const (
	EventStatusUnknown EventStatus = iota
	EventStatusPlanned
	EventStatusConfirmed
	EventStatusInProgress
	EventStatusCompleted
	EventStatusCancelled
)

func eventStatusStrings() map[EventStatus]string {
	return map[EventStatus]string{
		EventStatusUnknown:    "Unknown",
		EventStatusPlanned:    "Planned",
		EventStatusConfirmed:  "Confirmed",
		EventStatusInProgress: "InProgress",
		EventStatusCompleted:  "Completed",
		EventStatusCancelled:  "Cancelled",
	}
}

func eventTransitions() map[EventStatus][]EventStatus {
	return map[EventStatus][]EventStatus{
		EventStatusPlanned:    {EventStatusConfirmed, EventStatusInProgress, EventStatusCancelled},
		EventStatusConfirmed:  {EventStatusInProgress, EventStatusCancelled},
		EventStatusInProgress: {EventStatusCompleted, EventStatusCancelled},
		EventStatusCompleted:  {},
		EventStatusCancelled:  {},
	}
}

// EventStatusFromString parses a persisted or user-supplied status name.
func EventStatusFromString(s string) (EventStatus, error) {
	for status, name := range eventStatusStrings() {
		if status != EventStatusUnknown && name == s {
			return status, nil
		}
	}
	return EventStatusUnknown, fmt.Errorf("%q is not a valid event status", s)
}

// Validate checks whether the status is one of the defined lifecycle states.
func (s EventStatus) Validate() error {
	if _, ok := eventTransitions()[s]; !ok {
		return fmt.Errorf("%d is not a valid event status", int(s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s EventStatus) String() string {
	if name, ok := eventStatusStrings()[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s EventStatus) IsTerminal() bool {
	return s == EventStatusCompleted || s == EventStatusCancelled
}

// OccupiesCrew reports whether events in this status count as crew commitments
// for conflict detection.
func (s EventStatus) OccupiesCrew() bool {
	return s == EventStatusPlanned || s == EventStatusConfirmed || s == EventStatusInProgress
}

// TransitionTo validates and performs a single state transition.
func (s EventStatus) TransitionTo(target EventStatus) (EventStatus, error) {
	if err := target.Validate(); err != nil {
		return EventStatusUnknown, fmt.Errorf("%w: %s", ErrInvalidTransition, err)
	}
	for _, next := range eventTransitions()[s] {
		if next == target {
			return target, nil
		}
	}
	return EventStatusUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
}
