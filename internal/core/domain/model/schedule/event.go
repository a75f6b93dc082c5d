package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

var (
	// ErrEventIsNotConstructed is returned when using an improperly initialized Event.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

	// ErrCrewIsRequired is returned when an event carries no assigned crew.
	ErrCrewIsRequired = errs.NewValueIsRequiredError("assignedCrewIDs")

	// ErrEventIsTerminal is returned when mutating a Completed or Cancelled event.
	ErrEventIsTerminal = errors.New("event is in a terminal status")
)

// Event is a concrete crew + time-window commitment against a job.
// It is an aggregate root with its own status lifecycle and status log.
//
// Invariants:
//   - the window satisfies start < end (enforced by kernel.TimeWindow)
//   - at least one crew member is assigned; crew ids behave as a sorted set
//   - status transitions follow the table in event_status.go
type Event struct {
	id       kernel.UUID
	tenantID kernel.UUID
	jobID    kernel.UUID
	window   kernel.TimeWindow
	crewIDs  []kernel.UUID
	status   EventStatus
	notes    string
	guard    guard.ConstructorGuard
}

// NewEvent creates a schedule event in Planned status.
func NewEvent(
	id, tenantID, jobID kernel.UUID,
	window kernel.TimeWindow,
	crewIDs []kernel.UUID,
	notes string,
) (*Event, error) {
	e := &Event{
		status: EventStatusPlanned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setIDs(id, tenantID, jobID),
		e.setWindow(window),
		e.setCrew(crewIDs),
	); err != nil {
		return nil, err
	}

	e.notes = notes
	return e, nil
}

// RestoreEvent reconstructs a schedule event from persistence.
func RestoreEvent(
	id, tenantID, jobID kernel.UUID,
	window kernel.TimeWindow,
	crewIDs []kernel.UUID,
	status EventStatus,
	notes string,
) (*Event, error) {
	e := &Event{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setIDs(id, tenantID, jobID),
		e.setWindow(window),
		e.setCrew(crewIDs),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	e.status = status
	e.notes = notes
	return e, nil
}

// Validate ensures the event was constructed through a factory function.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

func (e *Event) ID() kernel.UUID            { return e.id }
func (e *Event) TenantID() kernel.UUID      { return e.tenantID }
func (e *Event) JobID() kernel.UUID         { return e.jobID }
func (e *Event) Window() kernel.TimeWindow  { return e.window }
func (e *Event) CrewIDs() []kernel.UUID     { return e.crewIDs }
func (e *Event) Status() EventStatus        { return e.status }
func (e *Event) Notes() string              { return e.notes }

// OccupiesCrew reports whether the event currently counts as a crew commitment.
func (e *Event) OccupiesCrew() bool {
	return e.status.OccupiesCrew()
}

// HasCrewMember reports whether the given crew member is assigned to the event.
func (e *Event) HasCrewMember(crewID kernel.UUID) bool {
	for _, id := range e.crewIDs {
		if id.IsEqual(crewID) {
			return true
		}
	}
	return false
}

// SharesCrewWith reports whether any of the given crew ids is assigned to the event.
func (e *Event) SharesCrewWith(crewIDs []kernel.UUID) bool {
	for _, id := range crewIDs {
		if e.HasCrewMember(id) {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether two events compete for the same crew member in
// overlapping windows. Terminal events never conflict.
func (e *Event) ConflictsWith(other *Event) bool {
	if other == nil || e.id.IsEqual(other.id) {
		return false
	}
	if !e.OccupiesCrew() || !other.OccupiesCrew() {
		return false
	}
	return e.SharesCrewWith(other.crewIDs) && e.window.Overlaps(other.window)
}

// Reschedule replaces the window and crew assignment of a non-terminal event.
// The caller must re-run conflict detection before persisting.
func (e *Event) Reschedule(window kernel.TimeWindow, crewIDs []kernel.UUID, notes string) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrEventIsTerminal, e.status)
	}

	if err := errors.Join(
		e.setWindow(window),
		e.setCrew(crewIDs),
	); err != nil {
		return err
	}

	e.notes = notes
	return nil
}

// TransitionTo moves the event to a new lifecycle state and returns the status-log
// row recording the transition. No log row is produced on rejection.
func (e *Event) TransitionTo(target EventStatus, actor, reason string) (*EventStatusLog, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	previous := e.status
	next, err := e.status.TransitionTo(target)
	if err != nil {
		return nil, err
	}

	logRow, err := NewEventStatusLog(e.id, previous, next, actor, reason)
	if err != nil {
		return nil, err
	}

	e.status = next
	return logRow, nil
}

func (e *Event) setIDs(id, tenantID, jobID kernel.UUID) error {
	if err := errors.Join(id.Validate(), tenantID.Validate(), jobID.Validate()); err != nil {
		return err
	}
	e.id = id
	e.tenantID = tenantID
	e.jobID = jobID
	return nil
}

func (e *Event) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	e.window = window
	return nil
}

func (e *Event) setCrew(crewIDs []kernel.UUID) error {
	deduped := dedupeCrewIDs(crewIDs)
	if len(deduped) == 0 {
		return ErrCrewIsRequired
	}
	for _, id := range deduped {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	e.crewIDs = deduped
	return nil
}

// dedupeCrewIDs returns a sorted, duplicate-free copy of the crew id set.
// Sorting keeps lock acquisition and persistence order deterministic.
func dedupeCrewIDs(crewIDs []kernel.UUID) []kernel.UUID {
	seen := make(map[string]struct{}, len(crewIDs))
	out := make([]kernel.UUID, 0, len(crewIDs))
	for _, id := range crewIDs {
		key := id.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// EventStatusLog is an append-only record of a single event status transition.
type EventStatusLog struct {
	id         kernel.UUID
	eventID    kernel.UUID
	previous   EventStatus
	next       EventStatus
	reason     string
	actor      string
	occurredAt time.Time
}

// NewEventStatusLog records a transition that just happened.
func NewEventStatusLog(eventID kernel.UUID, previous, next EventStatus, actor, reason string) (*EventStatusLog, error) {
	if err := eventID.Validate(); err != nil {
		return nil, err
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}

	return &EventStatusLog{
		id:         kernel.NewUUID(),
		eventID:    eventID,
		previous:   previous,
		next:       next,
		reason:     reason,
		actor:      actor,
		occurredAt: time.Now().UTC(),
	}, nil
}

// RestoreEventStatusLog reconstructs a log row from persistence.
func RestoreEventStatusLog(
	id, eventID kernel.UUID,
	previous, next EventStatus,
	actor, reason string,
	occurredAt time.Time,
) (*EventStatusLog, error) {
	if err := errors.Join(id.Validate(), eventID.Validate()); err != nil {
		return nil, err
	}

	return &EventStatusLog{
		id:         id,
		eventID:    eventID,
		previous:   previous,
		next:       next,
		reason:     reason,
		actor:      actor,
		occurredAt: occurredAt,
	}, nil
}

func (l *EventStatusLog) ID() kernel.UUID       { return l.id }
func (l *EventStatusLog) EventID() kernel.UUID  { return l.eventID }
func (l *EventStatusLog) Previous() EventStatus { return l.previous }
func (l *EventStatusLog) Next() EventStatus     { return l.next }
func (l *EventStatusLog) Reason() string        { return l.reason }
func (l *EventStatusLog) Actor() string         { return l.actor }
func (l *EventStatusLog) OccurredAt() time.Time { return l.occurredAt }
