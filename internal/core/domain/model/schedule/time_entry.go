package schedule

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrTimeEntryIsNotConstructed is returned when using an improperly initialized TimeEntry.
var ErrTimeEntryIsNotConstructed = errors.New("TimeEntry must be created via NewTimeEntry or RestoreTimeEntry")

// TimeEntry records time actually worked by a crew member against a job.
// Entries are reporting data: they may be recorded against completed jobs and
// block hard deletion of the job they reference.
type TimeEntry struct {
	id           kernel.UUID
	tenantID     kernel.UUID
	jobID        kernel.UUID
	crewMemberID kernel.UUID
	window       kernel.TimeWindow
	note         string
	guard        guard.ConstructorGuard
}

// NewTimeEntry creates a time entry.
func NewTimeEntry(
	id, tenantID, jobID, crewMemberID kernel.UUID,
	window kernel.TimeWindow,
	note string,
) (*TimeEntry, error) {
	entry := &TimeEntry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		jobID.Validate(),
		crewMemberID.Validate(),
		window.Validate(),
	); err != nil {
		return nil, err
	}

	entry.id = id
	entry.tenantID = tenantID
	entry.jobID = jobID
	entry.crewMemberID = crewMemberID
	entry.window = window
	entry.note = note
	return entry, nil
}

// RestoreTimeEntry reconstructs a time entry from persistence.
func RestoreTimeEntry(
	id, tenantID, jobID, crewMemberID kernel.UUID,
	window kernel.TimeWindow,
	note string,
) (*TimeEntry, error) {
	return NewTimeEntry(id, tenantID, jobID, crewMemberID, window, note)
}

// Validate ensures the entry was constructed through a factory function.
func (e *TimeEntry) Validate() error {
	if e == nil {
		return ErrTimeEntryIsNotConstructed
	}
	return e.guard.Validate(ErrTimeEntryIsNotConstructed)
}

func (e *TimeEntry) ID() kernel.UUID            { return e.id }
func (e *TimeEntry) TenantID() kernel.UUID      { return e.tenantID }
func (e *TimeEntry) JobID() kernel.UUID         { return e.jobID }
func (e *TimeEntry) CrewMemberID() kernel.UUID  { return e.crewMemberID }
func (e *TimeEntry) Window() kernel.TimeWindow  { return e.window }
func (e *TimeEntry) Note() string               { return e.note }

// Amend replaces the recorded window and note.
func (e *TimeEntry) Amend(window kernel.TimeWindow, note string) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := window.Validate(); err != nil {
		return err
	}
	e.window = window
	e.note = note
	return nil
}
