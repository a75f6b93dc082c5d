package services

import (
	"sort"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
)

// ConflictDetector is a domain service that checks a proposed crew assignment
// against existing schedule events.
//
// Business rules:
//   - two events conflict iff they share at least one crew member and their
//     windows overlap under the half-open interval rule
//   - Completed and Cancelled events never conflict; they no longer occupy crew
//   - when updating an event, the event itself is excluded from the scan
//
// Example usage:
//
//	detector := NewConflictDetector()
//	conflicts := detector.FindConflicts(activeEvents, crewIDs, window, nil)
//	if len(conflicts) > 0 {
//	    // reject or require an explicit override
//	}
type ConflictDetector struct{}

// NewConflictDetector creates a new ConflictDetector instance.
func NewConflictDetector() ConflictDetector {
	return ConflictDetector{}
}

// FindConflicts returns the events competing with the proposed assignment,
// ordered by window start and then event id so callers report them
// deterministically. excludeEventID, when non-nil, removes the event being
// updated from consideration.
func (d ConflictDetector) FindConflicts(
	existing []*schedule.Event,
	crewIDs []kernel.UUID,
	window kernel.TimeWindow,
	excludeEventID *kernel.UUID,
) []*schedule.Event {
	var conflicts []*schedule.Event
	for _, event := range existing {
		if event == nil {
			continue
		}
		if excludeEventID != nil && event.ID().IsEqual(*excludeEventID) {
			continue
		}
		if !event.OccupiesCrew() {
			continue
		}
		if !event.SharesCrewWith(crewIDs) {
			continue
		}
		if !event.Window().Overlaps(window) {
			continue
		}
		conflicts = append(conflicts, event)
	}

	sort.Slice(conflicts, func(i, j int) bool {
		si, sj := conflicts[i].Window().Start(), conflicts[j].Window().Start()
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return conflicts[i].ID().String() < conflicts[j].ID().String()
	})
	return conflicts
}

// HasConflict reports whether at least one existing event competes with the
// proposed assignment.
func (d ConflictDetector) HasConflict(
	existing []*schedule.Event,
	crewIDs []kernel.UUID,
	window kernel.TimeWindow,
	excludeEventID *kernel.UUID,
) bool {
	return len(d.FindConflicts(existing, crewIDs, window, excludeEventID)) > 0
}
