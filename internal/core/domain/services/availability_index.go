package services

import (
	"sort"
	"time"

	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
)

// AvailabilityIndex is an in-memory view of crew time: declared availability,
// blackouts and committed schedule events, keyed by crew member id.
//
// Availability rules:
//   - a crew member with no declared "available" windows is assumed available
//     at any time; with declared windows, a candidate window must fit entirely
//     inside one of them
//   - a candidate window must not overlap any blackout window
//   - a candidate window must not overlap any committed event window
//
// The index is a snapshot: callers build it from repository state, then extend
// it with Reserve as the optimizer hands out tentative assignments. It is not
// safe for concurrent use.
type AvailabilityIndex struct {
	available   map[string][]kernel.TimeWindow
	blackouts   map[string][]kernel.TimeWindow
	commitments map[string][]kernel.TimeWindow
}

// NewAvailabilityIndex creates an empty index.
func NewAvailabilityIndex() *AvailabilityIndex {
	return &AvailabilityIndex{
		available:   make(map[string][]kernel.TimeWindow),
		blackouts:   make(map[string][]kernel.TimeWindow),
		commitments: make(map[string][]kernel.TimeWindow),
	}
}

// BuildAvailabilityIndex constructs an index from crew members and the events
// that currently occupy crew time.
func BuildAvailabilityIndex(members []*crew.CrewMember, events []*schedule.Event) *AvailabilityIndex {
	idx := NewAvailabilityIndex()
	for _, member := range members {
		idx.AddMember(member)
	}
	for _, event := range events {
		if event == nil || !event.OccupiesCrew() {
			continue
		}
		for _, crewID := range event.CrewIDs() {
			idx.Reserve(crewID, event.Window())
		}
	}
	return idx
}

// AddMember indexes the declared availability and blackout windows of a member.
func (idx *AvailabilityIndex) AddMember(member *crew.CrewMember) {
	if member == nil {
		return
	}
	key := member.ID().String()
	for _, entry := range member.Availability() {
		if entry.IsAvailable() {
			idx.available[key] = insertSorted(idx.available[key], entry.Window())
		} else {
			idx.blackouts[key] = insertSorted(idx.blackouts[key], entry.Window())
		}
	}
}

// Reserve records a committed window for a crew member. The optimizer calls
// this after each tentative assignment so later jobs see earlier decisions.
func (idx *AvailabilityIndex) Reserve(crewID kernel.UUID, window kernel.TimeWindow) {
	key := crewID.String()
	idx.commitments[key] = insertSorted(idx.commitments[key], window)
}

// IsAvailable reports whether the crew member is free for the whole window.
func (idx *AvailabilityIndex) IsAvailable(crewID kernel.UUID, window kernel.TimeWindow) bool {
	key := crewID.String()

	if declared := idx.available[key]; len(declared) > 0 {
		contained := false
		for _, w := range declared {
			if w.Contains(window) {
				contained = true
				break
			}
		}
		if !contained {
			return false
		}
	}

	for _, w := range idx.blackouts[key] {
		if w.Overlaps(window) {
			return false
		}
	}
	for _, w := range idx.commitments[key] {
		if w.Overlaps(window) {
			return false
		}
	}
	return true
}

// FindEarliestSlot searches the planning horizon for the earliest window of the
// given duration in which the crew member is free. Candidate start times are
// the horizon start and the boundaries of indexed windows, scanned in
// ascending order, which makes the result deterministic for a given index
// state. The second return value is false when no slot fits.
func (idx *AvailabilityIndex) FindEarliestSlot(
	crewID kernel.UUID,
	duration time.Duration,
	horizon kernel.TimeWindow,
) (kernel.TimeWindow, bool) {
	if duration <= 0 || duration > horizon.Duration() {
		return kernel.TimeWindow{}, false
	}

	for _, start := range idx.candidateStarts(crewID, horizon) {
		end := start.Add(duration)
		if end.After(horizon.End()) {
			break
		}
		candidate, err := kernel.NewTimeWindow(start, end)
		if err != nil {
			continue
		}
		if idx.IsAvailable(crewID, candidate) {
			return candidate, true
		}
	}
	return kernel.TimeWindow{}, false
}

// candidateStarts collects the instants at which a free stretch can begin:
// the horizon start, the end of every busy window and the start of every
// declared availability window, clipped to the horizon and sorted.
func (idx *AvailabilityIndex) candidateStarts(crewID kernel.UUID, horizon kernel.TimeWindow) []time.Time {
	key := crewID.String()

	candidates := []time.Time{horizon.Start()}
	for _, w := range idx.commitments[key] {
		candidates = append(candidates, w.End())
	}
	for _, w := range idx.blackouts[key] {
		candidates = append(candidates, w.End())
	}
	for _, w := range idx.available[key] {
		candidates = append(candidates, w.Start())
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Before(candidates[j]) })

	out := candidates[:0]
	var last time.Time
	for _, t := range candidates {
		if t.Before(horizon.Start()) || !t.Before(horizon.End()) {
			continue
		}
		if len(out) > 0 && t.Equal(last) {
			continue
		}
		out = append(out, t)
		last = t
	}
	return out
}

// insertSorted keeps window slices ordered by start time so scans over the
// index are deterministic.
func insertSorted(windows []kernel.TimeWindow, w kernel.TimeWindow) []kernel.TimeWindow {
	i := sort.Search(len(windows), func(i int) bool {
		return windows[i].Start().After(w.Start())
	})
	windows = append(windows, kernel.TimeWindow{})
	copy(windows[i+1:], windows[i:])
	windows[i] = w
	return windows
}
