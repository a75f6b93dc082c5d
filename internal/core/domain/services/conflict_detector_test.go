package services_test

import (
	"testing"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
	"fieldservice/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, time.April, 6, 8, 0, 0, 0, time.UTC)

func window(t *testing.T, startOffset, endOffset time.Duration) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(baseTime.Add(startOffset), baseTime.Add(endOffset))
	require.NoError(t, err)
	return w
}

func newEvent(t *testing.T, w kernel.TimeWindow, crewIDs ...kernel.UUID) *schedule.Event {
	t.Helper()
	event, err := schedule.NewEvent(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), w, crewIDs, "")
	require.NoError(t, err)
	return event
}

func TestConflictDetector_FindConflicts(t *testing.T) {
	detector := services.NewConflictDetector()
	crewA := kernel.NewUUID()
	crewB := kernel.NewUUID()

	t.Run("overlapping_window_same_crew_conflicts", func(t *testing.T) {
		existing := newEvent(t, window(t, 0, 2*time.Hour), crewA)

		conflicts := detector.FindConflicts(
			[]*schedule.Event{existing}, []kernel.UUID{crewA}, window(t, time.Hour, 3*time.Hour), nil)

		require.Len(t, conflicts, 1)
		assert.True(t, conflicts[0].ID().IsEqual(existing.ID()))
	})

	t.Run("disjoint_windows_do_not_conflict", func(t *testing.T) {
		existing := newEvent(t, window(t, 0, 2*time.Hour), crewA)

		conflicts := detector.FindConflicts(
			[]*schedule.Event{existing}, []kernel.UUID{crewA}, window(t, 3*time.Hour, 4*time.Hour), nil)

		assert.Empty(t, conflicts)
	})

	t.Run("back_to_back_windows_do_not_conflict", func(t *testing.T) {
		existing := newEvent(t, window(t, 0, 2*time.Hour), crewA)

		conflicts := detector.FindConflicts(
			[]*schedule.Event{existing}, []kernel.UUID{crewA}, window(t, 2*time.Hour, 4*time.Hour), nil)

		assert.Empty(t, conflicts)
	})

	t.Run("different_crew_does_not_conflict", func(t *testing.T) {
		existing := newEvent(t, window(t, 0, 2*time.Hour), crewA)

		conflicts := detector.FindConflicts(
			[]*schedule.Event{existing}, []kernel.UUID{crewB}, window(t, 0, 2*time.Hour), nil)

		assert.Empty(t, conflicts)
	})

	t.Run("cancelled_event_does_not_conflict", func(t *testing.T) {
		existing := newEvent(t, window(t, 0, 2*time.Hour), crewA)
		_, err := existing.TransitionTo(schedule.EventStatusCancelled, "dispatcher", "customer no-show")
		require.NoError(t, err)

		conflicts := detector.FindConflicts(
			[]*schedule.Event{existing}, []kernel.UUID{crewA}, window(t, 0, 2*time.Hour), nil)

		assert.Empty(t, conflicts)
	})

	t.Run("updated_event_is_excluded_from_its_own_scan", func(t *testing.T) {
		existing := newEvent(t, window(t, 0, 2*time.Hour), crewA)
		excludeID := existing.ID()

		conflicts := detector.FindConflicts(
			[]*schedule.Event{existing}, []kernel.UUID{crewA}, window(t, 0, 2*time.Hour), &excludeID)

		assert.Empty(t, conflicts)
	})

	t.Run("shared_member_of_multi_crew_event_conflicts", func(t *testing.T) {
		existing := newEvent(t, window(t, 0, 2*time.Hour), crewA, crewB)

		conflicts := detector.FindConflicts(
			[]*schedule.Event{existing}, []kernel.UUID{crewB}, window(t, time.Hour, 3*time.Hour), nil)

		require.Len(t, conflicts, 1)
	})

	t.Run("conflicts_are_ordered_by_window_start", func(t *testing.T) {
		later := newEvent(t, window(t, 2*time.Hour, 4*time.Hour), crewA)
		earlier := newEvent(t, window(t, 0, 2*time.Hour), crewA)

		conflicts := detector.FindConflicts(
			[]*schedule.Event{later, earlier}, []kernel.UUID{crewA}, window(t, 0, 4*time.Hour), nil)

		require.Len(t, conflicts, 2)
		assert.True(t, conflicts[0].ID().IsEqual(earlier.ID()))
		assert.True(t, conflicts[1].ID().IsEqual(later.ID()))
	})
}

func TestConflictDetector_HasConflict(t *testing.T) {
	detector := services.NewConflictDetector()
	crewA := kernel.NewUUID()
	existing := newEvent(t, window(t, 0, 2*time.Hour), crewA)

	assert.True(t, detector.HasConflict(
		[]*schedule.Event{existing}, []kernel.UUID{crewA}, window(t, time.Hour, 3*time.Hour), nil))
	assert.False(t, detector.HasConflict(
		[]*schedule.Event{existing}, []kernel.UUID{crewA}, window(t, 2*time.Hour, 3*time.Hour), nil))
}
