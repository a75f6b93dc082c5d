package services_test

import (
	"testing"
	"time"

	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
	"fieldservice/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMember(t *testing.T) *crew.CrewMember {
	t.Helper()
	m, err := crew.NewCrewMember(kernel.NewUUID(), kernel.NewUUID(), "Sam Carter", []string{"electrical"}, 8, 40)
	require.NoError(t, err)
	return m
}

func TestAvailabilityIndex_IsAvailable(t *testing.T) {
	t.Run("no_declared_windows_means_always_available", func(t *testing.T) {
		member := newMember(t)
		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, nil)

		assert.True(t, idx.IsAvailable(member.ID(), window(t, 0, 4*time.Hour)))
	})

	t.Run("declared_availability_restricts_to_those_windows", func(t *testing.T) {
		member := newMember(t)
		_, err := member.DeclareAvailability(window(t, 0, 4*time.Hour), crew.KindAvailable)
		require.NoError(t, err)

		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, nil)

		assert.True(t, idx.IsAvailable(member.ID(), window(t, time.Hour, 3*time.Hour)))
		assert.False(t, idx.IsAvailable(member.ID(), window(t, 3*time.Hour, 5*time.Hour)),
			"window sticking out of the declared availability must be rejected")
		assert.False(t, idx.IsAvailable(member.ID(), window(t, 6*time.Hour, 7*time.Hour)))
	})

	t.Run("blackout_blocks_overlapping_windows", func(t *testing.T) {
		member := newMember(t)
		_, err := member.DeclareAvailability(window(t, 2*time.Hour, 3*time.Hour), crew.KindBlackout)
		require.NoError(t, err)

		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, nil)

		assert.False(t, idx.IsAvailable(member.ID(), window(t, time.Hour, 4*time.Hour)))
		assert.True(t, idx.IsAvailable(member.ID(), window(t, 3*time.Hour, 4*time.Hour)),
			"window starting exactly at blackout end is free")
	})

	t.Run("committed_event_blocks_overlapping_windows", func(t *testing.T) {
		member := newMember(t)
		event := newEvent(t, window(t, 0, 2*time.Hour), member.ID())

		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, []*schedule.Event{event})

		assert.False(t, idx.IsAvailable(member.ID(), window(t, time.Hour, 3*time.Hour)))
		assert.True(t, idx.IsAvailable(member.ID(), window(t, 2*time.Hour, 3*time.Hour)))
	})

	t.Run("cancelled_event_does_not_occupy_crew", func(t *testing.T) {
		member := newMember(t)
		event := newEvent(t, window(t, 0, 2*time.Hour), member.ID())
		_, err := event.TransitionTo(schedule.EventStatusCancelled, "dispatcher", "cancelled")
		require.NoError(t, err)

		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, []*schedule.Event{event})

		assert.True(t, idx.IsAvailable(member.ID(), window(t, 0, 2*time.Hour)))
	})

	t.Run("reserve_blocks_subsequent_checks", func(t *testing.T) {
		member := newMember(t)
		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, nil)

		idx.Reserve(member.ID(), window(t, 0, 2*time.Hour))

		assert.False(t, idx.IsAvailable(member.ID(), window(t, time.Hour, 2*time.Hour)))
	})
}

func TestAvailabilityIndex_FindEarliestSlot(t *testing.T) {
	horizon := func(t *testing.T) kernel.TimeWindow { return window(t, 0, 8*time.Hour) }

	t.Run("empty_schedule_starts_at_horizon_start", func(t *testing.T) {
		member := newMember(t)
		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, nil)

		slot, ok := idx.FindEarliestSlot(member.ID(), 2*time.Hour, horizon(t))

		require.True(t, ok)
		assert.True(t, slot.IsEqual(window(t, 0, 2*time.Hour)))
	})

	t.Run("slot_starts_right_after_a_commitment", func(t *testing.T) {
		member := newMember(t)
		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, nil)
		idx.Reserve(member.ID(), window(t, 0, 3*time.Hour))

		slot, ok := idx.FindEarliestSlot(member.ID(), 2*time.Hour, horizon(t))

		require.True(t, ok)
		assert.True(t, slot.IsEqual(window(t, 3*time.Hour, 5*time.Hour)))
	})

	t.Run("gap_between_commitments_is_used_when_large_enough", func(t *testing.T) {
		member := newMember(t)
		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, nil)
		idx.Reserve(member.ID(), window(t, 0, 2*time.Hour))
		idx.Reserve(member.ID(), window(t, 3*time.Hour, 5*time.Hour))

		slot, ok := idx.FindEarliestSlot(member.ID(), time.Hour, horizon(t))
		require.True(t, ok)
		assert.True(t, slot.IsEqual(window(t, 2*time.Hour, 3*time.Hour)))

		slot, ok = idx.FindEarliestSlot(member.ID(), 2*time.Hour, horizon(t))
		require.True(t, ok)
		assert.True(t, slot.IsEqual(window(t, 5*time.Hour, 7*time.Hour)),
			"a too-small gap is skipped in favor of the next free stretch")
	})

	t.Run("declared_availability_bounds_the_search", func(t *testing.T) {
		member := newMember(t)
		_, err := member.DeclareAvailability(window(t, 2*time.Hour, 6*time.Hour), crew.KindAvailable)
		require.NoError(t, err)
		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, nil)

		slot, ok := idx.FindEarliestSlot(member.ID(), 2*time.Hour, horizon(t))

		require.True(t, ok)
		assert.True(t, slot.IsEqual(window(t, 2*time.Hour, 4*time.Hour)))
	})

	t.Run("no_room_in_horizon", func(t *testing.T) {
		member := newMember(t)
		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, nil)
		idx.Reserve(member.ID(), window(t, 0, 7*time.Hour))

		_, ok := idx.FindEarliestSlot(member.ID(), 2*time.Hour, horizon(t))

		assert.False(t, ok)
	})

	t.Run("duration_longer_than_horizon_never_fits", func(t *testing.T) {
		member := newMember(t)
		idx := services.BuildAvailabilityIndex([]*crew.CrewMember{member}, nil)

		_, ok := idx.FindEarliestSlot(member.ID(), 9*time.Hour, horizon(t))

		assert.False(t, ok)
	})
}
