package crew_test

import (
	"testing"
	"time"

	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMember(t *testing.T, skills ...string) *crew.CrewMember {
	t.Helper()
	m, err := crew.NewCrewMember(kernel.NewUUID(), kernel.NewUUID(), "Alice", skills, 8, 40)
	require.NoError(t, err)
	return m
}

func window(t *testing.T, start time.Time, d time.Duration) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(start, start.Add(d))
	require.NoError(t, err)
	return w
}

func TestNewCrewMember(t *testing.T) {
	t.Run("active_with_normalized_skills", func(t *testing.T) {
		m, err := crew.NewCrewMember(
			kernel.NewUUID(), kernel.NewUUID(),
			"Bob", []string{"glazing", " glazing", "install", ""}, 8, 40,
		)

		require.NoError(t, err)
		assert.True(t, m.IsActive())
		assert.Equal(t, []string{"glazing", "install"}, m.Skills())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		_, err := crew.NewCrewMember(kernel.NewUUID(), kernel.NewUUID(), " ", nil, 8, 40)
		require.ErrorIs(t, err, crew.ErrNameIsRequired)
	})

	t.Run("weekly_limit_below_daily_is_rejected", func(t *testing.T) {
		_, err := crew.NewCrewMember(kernel.NewUUID(), kernel.NewUUID(), "Bob", nil, 8, 4)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var m crew.CrewMember
		require.ErrorIs(t, m.Validate(), crew.ErrCrewMemberIsNotConstructed)
	})
}

func TestCrewMember_HasSkills(t *testing.T) {
	m := newTestMember(t, "glazing", "install")

	assert.True(t, m.HasSkills(nil))
	assert.True(t, m.HasSkills([]string{"glazing"}))
	assert.True(t, m.HasSkills([]string{"glazing", "install"}))
	assert.False(t, m.HasSkills([]string{"delivery"}))
	assert.False(t, m.HasSkills([]string{"glazing", "delivery"}))
}

func TestCrewMember_DeclareAvailability(t *testing.T) {
	base := time.Date(2026, time.April, 6, 8, 0, 0, 0, time.UTC)

	t.Run("non_overlapping_windows_are_accepted", func(t *testing.T) {
		m := newTestMember(t)

		_, err := m.DeclareAvailability(window(t, base, 4*time.Hour), crew.KindAvailable)
		require.NoError(t, err)
		_, err = m.DeclareAvailability(window(t, base.Add(4*time.Hour), 4*time.Hour), crew.KindBlackout)
		require.NoError(t, err)

		assert.Len(t, m.Availability(), 2)
	})

	t.Run("overlapping_window_is_rejected", func(t *testing.T) {
		m := newTestMember(t)
		_, err := m.DeclareAvailability(window(t, base, 4*time.Hour), crew.KindAvailable)
		require.NoError(t, err)

		_, err = m.DeclareAvailability(window(t, base.Add(2*time.Hour), 4*time.Hour), crew.KindAvailable)

		require.ErrorIs(t, err, crew.ErrAvailabilityOverlap)
		assert.Len(t, m.Availability(), 1)
	})

	t.Run("remove_availability", func(t *testing.T) {
		m := newTestMember(t)
		entry, err := m.DeclareAvailability(window(t, base, 4*time.Hour), crew.KindAvailable)
		require.NoError(t, err)

		require.NoError(t, m.RemoveAvailability(entry.ID()))
		assert.Empty(t, m.Availability())

		require.ErrorIs(t, m.RemoveAvailability(entry.ID()), crew.ErrAvailabilityNotFound)
	})
}

func TestCrewMember_Deactivate(t *testing.T) {
	m := newTestMember(t)

	m.Deactivate()
	assert.False(t, m.IsActive())

	m.Activate()
	assert.True(t, m.IsActive())
}
