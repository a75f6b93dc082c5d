package trigger_test

import (
	"testing"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrigger(t *testing.T, jobID *kernel.UUID, condition trigger.Condition) *trigger.Trigger {
	t.Helper()
	tr, err := trigger.NewTrigger(
		kernel.NewUUID(), kernel.NewUUID(), jobID,
		trigger.TypeStatusChange,
		condition,
		trigger.ActionNotify,
		map[string]any{"channel": "sms"},
	)
	require.NoError(t, err)
	return tr
}

func TestNewTrigger(t *testing.T) {
	t.Run("active_with_zero_count", func(t *testing.T) {
		tr := newTestTrigger(t, nil, nil)
		assert.True(t, tr.IsActive())
		assert.True(t, tr.IsGlobal())
		assert.Zero(t, tr.TriggerCount())
		assert.Nil(t, tr.LastTriggered())
	})

	t.Run("unknown_trigger_type_is_rejected", func(t *testing.T) {
		_, err := trigger.NewTrigger(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			trigger.Type("ON_FULL_MOON"), nil, trigger.ActionNotify, nil,
		)
		require.Error(t, err)
	})

	t.Run("invalid_clause_is_rejected", func(t *testing.T) {
		_, err := trigger.NewTrigger(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			trigger.TypeStatusChange,
			trigger.Condition{{Field: "", Op: trigger.OpEqual, Value: "x"}},
			trigger.ActionNotify, nil,
		)
		require.Error(t, err)
	})
}

func TestTrigger_AppliesTo(t *testing.T) {
	jobID := kernel.NewUUID()

	t.Run("global_trigger_applies_to_any_job", func(t *testing.T) {
		tr := newTestTrigger(t, nil, nil)
		assert.True(t, tr.AppliesTo(trigger.TypeStatusChange, jobID))
		assert.True(t, tr.AppliesTo(trigger.TypeStatusChange, kernel.NewUUID()))
	})

	t.Run("scoped_trigger_applies_only_to_its_job", func(t *testing.T) {
		tr := newTestTrigger(t, &jobID, nil)
		assert.True(t, tr.AppliesTo(trigger.TypeStatusChange, jobID))
		assert.False(t, tr.AppliesTo(trigger.TypeStatusChange, kernel.NewUUID()))
	})

	t.Run("different_event_type_does_not_apply", func(t *testing.T) {
		tr := newTestTrigger(t, nil, nil)
		assert.False(t, tr.AppliesTo(trigger.TypeScheduleCreated, jobID))
	})

	t.Run("inactive_trigger_applies_to_nothing", func(t *testing.T) {
		tr := newTestTrigger(t, nil, nil)
		require.NoError(t, tr.Update(nil, trigger.ActionNotify, nil, false))
		assert.False(t, tr.AppliesTo(trigger.TypeStatusChange, jobID))
	})
}

func TestCondition_Matches(t *testing.T) {
	context := map[string]any{
		"newStatus": "Completed",
		"priority":  float64(3),
	}

	t.Run("empty_condition_matches_everything", func(t *testing.T) {
		assert.True(t, trigger.Condition{}.Matches(context))
	})

	t.Run("eq_clause", func(t *testing.T) {
		c := trigger.Condition{{Field: "newStatus", Op: trigger.OpEqual, Value: "Completed"}}
		assert.True(t, c.Matches(context))

		c = trigger.Condition{{Field: "newStatus", Op: trigger.OpEqual, Value: "Cancelled"}}
		assert.False(t, c.Matches(context))
	})

	t.Run("neq_clause", func(t *testing.T) {
		c := trigger.Condition{{Field: "newStatus", Op: trigger.OpNotEqual, Value: "Cancelled"}}
		assert.True(t, c.Matches(context))
	})

	t.Run("in_clause", func(t *testing.T) {
		c := trigger.Condition{{
			Field: "newStatus", Op: trigger.OpIn,
			Value: []any{"Completed", "Cancelled"},
		}}
		assert.True(t, c.Matches(context))
	})

	t.Run("numeric_comparison_survives_json_coercion", func(t *testing.T) {
		gte := trigger.Condition{{Field: "priority", Op: trigger.OpGreaterOrEqual, Value: 2}}
		assert.True(t, gte.Matches(context))

		lte := trigger.Condition{{Field: "priority", Op: trigger.OpLessOrEqual, Value: 2}}
		assert.False(t, lte.Matches(context))
	})

	t.Run("missing_field_never_matches", func(t *testing.T) {
		c := trigger.Condition{{Field: "absent", Op: trigger.OpEqual, Value: "x"}}
		assert.False(t, c.Matches(context))
	})

	t.Run("all_clauses_must_match", func(t *testing.T) {
		c := trigger.Condition{
			{Field: "newStatus", Op: trigger.OpEqual, Value: "Completed"},
			{Field: "priority", Op: trigger.OpGreaterOrEqual, Value: 5},
		}
		assert.False(t, c.Matches(context))
	})
}

func TestTrigger_MarkFired(t *testing.T) {
	tr := newTestTrigger(t, nil, nil)
	firedAt := time.Date(2026, time.April, 6, 12, 0, 0, 0, time.UTC)

	tr.MarkFired(firedAt)
	tr.MarkFired(firedAt.Add(time.Hour))

	assert.Equal(t, int64(2), tr.TriggerCount())
	require.NotNil(t, tr.LastTriggered())
	assert.Equal(t, firedAt.Add(time.Hour), *tr.LastTriggered())
}
