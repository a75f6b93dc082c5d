package services_test

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreJob(t *testing.T, priority int, estimated time.Duration, skills []string, createdAt time.Time) *job.Job {
	t.Helper()
	number, err := job.NewNumber(2026, 1)
	require.NoError(t, err)

	j, err := job.RestoreJob(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		number, "install water heater", job.StatusPlanned,
		priority, estimated, nil,
		skills, nil, "dispatcher", createdAt, nil,
	)
	require.NoError(t, err)
	return j
}

func restoreMemberWithSkills(t *testing.T, skills ...string) *crew.CrewMember {
	t.Helper()
	m, err := crew.NewCrewMember(kernel.NewUUID(), kernel.NewUUID(), "Alex Reyes", skills, 8, 40)
	require.NoError(t, err)
	return m
}

func TestScheduleOptimizer_Plan(t *testing.T) {
	optimizer := services.NewScheduleOptimizer()
	horizon := window(t, 0, 8*time.Hour)

	t.Run("job_goes_to_qualified_crew_only", func(t *testing.T) {
		plumbing := restoreJob(t, 1, 2*time.Hour, []string{"plumbing"}, baseTime)
		unqualified := restoreMemberWithSkills(t, "electrical")
		qualified := restoreMemberWithSkills(t, "plumbing", "electrical")
		members := []*crew.CrewMember{unqualified, qualified}

		plan, err := optimizer.Plan(context.Background(), []*job.Job{plumbing},
			members, services.BuildAvailabilityIndex(members, nil), horizon)

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 1)
		assert.True(t, plan.Assignments[0].CrewMemberID.IsEqual(qualified.ID()))
		assert.Empty(t, plan.Unassigned)
	})

	t.Run("higher_priority_job_is_placed_first", func(t *testing.T) {
		low := restoreJob(t, 1, 4*time.Hour, nil, baseTime)
		high := restoreJob(t, 5, 4*time.Hour, nil, baseTime)
		member := restoreMemberWithSkills(t)
		members := []*crew.CrewMember{member}

		plan, err := optimizer.Plan(context.Background(), []*job.Job{low, high},
			members, services.BuildAvailabilityIndex(members, nil), horizon)

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 2)
		assert.True(t, plan.Assignments[0].JobID.IsEqual(high.ID()))
		assert.True(t, plan.Assignments[0].Window.IsEqual(window(t, 0, 4*time.Hour)))
		assert.True(t, plan.Assignments[1].JobID.IsEqual(low.ID()))
		assert.True(t, plan.Assignments[1].Window.IsEqual(window(t, 4*time.Hour, 8*time.Hour)))
	})

	t.Run("priority_tie_is_broken_by_creation_time", func(t *testing.T) {
		older := restoreJob(t, 3, 2*time.Hour, nil, baseTime.Add(-time.Hour))
		newer := restoreJob(t, 3, 2*time.Hour, nil, baseTime)
		member := restoreMemberWithSkills(t)
		members := []*crew.CrewMember{member}

		plan, err := optimizer.Plan(context.Background(), []*job.Job{newer, older},
			members, services.BuildAvailabilityIndex(members, nil), horizon)

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 2)
		assert.True(t, plan.Assignments[0].JobID.IsEqual(older.ID()))
	})

	t.Run("assignments_accumulate_in_the_index", func(t *testing.T) {
		first := restoreJob(t, 2, 3*time.Hour, nil, baseTime)
		second := restoreJob(t, 1, 3*time.Hour, nil, baseTime)
		member := restoreMemberWithSkills(t)
		members := []*crew.CrewMember{member}

		plan, err := optimizer.Plan(context.Background(), []*job.Job{first, second},
			members, services.BuildAvailabilityIndex(members, nil), horizon)

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 2)
		assert.False(t, plan.Assignments[0].Window.Overlaps(plan.Assignments[1].Window))
	})

	t.Run("no_qualified_crew_reports_unassigned", func(t *testing.T) {
		gasWork := restoreJob(t, 1, 2*time.Hour, []string{"gas-fitting"}, baseTime)
		member := restoreMemberWithSkills(t, "electrical")
		members := []*crew.CrewMember{member}

		plan, err := optimizer.Plan(context.Background(), []*job.Job{gasWork},
			members, services.BuildAvailabilityIndex(members, nil), horizon)

		require.NoError(t, err)
		assert.Empty(t, plan.Assignments)
		require.Len(t, plan.Unassigned, 1)
		assert.True(t, plan.Unassigned[0].JobID.IsEqual(gasWork.ID()))
		assert.NotEmpty(t, plan.Unassigned[0].Reason)
	})

	t.Run("deactivated_crew_is_never_considered", func(t *testing.T) {
		work := restoreJob(t, 1, 2*time.Hour, nil, baseTime)
		member := restoreMemberWithSkills(t)
		member.Deactivate()
		members := []*crew.CrewMember{member}

		plan, err := optimizer.Plan(context.Background(), []*job.Job{work},
			members, services.BuildAvailabilityIndex(members, nil), horizon)

		require.NoError(t, err)
		assert.Empty(t, plan.Assignments)
		require.Len(t, plan.Unassigned, 1)
	})

	t.Run("full_horizon_reports_unassigned", func(t *testing.T) {
		work := restoreJob(t, 1, 2*time.Hour, nil, baseTime)
		member := restoreMemberWithSkills(t)
		members := []*crew.CrewMember{member}
		index := services.BuildAvailabilityIndex(members, nil)
		index.Reserve(member.ID(), window(t, 0, 8*time.Hour))

		plan, err := optimizer.Plan(context.Background(), []*job.Job{work}, members, index, horizon)

		require.NoError(t, err)
		assert.Empty(t, plan.Assignments)
		require.Len(t, plan.Unassigned, 1)
	})

	t.Run("plan_is_deterministic", func(t *testing.T) {
		jobs := []*job.Job{
			restoreJob(t, 2, 2*time.Hour, nil, baseTime),
			restoreJob(t, 2, 2*time.Hour, nil, baseTime),
			restoreJob(t, 4, time.Hour, nil, baseTime),
		}
		members := []*crew.CrewMember{restoreMemberWithSkills(t), restoreMemberWithSkills(t)}

		first, err := optimizer.Plan(context.Background(), jobs, members,
			services.BuildAvailabilityIndex(members, nil), horizon)
		require.NoError(t, err)

		second, err := optimizer.Plan(context.Background(), jobs, members,
			services.BuildAvailabilityIndex(members, nil), horizon)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("cancelled_context_aborts_the_batch", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		work := restoreJob(t, 1, 2*time.Hour, nil, baseTime)
		members := []*crew.CrewMember{restoreMemberWithSkills(t)}

		_, err := optimizer.Plan(ctx, []*job.Job{work}, members,
			services.BuildAvailabilityIndex(members, nil), horizon)

		require.ErrorIs(t, err, context.Canceled)
	})
}
