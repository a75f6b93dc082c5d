package commands

import (
	"context"
	"fmt"
	"time"

	"fieldservice/internal/core/domain/model/crew"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/locker"
)

// CreateScheduleEventCommandHandler orchestrates schedule event creation, the
// busiest write path of the system.
//
// Per request it:
//   - serializes on the affected crew members via the keyed mutex, so two
//     dispatchers cannot book the same crew concurrently
//   - verifies the job exists and is not terminal
//   - verifies every prerequisite job is Completed
//   - verifies every crew member exists and is active
//   - runs conflict detection and the availability check, rejecting with
//     SchedulingConflictError / CrewNotAvailableError unless the command
//     carries allowOverride
//   - persists the event, moves a Planned job to Scheduled with a status-log
//     row, and enqueues a SCHEDULE_CREATED automation event
//
// Everything after the lock happens in one transaction.
type CreateScheduleEventCommandHandler struct {
	uowFactory ScheduleUoWFactory
	crewLocks  *locker.KeyedMutex
	detector   services.ConflictDetector
}

// NewCreateScheduleEventCommandHandler creates a handler for schedule event creation.
func NewCreateScheduleEventCommandHandler(
	uowFactory ScheduleUoWFactory,
	crewLocks *locker.KeyedMutex,
) CreateScheduleEventCommandHandler {
	return CreateScheduleEventCommandHandler{
		uowFactory: uowFactory,
		crewLocks:  crewLocks,
		detector:   services.NewConflictDetector(),
	}
}

// Handle processes the schedule event creation command.
func (h CreateScheduleEventCommandHandler) Handle(ctx context.Context, cmd CreateScheduleEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.crewLocks.Lock(crewLockKeys(cmd.CrewMemberIDs())...)
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	aggregate, err := jobRepo.Get(ctx, cmd.TenantID(), cmd.JobID())
	if err != nil {
		return err
	}
	if aggregate.Status().IsTerminal() {
		return fmt.Errorf("%w: %s", job.ErrJobIsTerminal, aggregate.Status())
	}

	if err = h.checkPrerequisites(ctx, uow, aggregate); err != nil {
		return err
	}

	members, err := h.loadCrew(ctx, uow, cmd.TenantID(), cmd.CrewMemberIDs())
	if err != nil {
		return err
	}

	overridden, err := h.checkBookability(ctx, uow, cmd, members, nil)
	if err != nil {
		return err
	}

	event, err := schedule.NewEvent(
		cmd.EventID(), cmd.TenantID(), cmd.JobID(),
		cmd.Window(), cmd.CrewMemberIDs(), cmd.Notes(),
	)
	if err != nil {
		return err
	}

	scheduleRepo := uow.ScheduleEventRepository()
	if err = scheduleRepo.Add(ctx, event); err != nil {
		return err
	}

	logRow, err := aggregate.MarkScheduled(cmd.Window(), cmd.Actor())
	if err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if logRow != nil {
		if err = jobRepo.AddStatusLog(ctx, logRow); err != nil {
			return err
		}
	}

	if err = h.enqueueScheduleEvent(ctx, uow, trigger.TypeScheduleCreated, cmd, event, overridden); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkPrerequisites rejects scheduling while any prerequisite job is incomplete.
func (h CreateScheduleEventCommandHandler) checkPrerequisites(
	ctx context.Context,
	uow ScheduleUoW,
	aggregate *job.Job,
) error {
	edges, err := uow.DependencyRepository().GetAllForTenant(ctx, aggregate.TenantID())
	if err != nil {
		return err
	}

	graph := services.NewDependencyGraph(edges)
	prereqIDs := graph.Prerequisites(aggregate.ID())
	if len(prereqIDs) == 0 {
		return nil
	}

	prereqs, err := uow.JobRepository().GetMany(ctx, aggregate.TenantID(), prereqIDs)
	if err != nil {
		return err
	}

	statuses := make(map[kernel.UUID]job.Status, len(prereqs))
	for _, p := range prereqs {
		statuses[p.ID()] = p.Status()
	}

	blocking := graph.BlockingPrerequisites(aggregate.ID(), func(id kernel.UUID) (job.Status, bool) {
		s, ok := statuses[id]
		return s, ok
	})
	if len(blocking) > 0 {
		return NewUnmetDependencyError(blocking)
	}
	return nil
}

// loadCrew resolves the crew member ids, rejecting unknown and deactivated members.
func (h CreateScheduleEventCommandHandler) loadCrew(
	ctx context.Context,
	uow CrewRepoFactory,
	tenantID kernel.UUID,
	crewIDs []kernel.UUID,
) ([]*crew.CrewMember, error) {
	members, err := uow.CrewRepository().GetMany(ctx, tenantID, crewIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*crew.CrewMember, len(members))
	for _, m := range members {
		byID[m.ID()] = m
	}
	for _, id := range crewIDs {
		m, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("crewMemberID", id)
		}
		if !m.IsActive() {
			return nil, fmt.Errorf("%w: %s", ErrCrewMemberInactive, id)
		}
	}
	return members, nil
}

// checkBookability runs conflict detection and the availability check. It
// returns whether an override was applied; without allowOverride a violation
// is returned as an error.
func (h CreateScheduleEventCommandHandler) checkBookability(
	ctx context.Context,
	uow ScheduleUoW,
	cmd CreateScheduleEventCommand,
	members []*crew.CrewMember,
	excludeEventID *kernel.UUID,
) (bool, error) {
	events, err := uow.ScheduleEventRepository().GetAllActiveForCrew(ctx, cmd.TenantID(), cmd.CrewMemberIDs())
	if err != nil {
		return false, err
	}

	overridden := false

	conflicts := h.detector.FindConflicts(events, cmd.CrewMemberIDs(), cmd.Window(), excludeEventID)
	if len(conflicts) > 0 {
		if !cmd.AllowOverride() {
			ids := make([]kernel.UUID, len(conflicts))
			for i, c := range conflicts {
				ids[i] = c.ID()
			}
			return false, NewSchedulingConflictError(ids)
		}
		overridden = true
	}

	index := services.BuildAvailabilityIndex(members, events)
	for _, id := range cmd.CrewMemberIDs() {
		if index.IsAvailable(id, cmd.Window()) {
			continue
		}
		if !cmd.AllowOverride() {
			return false, &CrewNotAvailableError{CrewMemberID: id}
		}
		overridden = true
	}

	return overridden, nil
}

// enqueueScheduleEvent writes the automation outbox row for a created or
// updated schedule event. Applied overrides are recorded in the payload so the
// decision is auditable.
func (h CreateScheduleEventCommandHandler) enqueueScheduleEvent(
	ctx context.Context,
	uow ScheduleUoW,
	eventType trigger.Type,
	cmd CreateScheduleEventCommand,
	event *schedule.Event,
	overridden bool,
) error {
	crewIDs := make([]string, len(event.CrewIDs()))
	for i, id := range event.CrewIDs() {
		crewIDs[i] = id.String()
	}

	dispatch, err := trigger.NewDispatch(
		kernel.NewUUID(), cmd.TenantID(), cmd.JobID(),
		eventType, time.Now().UTC(),
		map[string]any{
			"eventId":         event.ID().String(),
			"start":           event.Window().Start().UTC(),
			"end":             event.Window().End().UTC(),
			"crewMemberIds":   crewIDs,
			"overrideApplied": overridden,
			"actor":           cmd.Actor(),
		},
	)
	if err != nil {
		return err
	}
	return uow.DispatchOutbox().Add(ctx, dispatch)
}

// crewLockKeys maps crew ids onto lock keys. The keyed mutex sorts them, which
// combined with the sorted crew set in the event aggregate gives a global lock
// order.
func crewLockKeys(crewIDs []kernel.UUID) []string {
	keys := make([]string, len(crewIDs))
	for i, id := range crewIDs {
		keys[i] = id.String()
	}
	return keys
}
