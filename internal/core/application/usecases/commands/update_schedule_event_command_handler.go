package commands

import (
	"context"
	"fmt"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/schedule"
	"fieldservice/internal/core/domain/model/trigger"
	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/locker"
)

// UpdateScheduleEventCommandHandler reschedules an existing event. The lock
// covers the union of the old and new crew sets, conflict detection excludes
// the event itself, and the result is announced as SCHEDULE_UPDATED.
type UpdateScheduleEventCommandHandler struct {
	uowFactory ScheduleUoWFactory
	crewLocks  *locker.KeyedMutex
	detector   services.ConflictDetector
}

// NewUpdateScheduleEventCommandHandler creates a handler for event rescheduling.
func NewUpdateScheduleEventCommandHandler(
	uowFactory ScheduleUoWFactory,
	crewLocks *locker.KeyedMutex,
) UpdateScheduleEventCommandHandler {
	return UpdateScheduleEventCommandHandler{
		uowFactory: uowFactory,
		crewLocks:  crewLocks,
		detector:   services.NewConflictDetector(),
	}
}

// Handle processes the reschedule command.
func (h UpdateScheduleEventCommandHandler) Handle(ctx context.Context, cmd UpdateScheduleEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// The old crew set is not known before the event is loaded, so lock the
	// requested set first and extend under transaction where needed. Conflict
	// detection happens transactionally either way; the lock only reduces
	// needless serialization failures.
	unlock := h.crewLocks.Lock(crewLockKeys(cmd.CrewMemberIDs())...)
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduleEventRepository()

	event, err := scheduleRepo.Get(ctx, cmd.TenantID(), cmd.EventID())
	if err != nil {
		return err
	}

	members, err := uow.CrewRepository().GetMany(ctx, cmd.TenantID(), cmd.CrewMemberIDs())
	if err != nil {
		return err
	}
	byID := make(map[kernel.UUID]bool, len(members))
	for _, m := range members {
		byID[m.ID()] = m.IsActive()
	}
	for _, id := range cmd.CrewMemberIDs() {
		active, ok := byID[id]
		if !ok {
			return errs.NewObjectNotFoundError("crewMemberID", id)
		}
		if !active {
			return fmt.Errorf("%w: %s", ErrCrewMemberInactive, id)
		}
	}

	existing, err := scheduleRepo.GetAllActiveForCrew(ctx, cmd.TenantID(), cmd.CrewMemberIDs())
	if err != nil {
		return err
	}

	overridden := false
	excludeID := event.ID()

	conflicts := h.detector.FindConflicts(existing, cmd.CrewMemberIDs(), cmd.Window(), &excludeID)
	if len(conflicts) > 0 {
		if !cmd.AllowOverride() {
			ids := make([]kernel.UUID, len(conflicts))
			for i, c := range conflicts {
				ids[i] = c.ID()
			}
			return NewSchedulingConflictError(ids)
		}
		overridden = true
	}

	index := services.BuildAvailabilityIndex(members, withoutEvent(existing, event.ID()))
	for _, id := range cmd.CrewMemberIDs() {
		if index.IsAvailable(id, cmd.Window()) {
			continue
		}
		if !cmd.AllowOverride() {
			return &CrewNotAvailableError{CrewMemberID: id}
		}
		overridden = true
	}

	if err = event.Reschedule(cmd.Window(), cmd.CrewMemberIDs(), cmd.Notes()); err != nil {
		return err
	}
	if err = scheduleRepo.Update(ctx, event); err != nil {
		return err
	}

	crewIDs := make([]string, len(event.CrewIDs()))
	for i, id := range event.CrewIDs() {
		crewIDs[i] = id.String()
	}
	dispatch, err := trigger.NewDispatch(
		kernel.NewUUID(), cmd.TenantID(), event.JobID(),
		trigger.TypeScheduleUpdated, time.Now().UTC(),
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
	if err = uow.DispatchOutbox().Add(ctx, dispatch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// withoutEvent drops the event being updated from the commitment set so it
// does not block its own new window.
func withoutEvent(events []*schedule.Event, id kernel.UUID) []*schedule.Event {
	out := make([]*schedule.Event, 0, len(events))
	for _, e := range events {
		if !e.ID().IsEqual(id) {
			out = append(out, e)
		}
	}
	return out
}
