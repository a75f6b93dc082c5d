package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/trigger"
)

// DomainEvent is the fact the automation engine evaluates triggers against:
// something happened to a job at a point in time, with a context map carrying
// the event payload (e.g. previousStatus/newStatus for a status change).
type DomainEvent struct {
	Type       trigger.Type
	TenantID   kernel.UUID
	JobID      kernel.UUID
	OccurredAt time.Time
	Context    map[string]any
}

// DedupeKey identifies one trigger firing for one event occurrence. Replaying
// the same event (e.g. after an at-least-once outbox redelivery) produces the
// same key and is skipped.
func (e DomainEvent) DedupeKey(triggerID kernel.UUID) string {
	return fmt.Sprintf("%s:%s:%d", triggerID, e.JobID, e.OccurredAt.UnixNano())
}

// ActionDispatcher executes the side effect configured on a trigger.
// Implementations live in the adapter layer (notification gateway, task
// creation, invoice generation).
type ActionDispatcher interface {
	Dispatch(ctx context.Context, actionType trigger.ActionType, config map[string]any, event DomainEvent) error
}

// AutomationEngine matches domain events against automation triggers and
// dispatches the configured actions.
//
// Guarantees:
//   - a failing action never prevents other triggers from firing for the
//     same event
//   - the same trigger never fires twice for the same event occurrence
//     (in-memory replay guard keyed by trigger, job and occurrence time)
//   - fire bookkeeping (count, last-fired time) is only advanced on
//     successful dispatch; the caller persists the returned triggers
type AutomationEngine struct {
	dispatcher ActionDispatcher
	logger     *slog.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

// NewAutomationEngine creates an engine dispatching through the given dispatcher.
func NewAutomationEngine(dispatcher ActionDispatcher, logger *slog.Logger) *AutomationEngine {
	return &AutomationEngine{
		dispatcher: dispatcher,
		logger:     logger.With("component", "automation_engine"),
		seen:       make(map[string]struct{}),
	}
}

// Evaluate runs every applicable trigger against the event and returns the
// triggers that fired successfully, so the caller can persist their updated
// fire counters. Triggers are evaluated independently: a dispatch error is
// logged and skipped, it does not abort the batch.
func (e *AutomationEngine) Evaluate(
	ctx context.Context,
	event DomainEvent,
	triggers []*trigger.Trigger,
) []*trigger.Trigger {
	var fired []*trigger.Trigger

	for _, tr := range triggers {
		if tr == nil {
			continue
		}
		if !tr.AppliesTo(event.Type, event.JobID) {
			continue
		}
		if !tr.Matches(event.Context) {
			continue
		}
		if !e.markSeen(event.DedupeKey(tr.ID())) {
			e.logger.DebugContext(ctx, "skipping already fired trigger",
				"trigger_id", tr.ID().String(),
				"job_id", event.JobID.String(),
				"event_type", string(event.Type))
			continue
		}

		if err := e.dispatch(ctx, tr, event); err != nil {
			// Failed dispatches are forgotten so an outbox redelivery retries them.
			e.forget(event.DedupeKey(tr.ID()))
			e.logger.ErrorContext(ctx, "trigger action failed",
				"trigger_id", tr.ID().String(),
				"job_id", event.JobID.String(),
				"event_type", string(event.Type),
				"action", string(tr.ActionType()),
				"error", err)
			continue
		}

		tr.MarkFired(event.OccurredAt)
		fired = append(fired, tr)
	}

	return fired
}

// dispatch runs a single action, converting a panicking dispatcher into an
// error so one misbehaving action cannot take the evaluation loop down.
func (e *AutomationEngine) dispatch(ctx context.Context, tr *trigger.Trigger, event DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action dispatch panicked: %v", r)
		}
	}()
	return e.dispatcher.Dispatch(ctx, tr.ActionType(), tr.ActionConfig(), event)
}

func (e *AutomationEngine) forget(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.seen, key)
}

// markSeen records the key and reports whether it was new.
func (e *AutomationEngine) markSeen(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.seen[key]; ok {
		return false
	}
	e.seen[key] = struct{}{}
	return true
}
