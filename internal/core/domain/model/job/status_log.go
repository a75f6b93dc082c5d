package job

import (
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
)

// StatusLog is an append-only record of a single job status transition.
// Log rows are never mutated or deleted; exactly one row exists per successful
// transition.
type StatusLog struct {
	id         kernel.UUID
	jobID      kernel.UUID
	previous   Status
	next       Status
	reason     string
	notes      string
	actor      string
	occurredAt time.Time
}

// NewStatusLog records a transition that just happened.
func NewStatusLog(jobID kernel.UUID, previous, next Status, actor, reason, notes string) (*StatusLog, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}

	return &StatusLog{
		id:         kernel.NewUUID(),
		jobID:      jobID,
		previous:   previous,
		next:       next,
		reason:     reason,
		notes:      notes,
		actor:      actor,
		occurredAt: time.Now().UTC(),
	}, nil
}

// RestoreStatusLog reconstructs a log row from persistence.
func RestoreStatusLog(
	id, jobID kernel.UUID,
	previous, next Status,
	actor, reason, notes string,
	occurredAt time.Time,
) (*StatusLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	return &StatusLog{
		id:         id,
		jobID:      jobID,
		previous:   previous,
		next:       next,
		reason:     reason,
		notes:      notes,
		actor:      actor,
		occurredAt: occurredAt,
	}, nil
}

func (l *StatusLog) ID() kernel.UUID       { return l.id }
func (l *StatusLog) JobID() kernel.UUID    { return l.jobID }
func (l *StatusLog) Previous() Status      { return l.previous }
func (l *StatusLog) Next() Status          { return l.next }
func (l *StatusLog) Reason() string        { return l.reason }
func (l *StatusLog) Notes() string         { return l.notes }
func (l *StatusLog) Actor() string         { return l.actor }
func (l *StatusLog) OccurredAt() time.Time { return l.occurredAt }
