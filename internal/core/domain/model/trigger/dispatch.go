package trigger

import (
	"errors"
	"fmt"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
)

// DispatchStatus is the delivery state of an outbox row.
type DispatchStatus int

const (
	DispatchStatusUnknown DispatchStatus = iota

	// DispatchStatusPending marks a row waiting to be picked up by the
	// automation dispatch job.
	DispatchStatusPending

	// DispatchStatusProcessed marks a row whose triggers have been evaluated.
	DispatchStatusProcessed

	// DispatchStatusFailed marks a row that exhausted its delivery attempts.
	DispatchStatusFailed
)

// DispatchStatusFromString parses a persisted dispatch status name.
func DispatchStatusFromString(s string) (DispatchStatus, error) {
	switch s {
	case "Pending":
		return DispatchStatusPending, nil
	case "Processed":
		return DispatchStatusProcessed, nil
	case "Failed":
		return DispatchStatusFailed, nil
	default:
		return DispatchStatusUnknown, fmt.Errorf("%q is not a valid dispatch status", s)
	}
}

// Validate checks whether the status is one of the defined values.
func (s DispatchStatus) Validate() error {
	switch s {
	case DispatchStatusPending, DispatchStatusProcessed, DispatchStatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("dispatch status",
			fmt.Errorf("%d is not a valid dispatch status", int(s)))
	}
}

// String returns the human-readable name of the status.
func (s DispatchStatus) String() string {
	switch s {
	case DispatchStatusPending:
		return "Pending"
	case DispatchStatusProcessed:
		return "Processed"
	case DispatchStatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// maxDispatchAttempts bounds redeliveries of a single outbox row before it is
// parked as Failed.
const maxDispatchAttempts = 5

// Dispatch is a transactional-outbox row recording that a domain event
// occurred and still needs to be run through the automation triggers. Command
// handlers insert rows in the same transaction as the state change; a
// background job drains pending rows after commit, so trigger actions never
// run inside the request transaction and are never lost on a crash between
// commit and dispatch.
type Dispatch struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	eventType  Type
	jobID      kernel.UUID
	occurredAt time.Time
	payload    map[string]any
	status     DispatchStatus
	attempts   int
	createdAt  time.Time
}

// NewDispatch creates a pending outbox row for a domain event.
func NewDispatch(
	id, tenantID, jobID kernel.UUID,
	eventType Type,
	occurredAt time.Time,
	payload map[string]any,
) (*Dispatch, error) {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		jobID.Validate(),
		eventType.Validate(),
	); err != nil {
		return nil, err
	}
	if occurredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("occurredAt")
	}

	return &Dispatch{
		id:         id,
		tenantID:   tenantID,
		eventType:  eventType,
		jobID:      jobID,
		occurredAt: occurredAt.UTC(),
		payload:    payload,
		status:     DispatchStatusPending,
		createdAt:  time.Now().UTC(),
	}, nil
}

// RestoreDispatch reconstructs an outbox row from persistence.
func RestoreDispatch(
	id, tenantID, jobID kernel.UUID,
	eventType Type,
	occurredAt time.Time,
	payload map[string]any,
	status DispatchStatus,
	attempts int,
	createdAt time.Time,
) (*Dispatch, error) {
	d, err := NewDispatch(id, tenantID, jobID, eventType, occurredAt, payload)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	d.status = status
	d.attempts = attempts
	d.createdAt = createdAt
	return d, nil
}

func (d *Dispatch) ID() kernel.UUID        { return d.id }
func (d *Dispatch) TenantID() kernel.UUID  { return d.tenantID }
func (d *Dispatch) EventType() Type        { return d.eventType }
func (d *Dispatch) JobID() kernel.UUID     { return d.jobID }
func (d *Dispatch) OccurredAt() time.Time  { return d.occurredAt }
func (d *Dispatch) Payload() map[string]any { return d.payload }
func (d *Dispatch) Status() DispatchStatus { return d.status }
func (d *Dispatch) Attempts() int          { return d.attempts }
func (d *Dispatch) CreatedAt() time.Time   { return d.createdAt }

// MarkProcessed records a successful trigger evaluation of the row.
func (d *Dispatch) MarkProcessed() {
	d.status = DispatchStatusProcessed
}

// MarkAttemptFailed counts a failed delivery. After the attempt budget is
// spent the row is parked as Failed and no longer redelivered.
func (d *Dispatch) MarkAttemptFailed() {
	d.attempts++
	if d.attempts >= maxDispatchAttempts {
		d.status = DispatchStatusFailed
	}
}
