package kernel

import (
	"fmt"
	"time"

	"fieldservice/internal/pkg/errs"
)

// ErrTimeWindowIsNotConstructed indicates that a TimeWindow was not created through
// NewTimeWindow. The zero value of TimeWindow is invalid.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"TimeWindow must be created via NewTimeWindow",
)

// TimeWindow is a value object representing a half-open time interval [start, end).
// It is the shared currency for schedule events, availability windows, time entries
// and planning horizons.
//
// Invariants:
//   - start and end are non-zero
//   - start is strictly before end
//
// Two windows overlap iff a.start < b.end && b.start < a.end. Under this rule
// back-to-back windows (one ending exactly when the other starts) do not overlap,
// and a zero-length interval can never overlap anything.
//
// Example:
//
//	window, err := kernel.NewTimeWindow(shiftStart, shiftStart.Add(2*time.Hour))
//	if err != nil {
//	    return err
//	}
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow creates a TimeWindow after validating the interval bounds.
// Both bounds must be non-zero and start must be strictly before end.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("end")
	}
	if !start.Before(end) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window",
			fmt.Errorf("start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	return TimeWindow{start: start, end: end}, nil
}

// Start returns the inclusive lower bound of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the exclusive upper bound of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Duration returns the length of the window.
func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports whether two windows intersect under the half-open rule.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// Contains reports whether other fits entirely inside this window.
func (w TimeWindow) Contains(other TimeWindow) bool {
	return !other.start.Before(w.start) && !other.end.After(w.end)
}

// IsEqual compares two windows by their bounds.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

// String renders the window for logs and error messages.
func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// Validate checks that the window was constructed via NewTimeWindow.
func (w TimeWindow) Validate() error {
	if w.start.IsZero() || w.end.IsZero() {
		return ErrTimeWindowIsNotConstructed
	}
	return nil
}
