package crew

import (
	"fmt"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
)

// AvailabilityKind distinguishes declared availability from blackout windows.
type AvailabilityKind int

const (
	AvailabilityKindUnknown AvailabilityKind = iota

	// KindAvailable declares a window inside which the crew member may be scheduled.
	KindAvailable

	// KindBlackout declares a window inside which the crew member must not be scheduled.
	KindBlackout
)

// AvailabilityKindFromString parses a persisted availability kind name.
func AvailabilityKindFromString(s string) (AvailabilityKind, error) {
	switch s {
	case "Available":
		return KindAvailable, nil
	case "Blackout":
		return KindBlackout, nil
	default:
		return AvailabilityKindUnknown, fmt.Errorf("%q is not a valid availability kind", s)
	}
}

// Validate checks whether the kind is one of the defined values.
func (k AvailabilityKind) Validate() error {
	if k != KindAvailable && k != KindBlackout {
		return errs.NewValueIsInvalidErrorWithCause("availability kind",
			fmt.Errorf("%d is not a valid availability kind", int(k)))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k AvailabilityKind) String() string {
	switch k {
	case KindAvailable:
		return "Available"
	case KindBlackout:
		return "Blackout"
	default:
		return "Unknown"
	}
}

// Availability is a time-bounded window a crew member has declared, either as
// available working time or as a blackout. Windows are non-overlapping per crew
// member; the CrewMember aggregate enforces that on declaration.
type Availability struct {
	id     kernel.UUID
	window kernel.TimeWindow
	kind   AvailabilityKind
}

// NewAvailability creates an availability window.
func NewAvailability(id kernel.UUID, window kernel.TimeWindow, kind AvailabilityKind) (*Availability, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	return &Availability{id: id, window: window, kind: kind}, nil
}

func (a *Availability) ID() kernel.UUID           { return a.id }
func (a *Availability) Window() kernel.TimeWindow { return a.window }
func (a *Availability) Kind() AvailabilityKind    { return a.kind }

// IsAvailable reports whether the window declares schedulable time.
func (a *Availability) IsAvailable() bool {
	return a.kind == KindAvailable
}
