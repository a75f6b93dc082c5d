package crew

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

var (
	// ErrCrewMemberIsNotConstructed is returned when using an improperly initialized CrewMember.
	ErrCrewMemberIsNotConstructed = errors.New("CrewMember must be created via NewCrewMember or RestoreCrewMember")

	// ErrNameIsRequired is returned when attempting to create a crew member without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrAvailabilityOverlap is returned when a declared window intersects an existing one.
	ErrAvailabilityOverlap = errors.New("availability window overlaps an existing window")

	// ErrAvailabilityNotFound is returned when an availability id does not belong to the member.
	ErrAvailabilityNotFound = errors.New("availability window not found")
)

// CrewMember is a schedulable worker. It is an aggregate root over the member's
// declared availability windows.
//
// Business rules:
//   - name is required, skills behave as a normalized set
//   - working-hour limits are positive and the weekly limit is at least the daily one
//   - availability windows never overlap each other
//   - deactivation is a soft delete: the member is kept for history but excluded
//     from scheduling
type CrewMember struct {
	id              kernel.UUID
	tenantID        kernel.UUID
	name            string
	skills          []string
	maxHoursPerDay  int
	maxHoursPerWeek int
	isActive        bool
	availability    []*Availability
	guard           guard.ConstructorGuard
}

// NewCrewMember creates an active crew member with no declared availability.
func NewCrewMember(
	id, tenantID kernel.UUID,
	name string,
	skills []string,
	maxHoursPerDay, maxHoursPerWeek int,
) (*CrewMember, error) {
	m := &CrewMember{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setIDs(id, tenantID),
		m.setName(name),
		m.setHourLimits(maxHoursPerDay, maxHoursPerWeek),
	); err != nil {
		return nil, err
	}

	m.skills = normalizeSet(skills)
	return m, nil
}

// RestoreCrewMember reconstructs a crew member from persistence, including the
// declared availability windows and active flag.
func RestoreCrewMember(
	id, tenantID kernel.UUID,
	name string,
	skills []string,
	maxHoursPerDay, maxHoursPerWeek int,
	isActive bool,
	availability []*Availability,
) (*CrewMember, error) {
	m := &CrewMember{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setIDs(id, tenantID),
		m.setName(name),
		m.setHourLimits(maxHoursPerDay, maxHoursPerWeek),
	); err != nil {
		return nil, err
	}

	m.skills = normalizeSet(skills)
	m.isActive = isActive
	m.availability = availability
	return m, nil
}

// Validate ensures the crew member was constructed through a factory function.
func (m *CrewMember) Validate() error {
	if m == nil {
		return ErrCrewMemberIsNotConstructed
	}
	return m.guard.Validate(ErrCrewMemberIsNotConstructed)
}

func (m *CrewMember) ID() kernel.UUID               { return m.id }
func (m *CrewMember) TenantID() kernel.UUID         { return m.tenantID }
func (m *CrewMember) Name() string                  { return m.name }
func (m *CrewMember) Skills() []string              { return m.skills }
func (m *CrewMember) MaxHoursPerDay() int           { return m.maxHoursPerDay }
func (m *CrewMember) MaxHoursPerWeek() int          { return m.maxHoursPerWeek }
func (m *CrewMember) IsActive() bool                { return m.isActive }
func (m *CrewMember) Availability() []*Availability { return m.availability }

// HasSkills reports whether the member's skill set is a superset of required.
func (m *CrewMember) HasSkills(required []string) bool {
	if len(required) == 0 {
		return true
	}
	owned := make(map[string]struct{}, len(m.skills))
	for _, s := range m.skills {
		owned[s] = struct{}{}
	}
	for _, r := range required {
		if _, ok := owned[strings.TrimSpace(r)]; !ok {
			return false
		}
	}
	return true
}

// UpdateDetails replaces the mutable descriptive fields of the member.
func (m *CrewMember) UpdateDetails(name string, skills []string, maxHoursPerDay, maxHoursPerWeek int) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := errors.Join(
		m.setName(name),
		m.setHourLimits(maxHoursPerDay, maxHoursPerWeek),
	); err != nil {
		return err
	}
	m.skills = normalizeSet(skills)
	return nil
}

// Deactivate soft-deletes the member, excluding it from future scheduling.
func (m *CrewMember) Deactivate() {
	m.isActive = false
}

// Activate re-enables a previously deactivated member.
func (m *CrewMember) Activate() {
	m.isActive = true
}

// DeclareAvailability adds a new availability or blackout window.
// The window must not overlap any existing window of this member, regardless of kind.
func (m *CrewMember) DeclareAvailability(window kernel.TimeWindow, kind AvailabilityKind) (*Availability, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	for _, existing := range m.availability {
		if existing.Window().Overlaps(window) {
			return nil, fmt.Errorf("%w: %s intersects %s",
				ErrAvailabilityOverlap, window, existing.Window())
		}
	}

	entry, err := NewAvailability(kernel.NewUUID(), window, kind)
	if err != nil {
		return nil, err
	}
	m.availability = append(m.availability, entry)
	return entry, nil
}

// RemoveAvailability withdraws a previously declared window.
func (m *CrewMember) RemoveAvailability(id kernel.UUID) error {
	for i, entry := range m.availability {
		if entry.ID().IsEqual(id) {
			m.availability = append(m.availability[:i], m.availability[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrAvailabilityNotFound, id)
}

func (m *CrewMember) setIDs(id, tenantID kernel.UUID) error {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return err
	}
	m.id = id
	m.tenantID = tenantID
	return nil
}

func (m *CrewMember) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *CrewMember) setHourLimits(perDay, perWeek int) error {
	if perDay <= 0 || perDay > 24 {
		return errs.NewValueIsOutOfRangeError("maxHoursPerDay", perDay, 1, 24)
	}
	if perWeek < perDay || perWeek > 168 {
		return errs.NewValueIsOutOfRangeError("maxHoursPerWeek", perWeek, perDay, 168)
	}
	m.maxHoursPerDay = perDay
	m.maxHoursPerWeek = perWeek
	return nil
}

func normalizeSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
