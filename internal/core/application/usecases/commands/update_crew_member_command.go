package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrUpdateCrewMemberCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrUpdateCrewMemberCommandIsNotConstructed = errors.New(
	"UpdateCrewMemberCommand must be created via NewUpdateCrewMemberCommand constructor",
)

// UpdateCrewMemberCommand represents a request to change a crew member's
// details or active flag. Setting isActive to false is the soft delete:
// the member keeps their history but drops out of scheduling.
type UpdateCrewMemberCommand struct { //nolint:recvcheck //using for validation
	crewMemberID    kernel.UUID
	tenantID        kernel.UUID
	name            string
	skills          []string
	maxHoursPerDay  int
	maxHoursPerWeek int
	isActive        bool

	guard guard.ConstructorGuard
}

// NewUpdateCrewMemberCommand creates a command to update a crew member.
func NewUpdateCrewMemberCommand(
	crewMemberID, tenantID kernel.UUID,
	name string,
	skills []string,
	maxHoursPerDay, maxHoursPerWeek int,
	isActive bool,
) (UpdateCrewMemberCommand, error) {
	cmd := UpdateCrewMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(crewMemberID.Validate(), tenantID.Validate()); err != nil {
		return UpdateCrewMemberCommand{}, err
	}
	if name == "" {
		return UpdateCrewMemberCommand{}, errs.NewValueIsRequiredError("name")
	}

	cmd.crewMemberID = crewMemberID
	cmd.tenantID = tenantID
	cmd.name = name
	cmd.skills = skills
	cmd.maxHoursPerDay = maxHoursPerDay
	cmd.maxHoursPerWeek = maxHoursPerWeek
	cmd.isActive = isActive
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCrewMemberCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCrewMemberCommandIsNotConstructed)
}

func (c UpdateCrewMemberCommand) CrewMemberID() kernel.UUID { return c.crewMemberID }
func (c UpdateCrewMemberCommand) TenantID() kernel.UUID     { return c.tenantID }
func (c UpdateCrewMemberCommand) Name() string              { return c.name }
func (c UpdateCrewMemberCommand) Skills() []string          { return c.skills }
func (c UpdateCrewMemberCommand) MaxHoursPerDay() int       { return c.maxHoursPerDay }
func (c UpdateCrewMemberCommand) MaxHoursPerWeek() int      { return c.maxHoursPerWeek }
func (c UpdateCrewMemberCommand) IsActive() bool            { return c.isActive }
