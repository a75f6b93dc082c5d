package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrCreateCrewMemberCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrCreateCrewMemberCommandIsNotConstructed = errors.New(
	"CreateCrewMemberCommand must be created via NewCreateCrewMemberCommand constructor",
)

// CreateCrewMemberCommand represents a request to register a new crew member.
type CreateCrewMemberCommand struct { //nolint:recvcheck //using for validation
	crewMemberID    kernel.UUID
	tenantID        kernel.UUID
	name            string
	skills          []string
	maxHoursPerDay  int
	maxHoursPerWeek int

	guard guard.ConstructorGuard
}

// NewCreateCrewMemberCommand creates a command to register a crew member.
func NewCreateCrewMemberCommand(
	crewMemberID, tenantID kernel.UUID,
	name string,
	skills []string,
	maxHoursPerDay, maxHoursPerWeek int,
) (CreateCrewMemberCommand, error) {
	cmd := CreateCrewMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(crewMemberID.Validate(), tenantID.Validate()); err != nil {
		return CreateCrewMemberCommand{}, err
	}
	if name == "" {
		return CreateCrewMemberCommand{}, errs.NewValueIsRequiredError("name")
	}

	cmd.crewMemberID = crewMemberID
	cmd.tenantID = tenantID
	cmd.name = name
	cmd.skills = skills
	cmd.maxHoursPerDay = maxHoursPerDay
	cmd.maxHoursPerWeek = maxHoursPerWeek
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCrewMemberCommand) Validate() error {
	return c.guard.Validate(ErrCreateCrewMemberCommandIsNotConstructed)
}

func (c CreateCrewMemberCommand) CrewMemberID() kernel.UUID { return c.crewMemberID }
func (c CreateCrewMemberCommand) TenantID() kernel.UUID     { return c.tenantID }
func (c CreateCrewMemberCommand) Name() string              { return c.name }
func (c CreateCrewMemberCommand) Skills() []string          { return c.skills }
func (c CreateCrewMemberCommand) MaxHoursPerDay() int       { return c.maxHoursPerDay }
func (c CreateCrewMemberCommand) MaxHoursPerWeek() int      { return c.maxHoursPerWeek }
