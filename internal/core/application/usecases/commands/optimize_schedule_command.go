package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

// ErrOptimizeScheduleCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrOptimizeScheduleCommandIsNotConstructed = errors.New(
	"OptimizeScheduleCommand must be created via NewOptimizeScheduleCommand constructor",
)

// OptimizeScheduleCommand represents a request to propose crew assignments for
// the tenant's unscheduled jobs within a planning horizon.
type OptimizeScheduleCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	horizon  kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewOptimizeScheduleCommand creates a command to run the schedule optimizer.
func NewOptimizeScheduleCommand(
	tenantID kernel.UUID,
	horizonStart, horizonEnd time.Time,
) (OptimizeScheduleCommand, error) {
	cmd := OptimizeScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tenantID.Validate(); err != nil {
		return OptimizeScheduleCommand{}, err
	}

	horizon, err := kernel.NewTimeWindow(horizonStart, horizonEnd)
	if err != nil {
		return OptimizeScheduleCommand{}, err
	}

	cmd.tenantID = tenantID
	cmd.horizon = horizon
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OptimizeScheduleCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeScheduleCommandIsNotConstructed)
}

func (c OptimizeScheduleCommand) TenantID() kernel.UUID     { return c.tenantID }
func (c OptimizeScheduleCommand) Horizon() kernel.TimeWindow { return c.horizon }
