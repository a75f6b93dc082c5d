package commands

import (
	"errors"

	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrDispatchAutomationCommandIsNotConstructed is returned when the command bypassed its constructor.
var ErrDispatchAutomationCommandIsNotConstructed = errors.New(
	"DispatchAutomationCommand must be created via NewDispatchAutomationCommand constructor",
)

// DispatchAutomationCommand represents one drain pass over the automation
// outbox, processing up to batchSize pending rows.
type DispatchAutomationCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchAutomationCommand creates a command to drain the automation outbox.
func NewDispatchAutomationCommand(batchSize int) (DispatchAutomationCommand, error) {
	cmd := DispatchAutomationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if batchSize <= 0 {
		return DispatchAutomationCommand{}, errs.NewValueIsInvalidError("batchSize")
	}

	cmd.batchSize = batchSize
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchAutomationCommand) Validate() error {
	return c.guard.Validate(ErrDispatchAutomationCommandIsNotConstructed)
}

func (c DispatchAutomationCommand) BatchSize() int { return c.batchSize }
