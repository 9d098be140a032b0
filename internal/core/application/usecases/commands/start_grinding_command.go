package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
	"flourmill/internal/pkg/guard"
)

var ErrStartGrindingCommandIsNotConstructed = errors.New(
	"StartGrindingCommand must be created via NewStartGrindingCommand constructor",
)

// StartGrindingCommand represents a request to start a grinding run fed from
// the given 12HR bins in order.
type StartGrindingCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	orderID kernel.UUID
	binIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartGrindingCommand creates a command to start a grinding run.
func NewStartGrindingCommand(jobID, orderID kernel.UUID, binIDs []kernel.UUID) (StartGrindingCommand, error) {
	cmd := StartGrindingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobID.Validate(),
		orderID.Validate(),
	); err != nil {
		return StartGrindingCommand{}, err
	}
	if len(binIDs) == 0 {
		return StartGrindingCommand{}, errs.NewValueIsRequiredError("bin ids")
	}
	for _, binID := range binIDs {
		if err := binID.Validate(); err != nil {
			return StartGrindingCommand{}, err
		}
	}

	cmd.jobID = jobID
	cmd.orderID = orderID
	cmd.binIDs = append([]kernel.UUID(nil), binIDs...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartGrindingCommand) Validate() error {
	return c.guard.Validate(ErrStartGrindingCommandIsNotConstructed)
}

// JobID returns the unique identifier for the new run.
func (c StartGrindingCommand) JobID() kernel.UUID {
	return c.jobID
}

// OrderID returns the order being ground.
func (c StartGrindingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BinIDs returns the 12HR bins in feed order.
func (c StartGrindingCommand) BinIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.binIDs...)
}
