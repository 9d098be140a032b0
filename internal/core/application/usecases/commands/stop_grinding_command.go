package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var ErrStopGrindingCommandIsNotConstructed = errors.New(
	"StopGrindingCommand must be created via NewStopGrindingCommand constructor",
)

// StopGrindingCommand represents a request to stop a grinding run.
type StopGrindingCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStopGrindingCommand creates a command to stop a grinding run.
func NewStopGrindingCommand(jobID, orderID kernel.UUID) (StopGrindingCommand, error) {
	cmd := StopGrindingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobID.Validate(),
		orderID.Validate(),
	); err != nil {
		return StopGrindingCommand{}, err
	}

	cmd.jobID = jobID
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StopGrindingCommand) Validate() error {
	return c.guard.Validate(ErrStopGrindingCommandIsNotConstructed)
}

// JobID returns the run being stopped.
func (c StopGrindingCommand) JobID() kernel.UUID {
	return c.jobID
}

// OrderID returns the order being ground.
func (c StopGrindingCommand) OrderID() kernel.UUID {
	return c.orderID
}
