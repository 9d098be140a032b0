package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
	"flourmill/internal/pkg/guard"
)

var ErrStopSequentialTransferCommandIsNotConstructed = errors.New(
	"StopSequentialTransferCommand must be created via NewStopSequentialTransferCommand constructor",
)

// StopSequentialTransferCommand represents a request to close a sequential
// transfer job by walking the given 12HR bins in order.
type StopSequentialTransferCommand struct { //nolint:recvcheck //using for validation
	jobID               kernel.UUID
	orderID             kernel.UUID
	destinationSequence []kernel.UUID
	outgoingMoisture    *float64
	waterAdded          *float64

	guard guard.ConstructorGuard
}

// NewStopSequentialTransferCommand creates a command to close a sequential
// transfer job.
func NewStopSequentialTransferCommand(
	jobID, orderID kernel.UUID,
	destinationSequence []kernel.UUID,
	outgoingMoisture, waterAdded *float64,
) (StopSequentialTransferCommand, error) {
	cmd := StopSequentialTransferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobID.Validate(),
		orderID.Validate(),
	); err != nil {
		return StopSequentialTransferCommand{}, err
	}
	if len(destinationSequence) == 0 {
		return StopSequentialTransferCommand{}, errs.NewValueIsRequiredError("destination sequence")
	}
	for _, binID := range destinationSequence {
		if err := binID.Validate(); err != nil {
			return StopSequentialTransferCommand{}, err
		}
	}

	cmd.jobID = jobID
	cmd.orderID = orderID
	cmd.destinationSequence = append([]kernel.UUID(nil), destinationSequence...)
	cmd.outgoingMoisture = outgoingMoisture
	cmd.waterAdded = waterAdded
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StopSequentialTransferCommand) Validate() error {
	return c.guard.Validate(ErrStopSequentialTransferCommandIsNotConstructed)
}

// JobID returns the job being closed.
func (c StopSequentialTransferCommand) JobID() kernel.UUID {
	return c.jobID
}

// OrderID returns the order the job belongs to.
func (c StopSequentialTransferCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DestinationSequence returns the 12HR bins in walk order.
func (c StopSequentialTransferCommand) DestinationSequence() []kernel.UUID {
	return append([]kernel.UUID(nil), c.destinationSequence...)
}

// OutgoingMoisture returns the optional moisture reading.
func (c StopSequentialTransferCommand) OutgoingMoisture() *float64 {
	return c.outgoingMoisture
}

// WaterAdded returns the optional water volume.
func (c StopSequentialTransferCommand) WaterAdded() *float64 {
	return c.waterAdded
}
