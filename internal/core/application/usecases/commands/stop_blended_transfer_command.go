package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var ErrStopBlendedTransferCommandIsNotConstructed = errors.New(
	"StopBlendedTransferCommand must be created via NewStopBlendedTransferCommand constructor",
)

// StopBlendedTransferCommand represents a request to stop the blended
// transfer into one destination bin, committing the bin movements.
type StopBlendedTransferCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	destinationBinID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStopBlendedTransferCommand creates a command to stop a blended transfer
// into one destination bin.
func NewStopBlendedTransferCommand(orderID, destinationBinID kernel.UUID) (StopBlendedTransferCommand, error) {
	cmd := StopBlendedTransferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		destinationBinID.Validate(),
	); err != nil {
		return StopBlendedTransferCommand{}, err
	}

	cmd.orderID = orderID
	cmd.destinationBinID = destinationBinID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StopBlendedTransferCommand) Validate() error {
	return c.guard.Validate(ErrStopBlendedTransferCommandIsNotConstructed)
}

// OrderID returns the order whose plan is being executed.
func (c StopBlendedTransferCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DestinationBinID returns the 24HR bin to stop filling.
func (c StopBlendedTransferCommand) DestinationBinID() kernel.UUID {
	return c.destinationBinID
}
