package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var ErrStartBlendedTransferCommandIsNotConstructed = errors.New(
	"StartBlendedTransferCommand must be created via NewStartBlendedTransferCommand constructor",
)

// StartBlendedTransferCommand represents a request to start the blended
// transfer into one destination 24HR bin of the order's plan.
type StartBlendedTransferCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	destinationBinID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartBlendedTransferCommand creates a command to start a blended
// transfer into one destination bin.
func NewStartBlendedTransferCommand(orderID, destinationBinID kernel.UUID) (StartBlendedTransferCommand, error) {
	cmd := StartBlendedTransferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		destinationBinID.Validate(),
	); err != nil {
		return StartBlendedTransferCommand{}, err
	}

	cmd.orderID = orderID
	cmd.destinationBinID = destinationBinID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartBlendedTransferCommand) Validate() error {
	return c.guard.Validate(ErrStartBlendedTransferCommandIsNotConstructed)
}

// OrderID returns the order whose plan is being executed.
func (c StartBlendedTransferCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DestinationBinID returns the 24HR bin to start filling.
func (c StartBlendedTransferCommand) DestinationBinID() kernel.UUID {
	return c.destinationBinID
}
