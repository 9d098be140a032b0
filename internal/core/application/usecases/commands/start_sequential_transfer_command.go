package commands

import (
	"errors"
	"fmt"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
	"flourmill/internal/pkg/guard"
)

var ErrStartSequentialTransferCommandIsNotConstructed = errors.New(
	"StartSequentialTransferCommand must be created via NewStartSequentialTransferCommand constructor",
)

// StartSequentialTransferCommand represents a request to open a sequential
// transfer job draining one 24HR bin. A nil quantity means the source bin's
// full current stock.
type StartSequentialTransferCommand struct { //nolint:recvcheck //using for validation
	jobID            kernel.UUID
	orderID          kernel.UUID
	sourceBinID      kernel.UUID
	transferQuantity *float64

	guard guard.ConstructorGuard
}

// NewStartSequentialTransferCommand creates a command to open a sequential
// transfer job.
func NewStartSequentialTransferCommand(
	jobID, orderID, sourceBinID kernel.UUID, transferQuantity *float64,
) (StartSequentialTransferCommand, error) {
	cmd := StartSequentialTransferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobID.Validate(),
		orderID.Validate(),
		sourceBinID.Validate(),
	); err != nil {
		return StartSequentialTransferCommand{}, err
	}
	if transferQuantity != nil && *transferQuantity <= 0 {
		return StartSequentialTransferCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"transfer quantity",
			fmt.Errorf("%v is not greater than 0", *transferQuantity),
		)
	}

	cmd.jobID = jobID
	cmd.orderID = orderID
	cmd.sourceBinID = sourceBinID
	cmd.transferQuantity = transferQuantity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartSequentialTransferCommand) Validate() error {
	return c.guard.Validate(ErrStartSequentialTransferCommandIsNotConstructed)
}

// JobID returns the unique identifier for the new job.
func (c StartSequentialTransferCommand) JobID() kernel.UUID {
	return c.jobID
}

// OrderID returns the order the job belongs to.
func (c StartSequentialTransferCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SourceBinID returns the 24HR bin being drained.
func (c StartSequentialTransferCommand) SourceBinID() kernel.UUID {
	return c.sourceBinID
}

// TransferQuantity returns the requested quantity, nil for the bin's full
// stock.
func (c StartSequentialTransferCommand) TransferQuantity() *float64 {
	return c.transferQuantity
}
