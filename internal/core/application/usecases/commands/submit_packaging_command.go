package commands

import (
	"errors"
	"fmt"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
	"flourmill/internal/pkg/guard"
)

var ErrSubmitPackagingCommandIsNotConstructed = errors.New(
	"SubmitPackagingCommand must be created via NewSubmitPackagingCommand constructor",
)

// SubmitPackagingCommand represents a packaging submission for a grinding
// run's output. The destination fields pick the route:
//
//   - shallow only: loose product into a maida shallow
//   - godown only: bagged product straight into a godown
//   - both: loose product drawn back out of a shallow, bagged into a godown
type SubmitPackagingCommand struct { //nolint:recvcheck //using for validation
	recordID      kernel.UUID
	orderID       kernel.UUID
	grindingJobID kernel.UUID
	productType   string
	shallowID     *kernel.UUID
	godownID      *kernel.UUID
	looseQuantity float64
	bagSizeKg     float64
	numberOfBags  int

	guard guard.ConstructorGuard
}

// NewSubmitPackagingCommand creates a packaging command, validating that the
// destination fields describe exactly one of the three routes.
func NewSubmitPackagingCommand(
	recordID, orderID, grindingJobID kernel.UUID,
	productType string,
	shallowID, godownID *kernel.UUID,
	looseQuantity, bagSizeKg float64,
	numberOfBags int,
) (SubmitPackagingCommand, error) {
	cmd := SubmitPackagingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		recordID.Validate(),
		orderID.Validate(),
		grindingJobID.Validate(),
	); err != nil {
		return SubmitPackagingCommand{}, err
	}
	if productType == "" {
		return SubmitPackagingCommand{}, errs.NewValueIsRequiredError("product type")
	}
	if shallowID == nil && godownID == nil {
		return SubmitPackagingCommand{}, errs.NewValueIsRequiredError("destination")
	}
	if shallowID != nil {
		if err := shallowID.Validate(); err != nil {
			return SubmitPackagingCommand{}, err
		}
	}
	if godownID != nil {
		if err := godownID.Validate(); err != nil {
			return SubmitPackagingCommand{}, err
		}
		if bagSizeKg <= 0 {
			return SubmitPackagingCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"bag size kg",
				fmt.Errorf("%v is not greater than 0", bagSizeKg),
			)
		}
		if numberOfBags < 1 {
			return SubmitPackagingCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"number of bags",
				fmt.Errorf("%d is not greater than 0", numberOfBags),
			)
		}
	} else if looseQuantity <= 0 {
		return SubmitPackagingCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"loose quantity tons",
			fmt.Errorf("%v is not greater than 0", looseQuantity),
		)
	}

	cmd.recordID = recordID
	cmd.orderID = orderID
	cmd.grindingJobID = grindingJobID
	cmd.productType = productType
	cmd.shallowID = shallowID
	cmd.godownID = godownID
	cmd.looseQuantity = looseQuantity
	cmd.bagSizeKg = bagSizeKg
	cmd.numberOfBags = numberOfBags
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPackagingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPackagingCommandIsNotConstructed)
}

// RecordID returns the unique identifier for the new packaging record.
func (c SubmitPackagingCommand) RecordID() kernel.UUID {
	return c.recordID
}

// OrderID returns the order whose output is being packed.
func (c SubmitPackagingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// GrindingJobID returns the run whose output is being packed.
func (c SubmitPackagingCommand) GrindingJobID() kernel.UUID {
	return c.grindingJobID
}

// ProductType returns the packed product.
func (c SubmitPackagingCommand) ProductType() string {
	return c.productType
}

// ShallowID returns the shallow involved, if any.
func (c SubmitPackagingCommand) ShallowID() *kernel.UUID {
	return c.shallowID
}

// GodownID returns the destination godown, if any.
func (c SubmitPackagingCommand) GodownID() *kernel.UUID {
	return c.godownID
}

// LooseQuantity returns the loose tons for the shallow route.
func (c SubmitPackagingCommand) LooseQuantity() float64 {
	return c.looseQuantity
}

// BagSizeKg returns the bag size for the godown routes.
func (c SubmitPackagingCommand) BagSizeKg() float64 {
	return c.bagSizeKg
}

// NumberOfBags returns the bag count for the godown routes.
func (c SubmitPackagingCommand) NumberOfBags() int {
	return c.numberOfBags
}
