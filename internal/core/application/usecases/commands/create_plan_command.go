package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
	"flourmill/internal/pkg/guard"
)

var ErrCreatePlanCommandIsNotConstructed = errors.New(
	"CreatePlanCommand must be created via NewCreatePlanCommand constructor",
)

// BlendInput is one source bin's share of the blend, as submitted.
type BlendInput struct {
	BinID      kernel.UUID
	Percentage float64
}

// DistributionInput is one destination bin's allotted quantity, as submitted.
type DistributionInput struct {
	BinID    kernel.UUID
	Quantity float64
}

// CreatePlanCommand represents a request to attach a production plan to an
// order: which PRE_CLEAN bins the wheat is blended from and how the blended
// quantity is distributed across 24HR bins. Sum validation happens in the
// domain once the order's quantity is known.
type CreatePlanCommand struct { //nolint:recvcheck //using for validation
	planID       kernel.UUID
	orderID      kernel.UUID
	description  string
	blend        []BlendInput
	distribution []DistributionInput

	guard guard.ConstructorGuard
}

// NewCreatePlanCommand creates a command to attach a plan to an order.
func NewCreatePlanCommand(
	planID, orderID kernel.UUID,
	description string,
	blend []BlendInput,
	distribution []DistributionInput,
) (CreatePlanCommand, error) {
	planCommand := CreatePlanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		planID.Validate(),
		orderID.Validate(),
	); err != nil {
		return CreatePlanCommand{}, err
	}
	if len(blend) == 0 {
		return CreatePlanCommand{}, errs.NewValueIsRequiredError("source blend")
	}
	if len(distribution) == 0 {
		return CreatePlanCommand{}, errs.NewValueIsRequiredError("destination distribution")
	}

	planCommand.planID = planID
	planCommand.orderID = orderID
	planCommand.description = description
	planCommand.blend = append([]BlendInput(nil), blend...)
	planCommand.distribution = append([]DistributionInput(nil), distribution...)
	return planCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePlanCommand) Validate() error {
	return c.guard.Validate(ErrCreatePlanCommandIsNotConstructed)
}

// PlanID returns the unique identifier for the new plan.
func (c CreatePlanCommand) PlanID() kernel.UUID {
	return c.planID
}

// OrderID returns the order the plan belongs to.
func (c CreatePlanCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Description returns the optional plan description.
func (c CreatePlanCommand) Description() string {
	return c.description
}

// Blend returns the submitted source blend.
func (c CreatePlanCommand) Blend() []BlendInput {
	return append([]BlendInput(nil), c.blend...)
}

// Distribution returns the submitted destination distribution.
func (c CreatePlanCommand) Distribution() []DistributionInput {
	return append([]DistributionInput(nil), c.distribution...)
}
