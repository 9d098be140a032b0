package commands

import (
	"errors"
	"fmt"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
	"flourmill/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new production order for
// a finished good. The order number is generated by the handler from the
// product's initials and the current year.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Wheat Flour", 100)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productType string
	quantity    float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new production order.
// Validates that the order ID is valid, the product type is not empty, and
// the quantity is positive.
func NewCreateOrderCommand(orderID kernel.UUID, productType string, quantity float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setProductType(productType),
		orderCommand.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductType returns the finished good being ordered.
func (c CreateOrderCommand) ProductType() string {
	return c.productType
}

// Quantity returns the ordered quantity in tons.
func (c CreateOrderCommand) Quantity() float64 {
	return c.quantity
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setProductType(productType string) error {
	if productType == "" {
		return errs.NewValueIsRequiredError("product type")
	}

	c.productType = productType
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%v is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}
