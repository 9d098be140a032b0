package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var (
	ErrCreateFinishedGoodCommandIsNotConstructed = errors.New(
		"CreateFinishedGoodCommand must be created via NewCreateFinishedGoodCommand constructor",
	)
	ErrCreateRawProductCommandIsNotConstructed = errors.New(
		"CreateRawProductCommand must be created via NewCreateRawProductCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// CreateFinishedGoodCommand registers a sellable product and the initials
// used to prefix its order numbers.
type CreateFinishedGoodCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	productName string
	initialName string

	guard guard.ConstructorGuard
}

// NewCreateFinishedGoodCommand creates a command to register a finished
// good.
func NewCreateFinishedGoodCommand(productID kernel.UUID, productName, initialName string) (CreateFinishedGoodCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateFinishedGoodCommand{}, err
	}
	return CreateFinishedGoodCommand{
		productID:   productID,
		productName: productName,
		initialName: initialName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFinishedGoodCommand) Validate() error {
	return c.guard.Validate(ErrCreateFinishedGoodCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new finished good.
func (c CreateFinishedGoodCommand) ProductID() kernel.UUID { return c.productID }

// ProductName returns the product's display name.
func (c CreateFinishedGoodCommand) ProductName() string { return c.productName }

// InitialName returns the order number prefix initials.
func (c CreateFinishedGoodCommand) InitialName() string { return c.initialName }

// CreateRawProductCommand registers a raw product.
type CreateRawProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	productName string

	guard guard.ConstructorGuard
}

// NewCreateRawProductCommand creates a command to register a raw product.
func NewCreateRawProductCommand(productID kernel.UUID, productName string) (CreateRawProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateRawProductCommand{}, err
	}
	return CreateRawProductCommand{
		productID:   productID,
		productName: productName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRawProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateRawProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new raw product.
func (c CreateRawProductCommand) ProductID() kernel.UUID { return c.productID }

// ProductName returns the product's display name.
func (c CreateRawProductCommand) ProductName() string { return c.productName }

// DeleteProductCommand removes a finished good or raw product.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to delete a catalog entry.
func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the catalog entry being deleted.
func (c DeleteProductCommand) ProductID() kernel.UUID { return c.productID }
