package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var (
	ErrCreateBinCommandIsNotConstructed = errors.New(
		"CreateBinCommand must be created via NewCreateBinCommand constructor",
	)
	ErrUpdateBinCommandIsNotConstructed = errors.New(
		"UpdateBinCommand must be created via NewUpdateBinCommand constructor",
	)
	ErrDeleteBinCommandIsNotConstructed = errors.New(
		"DeleteBinCommand must be created via NewDeleteBinCommand constructor",
	)
)

// CreateBinCommand registers a new process bin.
type CreateBinCommand struct { //nolint:recvcheck //using for validation
	binID          kernel.UUID
	name           string
	binType        inventory.BinType
	capacity       float64
	identityNumber string

	guard guard.ConstructorGuard
}

// NewCreateBinCommand creates a command to register a bin. Name, type and
// capacity validation happens in the domain constructor on Handle.
func NewCreateBinCommand(
	binID kernel.UUID, name string, binType inventory.BinType, capacity float64, identityNumber string,
) (CreateBinCommand, error) {
	if err := binID.Validate(); err != nil {
		return CreateBinCommand{}, err
	}
	return CreateBinCommand{
		binID:          binID,
		name:           name,
		binType:        binType,
		capacity:       capacity,
		identityNumber: identityNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBinCommand) Validate() error {
	return c.guard.Validate(ErrCreateBinCommandIsNotConstructed)
}

// BinID returns the unique identifier for the new bin.
func (c CreateBinCommand) BinID() kernel.UUID { return c.binID }

// Name returns the bin's display name.
func (c CreateBinCommand) Name() string { return c.name }

// BinType returns the bin's process type.
func (c CreateBinCommand) BinType() inventory.BinType { return c.binType }

// Capacity returns the bin's capacity in tons.
func (c CreateBinCommand) Capacity() float64 { return c.capacity }

// IdentityNumber returns the bin's plant identity number.
func (c CreateBinCommand) IdentityNumber() string { return c.identityNumber }

// UpdateBinCommand changes a bin's name, capacity or identity number.
type UpdateBinCommand struct { //nolint:recvcheck //using for validation
	binID          kernel.UUID
	name           string
	capacity       float64
	identityNumber string

	guard guard.ConstructorGuard
}

// NewUpdateBinCommand creates a command to update a bin's master data.
func NewUpdateBinCommand(
	binID kernel.UUID, name string, capacity float64, identityNumber string,
) (UpdateBinCommand, error) {
	if err := binID.Validate(); err != nil {
		return UpdateBinCommand{}, err
	}
	return UpdateBinCommand{
		binID:          binID,
		name:           name,
		capacity:       capacity,
		identityNumber: identityNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBinCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBinCommandIsNotConstructed)
}

// BinID returns the bin being updated.
func (c UpdateBinCommand) BinID() kernel.UUID { return c.binID }

// Name returns the new display name.
func (c UpdateBinCommand) Name() string { return c.name }

// Capacity returns the new capacity in tons.
func (c UpdateBinCommand) Capacity() float64 { return c.capacity }

// IdentityNumber returns the new identity number.
func (c UpdateBinCommand) IdentityNumber() string { return c.identityNumber }

// DeleteBinCommand removes a bin from the master data.
type DeleteBinCommand struct { //nolint:recvcheck //using for validation
	binID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteBinCommand creates a command to delete a bin.
func NewDeleteBinCommand(binID kernel.UUID) (DeleteBinCommand, error) {
	if err := binID.Validate(); err != nil {
		return DeleteBinCommand{}, err
	}
	return DeleteBinCommand{binID: binID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBinCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBinCommandIsNotConstructed)
}

// BinID returns the bin being deleted.
func (c DeleteBinCommand) BinID() kernel.UUID { return c.binID }
