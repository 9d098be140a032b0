package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var (
	ErrCreateShallowCommandIsNotConstructed = errors.New(
		"CreateShallowCommand must be created via NewCreateShallowCommand constructor",
	)
	ErrCreateGodownCommandIsNotConstructed = errors.New(
		"CreateGodownCommand must be created via NewCreateGodownCommand constructor",
	)
	ErrDeleteStorageCommandIsNotConstructed = errors.New(
		"DeleteStorageCommand must be created via NewDeleteShallowCommand or NewDeleteGodownCommand",
	)
)

// CreateShallowCommand registers a new maida shallow.
type CreateShallowCommand struct { //nolint:recvcheck //using for validation
	shallowID kernel.UUID
	name      string
	code      string
	capacity  float64

	guard guard.ConstructorGuard
}

// NewCreateShallowCommand creates a command to register a shallow.
func NewCreateShallowCommand(shallowID kernel.UUID, name, code string, capacity float64) (CreateShallowCommand, error) {
	if err := shallowID.Validate(); err != nil {
		return CreateShallowCommand{}, err
	}
	return CreateShallowCommand{
		shallowID: shallowID,
		name:      name,
		code:      code,
		capacity:  capacity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShallowCommand) Validate() error {
	return c.guard.Validate(ErrCreateShallowCommandIsNotConstructed)
}

// ShallowID returns the unique identifier for the new shallow.
func (c CreateShallowCommand) ShallowID() kernel.UUID { return c.shallowID }

// Name returns the shallow's display name.
func (c CreateShallowCommand) Name() string { return c.name }

// Code returns the shallow's plant code.
func (c CreateShallowCommand) Code() string { return c.code }

// Capacity returns the shallow's capacity in tons.
func (c CreateShallowCommand) Capacity() float64 { return c.capacity }

// CreateGodownCommand registers a new finished-goods godown.
type CreateGodownCommand struct { //nolint:recvcheck //using for validation
	godownID kernel.UUID
	name     string
	code     string
	capacity float64
	location string

	guard guard.ConstructorGuard
}

// NewCreateGodownCommand creates a command to register a godown.
func NewCreateGodownCommand(
	godownID kernel.UUID, name, code string, capacity float64, location string,
) (CreateGodownCommand, error) {
	if err := godownID.Validate(); err != nil {
		return CreateGodownCommand{}, err
	}
	return CreateGodownCommand{
		godownID: godownID,
		name:     name,
		code:     code,
		capacity: capacity,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateGodownCommand) Validate() error {
	return c.guard.Validate(ErrCreateGodownCommandIsNotConstructed)
}

// GodownID returns the unique identifier for the new godown.
func (c CreateGodownCommand) GodownID() kernel.UUID { return c.godownID }

// Name returns the godown's display name.
func (c CreateGodownCommand) Name() string { return c.name }

// Code returns the godown's plant code.
func (c CreateGodownCommand) Code() string { return c.code }

// Capacity returns the godown's capacity in tons.
func (c CreateGodownCommand) Capacity() float64 { return c.capacity }

// Location returns the godown's physical location.
func (c CreateGodownCommand) Location() string { return c.location }

// DeleteStorageCommand removes a shallow or godown from the master data.
type DeleteStorageCommand struct { //nolint:recvcheck //using for validation
	id kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStorageCommand creates a command to delete a shallow or godown.
func NewDeleteStorageCommand(id kernel.UUID) (DeleteStorageCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteStorageCommand{}, err
	}
	return DeleteStorageCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStorageCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStorageCommandIsNotConstructed)
}

// ID returns the storage location being deleted.
func (c DeleteStorageCommand) ID() kernel.UUID { return c.id }
