package inventory

import (
	"errors"
	"fmt"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrGodownIsNotConstructed is returned when a Godown was not created through
// NewGodown or RestoreGodown.
var ErrGodownIsNotConstructed = errors.New("Godown must be created via NewGodown or RestoreGodown")

// Godown is a finished-goods warehouse holder. Bagged product from packaging
// lands here. Same capacity invariant as Bin, always validated.
type Godown struct {
	id              kernel.UUID
	name            string
	code            string
	capacity        float64
	currentQuantity float64
	location        string

	isConstructed bool
}

// NewGodown creates an empty Godown.
func NewGodown(id kernel.UUID, name, code string, capacity float64, location string) (*Godown, error) {
	g := &Godown{isConstructed: true}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("godown name")
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("godown code")
	}
	if capacity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%v is not greater than 0", capacity),
		)
	}

	g.id = id
	g.name = name
	g.code = code
	g.capacity = capacity
	g.location = location
	return g, nil
}

// RestoreGodown reconstructs a Godown from persistence with its stored quantity.
func RestoreGodown(
	id kernel.UUID, name, code string, capacity, currentQuantity float64, location string,
) (*Godown, error) {
	g, err := NewGodown(id, name, code, capacity, location)
	if err != nil {
		return nil, err
	}
	if currentQuantity < 0 || currentQuantity > capacity {
		return nil, errs.NewValueIsOutOfRangeError("godown quantity", currentQuantity, 0, capacity)
	}
	g.currentQuantity = currentQuantity
	return g, nil
}

// Validate ensures the Godown was constructed via NewGodown or RestoreGodown.
func (g *Godown) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGodownIsNotConstructed
	}
	return nil
}

// ID returns the godown's unique identifier.
func (g *Godown) ID() kernel.UUID { return g.id }

// Name returns the godown's display name.
func (g *Godown) Name() string { return g.name }

// Code returns the godown's code, e.g. "FGG-01".
func (g *Godown) Code() string { return g.code }

// Capacity returns the godown's capacity in tons.
func (g *Godown) Capacity() float64 { return g.capacity }

// CurrentQuantity returns the quantity currently held, in tons.
func (g *Godown) CurrentQuantity() float64 { return g.currentQuantity }

// Location returns the warehouse location label.
func (g *Godown) Location() string { return g.location }

// AvailableSpace returns the remaining headroom in tons.
func (g *Godown) AvailableSpace() float64 {
	return g.capacity - g.currentQuantity
}

// Deposit adds quantity, rejecting amounts that would exceed capacity.
func (g *Godown) Deposit(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("deposit quantity")
	}
	if g.currentQuantity+quantity > g.capacity {
		return errs.NewValueIsOutOfRangeError("godown quantity", g.currentQuantity+quantity, 0, g.capacity)
	}
	g.currentQuantity += quantity
	return nil
}

// Withdraw removes quantity, rejecting amounts beyond the held stock.
func (g *Godown) Withdraw(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("withdraw quantity")
	}
	if quantity > g.currentQuantity {
		return errs.NewValueIsOutOfRangeError("withdraw quantity", quantity, 0, g.currentQuantity)
	}
	g.currentQuantity -= quantity
	return nil
}
