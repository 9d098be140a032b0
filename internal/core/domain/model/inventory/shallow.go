package inventory

import (
	"errors"
	"fmt"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrShallowIsNotConstructed is returned when a Shallow was not created through
// NewShallow or RestoreShallow.
var ErrShallowIsNotConstructed = errors.New("Shallow must be created via NewShallow or RestoreShallow")

// ShallowProductType is the only product stored loose in shallows.
const ShallowProductType = "MAIDA"

// Shallow is an intermediate loose-storage holder for maida between grinding
// and bagging. Same capacity invariant as Bin, always validated.
type Shallow struct {
	id              kernel.UUID
	name            string
	code            string
	capacity        float64
	currentQuantity float64

	isConstructed bool
}

// NewShallow creates an empty Shallow.
func NewShallow(id kernel.UUID, name, code string, capacity float64) (*Shallow, error) {
	s := &Shallow{isConstructed: true}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("shallow name")
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("shallow code")
	}
	if capacity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%v is not greater than 0", capacity),
		)
	}

	s.id = id
	s.name = name
	s.code = code
	s.capacity = capacity
	return s, nil
}

// RestoreShallow reconstructs a Shallow from persistence with its stored quantity.
func RestoreShallow(id kernel.UUID, name, code string, capacity, currentQuantity float64) (*Shallow, error) {
	s, err := NewShallow(id, name, code, capacity)
	if err != nil {
		return nil, err
	}
	if currentQuantity < 0 || currentQuantity > capacity {
		return nil, errs.NewValueIsOutOfRangeError("shallow quantity", currentQuantity, 0, capacity)
	}
	s.currentQuantity = currentQuantity
	return s, nil
}

// Validate ensures the Shallow was constructed via NewShallow or RestoreShallow.
func (s *Shallow) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShallowIsNotConstructed
	}
	return nil
}

// ID returns the shallow's unique identifier.
func (s *Shallow) ID() kernel.UUID { return s.id }

// Name returns the shallow's display name.
func (s *Shallow) Name() string { return s.name }

// Code returns the shallow's code, e.g. "SH-01".
func (s *Shallow) Code() string { return s.code }

// Capacity returns the shallow's capacity in tons.
func (s *Shallow) Capacity() float64 { return s.capacity }

// CurrentQuantity returns the quantity currently held, in tons.
func (s *Shallow) CurrentQuantity() float64 { return s.currentQuantity }

// AvailableSpace returns the remaining headroom in tons.
func (s *Shallow) AvailableSpace() float64 {
	return s.capacity - s.currentQuantity
}

// Deposit adds quantity, rejecting amounts that would exceed capacity.
func (s *Shallow) Deposit(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("deposit quantity")
	}
	if s.currentQuantity+quantity > s.capacity {
		return errs.NewValueIsOutOfRangeError("shallow quantity", s.currentQuantity+quantity, 0, s.capacity)
	}
	s.currentQuantity += quantity
	return nil
}

// Withdraw removes quantity, rejecting amounts beyond the held stock.
func (s *Shallow) Withdraw(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("withdraw quantity")
	}
	if quantity > s.currentQuantity {
		return errs.NewValueIsOutOfRangeError("withdraw quantity", quantity, 0, s.currentQuantity)
	}
	s.currentQuantity -= quantity
	return nil
}
