package inventory

import (
	"errors"
	"fmt"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrBinIsNotConstructed is returned when a Bin was not created through
// NewBin or RestoreBin.
var ErrBinIsNotConstructed = errors.New("Bin must be created via NewBin or RestoreBin")

// BinType classifies a bin by the processing stage it serves.
type BinType int

const (
	// BinTypeUnknown represents an invalid or undefined bin type.
	BinTypeUnknown BinType = iota

	// PreClean holds raw wheat before cleaning.
	PreClean

	// TwentyFourHour holds blended wheat during the 24-hour conditioning stage.
	TwentyFourHour

	// TwelveHour holds conditioned wheat during the 12-hour stage feeding the mill.
	TwelveHour
)

func getBinTypeStrings() map[BinType]string {
	return map[BinType]string{
		BinTypeUnknown: "UNKNOWN",
		PreClean:       "PRE_CLEAN",
		TwentyFourHour: "24HR",
		TwelveHour:     "12HR",
	}
}

// BinTypeFromString maps a persisted bin type name back to its BinType value.
func BinTypeFromString(s string) (BinType, error) {
	for bt, name := range getBinTypeStrings() {
		if name == s && bt != BinTypeUnknown {
			return bt, nil
		}
	}
	return BinTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"bin type",
		fmt.Errorf("%q is not a known bin type", s),
	)
}

// String returns the persisted name of the bin type.
func (bt BinType) String() string {
	if str, ok := getBinTypeStrings()[bt]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the BinType holds one of the defined values.
func (bt BinType) Validate() error {
	if _, ok := getBinTypeStrings()[bt]; !ok || bt == BinTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"bin type",
			fmt.Errorf("%d is not a valid bin type", bt),
		)
	}
	return nil
}

// Bin is a capacity-bounded holder of raw or intermediate product. Bins are
// shared mutable resources: every transfer, grinding, and packaging operation
// that touches a bin reads and writes its current quantity.
//
// Invariant: 0 <= currentQuantity <= capacity after every validated mutation.
// Draw intentionally skips the floor check (see the package comment).
type Bin struct {
	id              kernel.UUID
	name            string
	binType         BinType
	capacity        float64
	currentQuantity float64
	identityNumber  string

	isConstructed bool
}

// NewBin creates an empty Bin with the given capacity.
func NewBin(id kernel.UUID, name string, binType BinType, capacity float64, identityNumber string) (*Bin, error) {
	b := &Bin{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setBinType(binType),
		b.setCapacity(capacity),
	); err != nil {
		return nil, err
	}
	b.identityNumber = identityNumber

	return b, nil
}

// RestoreBin reconstructs a Bin from persistence with its stored quantity.
// The stored quantity is accepted as-is, including an out-of-range value left
// behind by an unchecked Draw, so that persisted state always round-trips.
func RestoreBin(
	id kernel.UUID, name string, binType BinType, capacity, currentQuantity float64, identityNumber string,
) (*Bin, error) {
	b, err := NewBin(id, name, binType, capacity, identityNumber)
	if err != nil {
		return nil, err
	}
	b.currentQuantity = currentQuantity
	return b, nil
}

// Validate ensures the Bin was constructed via NewBin or RestoreBin.
func (b *Bin) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBinIsNotConstructed
	}
	return nil
}

// ID returns the bin's unique identifier.
func (b *Bin) ID() kernel.UUID {
	return b.id
}

// Name returns the bin's display name.
func (b *Bin) Name() string {
	return b.name
}

// BinType returns the processing stage this bin serves.
func (b *Bin) BinType() BinType {
	return b.binType
}

// Capacity returns the bin's capacity in tons.
func (b *Bin) Capacity() float64 {
	return b.capacity
}

// CurrentQuantity returns the quantity currently held, in tons.
func (b *Bin) CurrentQuantity() float64 {
	return b.currentQuantity
}

// IdentityNumber returns the physical identity tag of the bin, e.g. "PC-01".
func (b *Bin) IdentityNumber() string {
	return b.identityNumber
}

// AvailableSpace returns the remaining headroom in tons, never negative.
func (b *Bin) AvailableSpace() float64 {
	space := b.capacity - b.currentQuantity
	if space < 0 {
		return 0
	}
	return space
}

// Deposit adds quantity to the bin, rejecting amounts that would exceed capacity.
func (b *Bin) Deposit(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("deposit quantity")
	}
	if b.currentQuantity+quantity > b.capacity {
		return errs.NewValueIsOutOfRangeError("bin quantity", b.currentQuantity+quantity, 0, b.capacity)
	}
	b.currentQuantity += quantity
	return nil
}

// Withdraw removes quantity from the bin, rejecting amounts beyond the
// currently held stock.
func (b *Bin) Withdraw(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("withdraw quantity")
	}
	if quantity > b.currentQuantity {
		return errs.NewValueIsOutOfRangeError("withdraw quantity", quantity, 0, b.currentQuantity)
	}
	b.currentQuantity -= quantity
	return nil
}

// Draw removes quantity from the bin without a floor check. The blended
// transfer deducts each source bin's percentage contribution this way, so a
// source bin with insufficient stock goes negative instead of erring. Whether
// that should be clamped or rejected is an open business question; everything
// else must use Withdraw.
func (b *Bin) Draw(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("draw quantity")
	}
	b.currentQuantity -= quantity
	return nil
}

func (b *Bin) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bin) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("bin name")
	}
	b.name = name
	return nil
}

func (b *Bin) setBinType(binType BinType) error {
	if err := binType.Validate(); err != nil {
		return err
	}
	b.binType = binType
	return nil
}

func (b *Bin) setCapacity(capacity float64) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%v is not greater than 0", capacity),
		)
	}
	b.capacity = capacity
	return nil
}
