package packaging

import (
	"errors"
	"fmt"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record was not created
// through its constructors.
var ErrRecordIsNotConstructed = errors.New(
	"Record must be created via NewLooseRecord, NewBaggedRecord or RestoreRecord",
)

// StatusPacked is the only status a packaging record ever carries.
const StatusPacked = "PACKED"

// KgPerTon converts bag arithmetic, which runs in kilograms, back to the
// tons every inventory holder is measured in.
const KgPerTon = 1000.0

// Record is one packaging submission for a grinding run. Loose records route
// product into a shallow; bagged records route it into a godown, optionally
// drawing the loose product back out of a shallow first.
type Record struct {
	id            kernel.UUID
	grindingJobID kernel.UUID
	orderID       kernel.UUID
	productType   string
	shallowID     *kernel.UUID
	godownID      *kernel.UUID
	bagSizeKg     float64
	numberOfBags  int
	totalKgPacked float64
	status        string
	packedAt      *time.Time

	isConstructed bool
}

func newRecord(id, grindingJobID, orderID kernel.UUID, productType string, packedAt time.Time) (*Record, error) {
	if err := errors.Join(id.Validate(), grindingJobID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if productType == "" {
		return nil, errs.NewValueIsRequiredError("product type")
	}
	return &Record{
		id:            id,
		grindingJobID: grindingJobID,
		orderID:       orderID,
		productType:   productType,
		status:        StatusPacked,
		packedAt:      &packedAt,
		isConstructed: true,
	}, nil
}

// NewLooseRecord records loose product deposited into a shallow. The
// quantity is given in tons and stored in kilograms alongside the bagged
// records.
func NewLooseRecord(
	id, grindingJobID, orderID kernel.UUID,
	productType string,
	shallowID kernel.UUID,
	looseQuantityTons float64,
	packedAt time.Time,
) (*Record, error) {
	r, err := newRecord(id, grindingJobID, orderID, productType, packedAt)
	if err != nil {
		return nil, err
	}
	if err := shallowID.Validate(); err != nil {
		return nil, err
	}
	if looseQuantityTons <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"loose quantity tons",
			fmt.Errorf("%v is not greater than 0", looseQuantityTons),
		)
	}
	r.shallowID = &shallowID
	r.totalKgPacked = looseQuantityTons * KgPerTon
	return r, nil
}

// NewBaggedRecord records product bagged into a godown. sourceShallowID is
// set when the loose product was drawn back out of a shallow for bagging.
func NewBaggedRecord(
	id, grindingJobID, orderID kernel.UUID,
	productType string,
	godownID kernel.UUID,
	sourceShallowID *kernel.UUID,
	bagSizeKg float64,
	numberOfBags int,
	packedAt time.Time,
) (*Record, error) {
	r, err := newRecord(id, grindingJobID, orderID, productType, packedAt)
	if err != nil {
		return nil, err
	}
	if err := godownID.Validate(); err != nil {
		return nil, err
	}
	if sourceShallowID != nil {
		if err := sourceShallowID.Validate(); err != nil {
			return nil, err
		}
		r.shallowID = sourceShallowID
	}
	if bagSizeKg <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"bag size kg",
			fmt.Errorf("%v is not greater than 0", bagSizeKg),
		)
	}
	if numberOfBags < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"number of bags",
			fmt.Errorf("%d is not greater than 0", numberOfBags),
		)
	}
	r.godownID = &godownID
	r.bagSizeKg = bagSizeKg
	r.numberOfBags = numberOfBags
	r.totalKgPacked = bagSizeKg * float64(numberOfBags)
	return r, nil
}

// RestoreRecord reconstructs a packaging record from persistence.
func RestoreRecord(
	id, grindingJobID, orderID kernel.UUID,
	productType string,
	shallowID, godownID *kernel.UUID,
	bagSizeKg float64,
	numberOfBags int,
	totalKgPacked float64,
	status string,
	packedAt *time.Time,
) (*Record, error) {
	if err := errors.Join(id.Validate(), grindingJobID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	return &Record{
		id:            id,
		grindingJobID: grindingJobID,
		orderID:       orderID,
		productType:   productType,
		shallowID:     shallowID,
		godownID:      godownID,
		bagSizeKg:     bagSizeKg,
		numberOfBags:  numberOfBags,
		totalKgPacked: totalKgPacked,
		status:        status,
		packedAt:      packedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was built via its constructors.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID { return r.id }

// GrindingJobID returns the run whose output was packed.
func (r *Record) GrindingJobID() kernel.UUID { return r.grindingJobID }

// OrderID returns the order this packaging belongs to.
func (r *Record) OrderID() kernel.UUID { return r.orderID }

// ProductType returns the packed product.
func (r *Record) ProductType() string { return r.productType }

// ShallowID returns the shallow involved, nil for direct bagging.
func (r *Record) ShallowID() *kernel.UUID { return r.shallowID }

// GodownID returns the destination godown, nil for loose storage.
func (r *Record) GodownID() *kernel.UUID { return r.godownID }

// BagSizeKg returns the bag size, zero for loose records.
func (r *Record) BagSizeKg() float64 { return r.bagSizeKg }

// NumberOfBags returns the bag count, zero for loose records.
func (r *Record) NumberOfBags() int { return r.numberOfBags }

// TotalKgPacked returns the packed weight in kilograms.
func (r *Record) TotalKgPacked() float64 { return r.totalKgPacked }

// TotalTonsPacked returns the packed weight in tons.
func (r *Record) TotalTonsPacked() float64 { return r.totalKgPacked / KgPerTon }

// Status returns the record status.
func (r *Record) Status() string { return r.status }

// PackedAt returns when the packaging was submitted.
func (r *Record) PackedAt() *time.Time { return r.packedAt }
