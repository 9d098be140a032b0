package transfer

import (
	"errors"
	"fmt"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrSequentialTransferJobIsNotConstructed is returned when a
// SequentialTransferJob was not created through its constructors.
var ErrSequentialTransferJobIsNotConstructed = errors.New(
	"SequentialTransferJob must be created via NewSequentialTransferJob or RestoreSequentialTransferJob",
)

// Allocation is one destination bin's share of a sequential transfer,
// recorded in walk order at stop time.
type Allocation struct {
	destinationBinID    kernel.UUID
	sequenceOrder       int
	quantityTransferred float64
	status              Status
}

// NewAllocation records what one destination bin received during the walk.
// Bins that were already full get a zero-quantity allocation so the walk
// order stays auditable.
func NewAllocation(destinationBinID kernel.UUID, sequenceOrder int, quantityTransferred float64) (Allocation, error) {
	if err := destinationBinID.Validate(); err != nil {
		return Allocation{}, err
	}
	if sequenceOrder < 1 {
		return Allocation{}, errs.NewValueIsInvalidError("sequence order")
	}
	if quantityTransferred < 0 {
		return Allocation{}, errs.NewValueIsInvalidError("quantity transferred")
	}
	return Allocation{
		destinationBinID:    destinationBinID,
		sequenceOrder:       sequenceOrder,
		quantityTransferred: quantityTransferred,
		status:              Completed,
	}, nil
}

// RestoreAllocation reconstructs an allocation from persistence.
func RestoreAllocation(
	destinationBinID kernel.UUID, sequenceOrder int, quantityTransferred float64, status Status,
) Allocation {
	return Allocation{
		destinationBinID:    destinationBinID,
		sequenceOrder:       sequenceOrder,
		quantityTransferred: quantityTransferred,
		status:              status,
	}
}

// DestinationBinID returns the 12HR bin that received this allocation.
func (a Allocation) DestinationBinID() kernel.UUID { return a.destinationBinID }

// SequenceOrder returns the 1-based position of this bin in the walk.
func (a Allocation) SequenceOrder() int { return a.sequenceOrder }

// QuantityTransferred returns the tons placed into the bin.
func (a Allocation) QuantityTransferred() float64 { return a.quantityTransferred }

// Status returns the allocation's status.
func (a Allocation) Status() Status { return a.status }

// SequentialTransferJob drains one 24HR source bin into an ordered list of
// 12HR bins, filling each to capacity before moving to the next. Quantity that
// fits nowhere is dropped, not returned to the source; the recorded
// allocations and the source deduction always agree on the actual total moved.
type SequentialTransferJob struct {
	id               kernel.UUID
	orderID          kernel.UUID
	sourceBinID      kernel.UUID
	transferQuantity float64
	status           Status
	startedAt        *time.Time
	stoppedAt        *time.Time
	outgoingMoisture *float64
	waterAdded       *float64
	allocations      []Allocation

	isConstructed bool
}

// NewSequentialTransferJob opens a job in IN_PROGRESS, recording the start
// time. transferQuantity must already be resolved (it defaults to the source
// bin's full current quantity at the call site) and must not exceed the
// source bin's stock; that check happens before any bin is mutated.
func NewSequentialTransferJob(
	id, orderID, sourceBinID kernel.UUID, transferQuantity float64, startedAt time.Time,
) (*SequentialTransferJob, error) {
	j := &SequentialTransferJob{
		status:        InProgress,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		sourceBinID.Validate(),
	); err != nil {
		return nil, err
	}
	if transferQuantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"transfer quantity",
			fmt.Errorf("%v is not greater than 0", transferQuantity),
		)
	}

	j.id = id
	j.orderID = orderID
	j.sourceBinID = sourceBinID
	j.transferQuantity = transferQuantity
	j.startedAt = &startedAt
	return j, nil
}

// RestoreSequentialTransferJob reconstructs a job from persistence.
func RestoreSequentialTransferJob(
	id, orderID, sourceBinID kernel.UUID,
	transferQuantity float64,
	status Status,
	startedAt, stoppedAt *time.Time,
	outgoingMoisture, waterAdded *float64,
	allocations []Allocation,
) (*SequentialTransferJob, error) {
	j, err := NewSequentialTransferJob(id, orderID, sourceBinID, transferQuantity, time.Time{})
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	j.status = status
	j.startedAt = startedAt
	j.stoppedAt = stoppedAt
	j.outgoingMoisture = outgoingMoisture
	j.waterAdded = waterAdded
	j.allocations = append([]Allocation(nil), allocations...)
	return j, nil
}

// Validate ensures the job was built via its constructors.
func (j *SequentialTransferJob) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrSequentialTransferJobIsNotConstructed
	}
	return nil
}

// ID returns the job's unique identifier.
func (j *SequentialTransferJob) ID() kernel.UUID { return j.id }

// OrderID returns the order this job belongs to.
func (j *SequentialTransferJob) OrderID() kernel.UUID { return j.orderID }

// SourceBinID returns the 24HR bin being drained.
func (j *SequentialTransferJob) SourceBinID() kernel.UUID { return j.sourceBinID }

// TransferQuantity returns the requested quantity in tons.
func (j *SequentialTransferJob) TransferQuantity() float64 { return j.transferQuantity }

// Status returns the job's lifecycle status.
func (j *SequentialTransferJob) Status() Status { return j.status }

// StartedAt returns the start time.
func (j *SequentialTransferJob) StartedAt() *time.Time { return j.startedAt }

// StoppedAt returns the stop time, nil while in progress.
func (j *SequentialTransferJob) StoppedAt() *time.Time { return j.stoppedAt }

// OutgoingMoisture returns the moisture reading recorded at stop, if any.
func (j *SequentialTransferJob) OutgoingMoisture() *float64 { return j.outgoingMoisture }

// WaterAdded returns the water volume recorded at stop, if any.
func (j *SequentialTransferJob) WaterAdded() *float64 { return j.waterAdded }

// Allocations returns the sequence-ordered destination allocations.
func (j *SequentialTransferJob) Allocations() []Allocation {
	return append([]Allocation(nil), j.allocations...)
}

// TotalTransferred returns the actual tons placed across all allocations.
// This can be less than TransferQuantity when the listed bins ran out of
// space; the difference is the dropped quantity.
func (j *SequentialTransferJob) TotalTransferred() float64 {
	var total float64
	for _, a := range j.allocations {
		total += a.quantityTransferred
	}
	return total
}

// Complete moves the job IN_PROGRESS -> COMPLETED with its allocations and
// optional moisture readings.
func (j *SequentialTransferJob) Complete(
	allocations []Allocation, outgoingMoisture, waterAdded *float64, stoppedAt time.Time,
) error {
	newStatus, err := j.status.Stop()
	if err != nil {
		return err
	}
	j.status = newStatus
	j.allocations = append([]Allocation(nil), allocations...)
	j.outgoingMoisture = outgoingMoisture
	j.waterAdded = waterAdded
	j.stoppedAt = &stoppedAt
	return nil
}
