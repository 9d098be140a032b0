package transfer

import (
	"errors"
	"fmt"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrDestinationBinTransferIsNotConstructed is returned when a
// DestinationBinTransfer was not created through its constructors.
var ErrDestinationBinTransferIsNotConstructed = errors.New(
	"DestinationBinTransfer must be created via NewDestinationBinTransfer or RestoreDestinationBinTransfer",
)

// DestinationBinTransfer tracks the blended transfer into one destination bin
// of a production plan. There is at most one row per (plan, destination bin);
// the row is created lazily when the transfer is first started.
type DestinationBinTransfer struct {
	id                  kernel.UUID
	orderID             kernel.UUID
	planID              kernel.UUID
	destinationBinID    kernel.UUID
	status              Status
	targetQuantity      float64
	transferredQuantity float64
	startedAt           *time.Time
	completedAt         *time.Time

	isConstructed bool
}

// NewDestinationBinTransfer creates a READY transfer for one destination bin
// with its plan-allotted target quantity.
func NewDestinationBinTransfer(
	id, orderID, planID, destinationBinID kernel.UUID, targetQuantity float64,
) (*DestinationBinTransfer, error) {
	t := &DestinationBinTransfer{
		status:        Ready,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		planID.Validate(),
		destinationBinID.Validate(),
	); err != nil {
		return nil, err
	}
	if targetQuantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"target quantity",
			fmt.Errorf("%v is not greater than 0", targetQuantity),
		)
	}

	t.id = id
	t.orderID = orderID
	t.planID = planID
	t.destinationBinID = destinationBinID
	t.targetQuantity = targetQuantity
	return t, nil
}

// RestoreDestinationBinTransfer reconstructs a transfer from persistence.
func RestoreDestinationBinTransfer(
	id, orderID, planID, destinationBinID kernel.UUID,
	status Status,
	targetQuantity, transferredQuantity float64,
	startedAt, completedAt *time.Time,
) (*DestinationBinTransfer, error) {
	t, err := NewDestinationBinTransfer(id, orderID, planID, destinationBinID, targetQuantity)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	t.status = status
	t.transferredQuantity = transferredQuantity
	t.startedAt = startedAt
	t.completedAt = completedAt
	return t, nil
}

// Validate ensures the transfer was built via its constructors.
func (t *DestinationBinTransfer) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrDestinationBinTransferIsNotConstructed
	}
	return nil
}

// ID returns the transfer's unique identifier.
func (t *DestinationBinTransfer) ID() kernel.UUID { return t.id }

// OrderID returns the order this transfer belongs to.
func (t *DestinationBinTransfer) OrderID() kernel.UUID { return t.orderID }

// PlanID returns the production plan this transfer executes.
func (t *DestinationBinTransfer) PlanID() kernel.UUID { return t.planID }

// DestinationBinID returns the 24HR bin being filled.
func (t *DestinationBinTransfer) DestinationBinID() kernel.UUID { return t.destinationBinID }

// Status returns the transfer's lifecycle status.
func (t *DestinationBinTransfer) Status() Status { return t.status }

// TargetQuantity returns the plan-allotted quantity for the destination bin.
func (t *DestinationBinTransfer) TargetQuantity() float64 { return t.targetQuantity }

// TransferredQuantity returns the quantity recorded at completion.
func (t *DestinationBinTransfer) TransferredQuantity() float64 { return t.transferredQuantity }

// StartedAt returns the start time, nil while READY.
func (t *DestinationBinTransfer) StartedAt() *time.Time { return t.startedAt }

// CompletedAt returns the completion time, nil until COMPLETED.
func (t *DestinationBinTransfer) CompletedAt() *time.Time { return t.completedAt }

// Start moves the transfer READY -> IN_PROGRESS and records the start time.
func (t *DestinationBinTransfer) Start(now time.Time) error {
	newStatus, err := t.status.Start()
	if err != nil {
		return err
	}
	t.status = newStatus
	t.startedAt = &now
	return nil
}

// Stop moves the transfer IN_PROGRESS -> COMPLETED, recording the completion
// time and the transferred quantity (the full target).
func (t *DestinationBinTransfer) Stop(now time.Time) error {
	newStatus, err := t.status.Stop()
	if err != nil {
		return err
	}
	t.status = newStatus
	t.transferredQuantity = t.targetQuantity
	t.completedAt = &now
	return nil
}
