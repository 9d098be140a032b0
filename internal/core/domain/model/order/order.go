package order

import (
	"errors"
	"fmt"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the production workflow. It carries the order
// number, the requested product and quantity, and the production stage the
// order has reached.
//
// Order maintains these invariants:
//   - The order number is never empty and never changes.
//   - Quantity is positive.
//   - The production stage only advances through the transitions defined on
//     Stage; no transition is reversible and there is no rollback transition.
//   - Orders are never deleted.
type Order struct {
	id          kernel.UUID
	orderNumber string
	productType string
	quantity    float64
	stage       Stage
	createdAt   time.Time

	isConstructed bool
}

// NewOrder creates a new Order in the CREATED stage. All parameters are
// validated; the order number is expected to come from the order number
// generator, never from free-form input.
func NewOrder(id kernel.UUID, orderNumber, productType string, quantity float64, createdAt time.Time) (*Order, error) {
	o := &Order{
		stage:         Created,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setProductType(productType),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, bypassing the CREATED
// starting stage but still applying field validation.
func RestoreOrder(
	id kernel.UUID, orderNumber, productType string, quantity float64, stage Stage, createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, productType, quantity, createdAt)
	if err != nil {
		return nil, err
	}
	if err := stage.Validate(); err != nil {
		return nil, err
	}
	o.stage = stage
	return o, nil
}

// Validate ensures the Order was constructed via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the generated order number, e.g. "WF-2026-001".
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// ProductType returns the ordered product name.
func (o *Order) ProductType() string {
	return o.productType
}

// Quantity returns the ordered quantity in tons.
func (o *Order) Quantity() float64 {
	return o.quantity
}

// Stage returns the order's current production stage.
func (o *Order) Stage() Stage {
	return o.stage
}

// CreatedAt returns the order submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarkPlanned advances the order to PLANNED after a production plan is created.
func (o *Order) MarkPlanned() error {
	return o.advance(Stage.Plan)
}

// BeginBlendedTransfer advances the order to TRANSFER_PRE_TO_24_IN_PROGRESS.
// A no-op if the blended transfer is already in progress, since each
// destination bin has its own start call.
func (o *Order) BeginBlendedTransfer() error {
	return o.advance(Stage.StartBlendedTransfer)
}

// CompleteBlendedTransfer advances the order to TRANSFER_PRE_TO_24_COMPLETED.
// Call only once every destination-bin transfer of the plan has completed.
func (o *Order) CompleteBlendedTransfer() error {
	return o.advance(Stage.CompleteBlendedTransfer)
}

// CompleteSequentialTransfer advances the order to TRANSFER_24_TO_12_COMPLETED.
// This transition fires regardless of how much of the requested quantity was
// actually placed in the destination bins.
func (o *Order) CompleteSequentialTransfer() error {
	return o.advance(Stage.CompleteSequentialTransfer)
}

// BeginGrinding advances the order to GRINDING_IN_PROGRESS.
func (o *Order) BeginGrinding() error {
	return o.advance(Stage.StartGrinding)
}

// CompleteGrinding advances the order to GRINDING_COMPLETED.
func (o *Order) CompleteGrinding() error {
	return o.advance(Stage.CompleteGrinding)
}

// CompletePackaging advances the order to PACKAGING_COMPLETED. Repeated
// packaging submissions re-set the stage without error.
func (o *Order) CompletePackaging() error {
	return o.advance(Stage.CompletePackaging)
}

func (o *Order) advance(transition func(Stage) (Stage, error)) error {
	newStage, err := transition(o.stage)
	if err != nil {
		return err
	}
	o.stage = newStage
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setProductType(productType string) error {
	if productType == "" {
		return errs.NewValueIsRequiredError("productType")
	}
	o.productType = productType
	return nil
}

func (o *Order) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%v is not greater than 0", quantity),
		)
	}
	o.quantity = quantity
	return nil
}
