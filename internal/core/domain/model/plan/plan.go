// Package plan contains the production plan aggregate: a blend recipe over
// pre-clean source bins plus a quantity distribution over 24HR destination
// bins. Plans are immutable once created; there is no update or delete path.
package plan

import (
	"errors"
	"fmt"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPlanIsNotConstructed is returned when a ProductionPlan was not created
// through NewProductionPlan or RestoreProductionPlan.
var ErrPlanIsNotConstructed = errors.New("ProductionPlan must be created via NewProductionPlan or RestoreProductionPlan")

// StatusActive is the only plan status in use; plans are never deactivated.
const StatusActive = "ACTIVE"

// SumTolerance is the allowed absolute deviation when validating that blend
// percentages sum to 100 and distribution quantities sum to the order total.
// Tolerance is applied with decimal arithmetic so float noise in request
// payloads does not produce spurious rejections.
var SumTolerance = decimal.NewFromFloat(0.01)

// BlendComponent is one source bin's share of the blend recipe. The tonnage is
// derived from the percentage against the order quantity at plan creation and
// stored alongside it.
type BlendComponent struct {
	binID      kernel.UUID
	percentage float64
	quantity   float64
}

// NewBlendComponent creates a blend component; the derived tonnage is computed
// later against the order quantity.
func NewBlendComponent(binID kernel.UUID, percentage float64) (BlendComponent, error) {
	if err := binID.Validate(); err != nil {
		return BlendComponent{}, err
	}
	if percentage <= 0 || percentage > 100 {
		return BlendComponent{}, errs.NewValueIsOutOfRangeError("blend percentage", percentage, 0, 100)
	}
	return BlendComponent{binID: binID, percentage: percentage}, nil
}

// RestoreBlendComponent reconstructs a blend component from persistence.
func RestoreBlendComponent(binID kernel.UUID, percentage, quantity float64) BlendComponent {
	return BlendComponent{binID: binID, percentage: percentage, quantity: quantity}
}

// BinID returns the source bin this component draws from.
func (c BlendComponent) BinID() kernel.UUID { return c.binID }

// Percentage returns the component's share of the blend.
func (c BlendComponent) Percentage() float64 { return c.percentage }

// Quantity returns the percentage-derived tonnage against the order total.
func (c BlendComponent) Quantity() float64 { return c.quantity }

// ContributionFor computes this component's tonnage share of the given target
// quantity: percentage/100 * target.
func (c BlendComponent) ContributionFor(target float64) float64 {
	pct := decimal.NewFromFloat(c.percentage)
	t := decimal.NewFromFloat(target)
	return pct.Div(decimal.NewFromInt(100)).Mul(t).InexactFloat64()
}

// Distribution is one destination bin's allotted quantity.
type Distribution struct {
	binID    kernel.UUID
	quantity float64
}

// NewDistribution creates a destination distribution entry.
func NewDistribution(binID kernel.UUID, quantity float64) (Distribution, error) {
	if err := binID.Validate(); err != nil {
		return Distribution{}, err
	}
	if quantity <= 0 {
		return Distribution{}, errs.NewValueIsInvalidErrorWithCause(
			"distribution quantity",
			fmt.Errorf("%v is not greater than 0", quantity),
		)
	}
	return Distribution{binID: binID, quantity: quantity}, nil
}

// BinID returns the destination bin.
func (d Distribution) BinID() kernel.UUID { return d.binID }

// Quantity returns the quantity allotted to the destination bin, in tons.
func (d Distribution) Quantity() float64 { return d.quantity }

// ProductionPlan owns the blend recipe and destination distribution for one
// order. Invariants, both checked with SumTolerance:
//   - blend percentages sum to 100
//   - distribution quantities sum to the order quantity
//
// Nothing prevents multiple plans per order; downstream transfer operations
// reference a specific plan id.
type ProductionPlan struct {
	id           kernel.UUID
	orderID      kernel.UUID
	description  string
	status       string
	sourceBlend  []BlendComponent
	distribution []Distribution
	createdAt    time.Time

	isConstructed bool
}

// NewProductionPlan validates the blend and distribution against the order
// quantity and derives each blend component's tonnage. The component and
// distribution order is preserved.
func NewProductionPlan(
	id, orderID kernel.UUID,
	description string,
	blend []BlendComponent,
	distribution []Distribution,
	orderQuantity float64,
	createdAt time.Time,
) (*ProductionPlan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if len(blend) == 0 {
		return nil, errs.NewValueIsRequiredError("source blend")
	}
	if len(distribution) == 0 {
		return nil, errs.NewValueIsRequiredError("destination distribution")
	}

	if err := validatePercentageSum(blend); err != nil {
		return nil, err
	}
	if err := validateDistributionSum(distribution, orderQuantity); err != nil {
		return nil, err
	}

	orderQty := decimal.NewFromFloat(orderQuantity)
	hundred := decimal.NewFromInt(100)
	components := make([]BlendComponent, len(blend))
	for i, c := range blend {
		c.quantity = decimal.NewFromFloat(c.percentage).Div(hundred).Mul(orderQty).InexactFloat64()
		components[i] = c
	}

	return &ProductionPlan{
		id:            id,
		orderID:       orderID,
		description:   description,
		status:        StatusActive,
		sourceBlend:   components,
		distribution:  append([]Distribution(nil), distribution...),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreProductionPlan reconstructs a plan from persistence without re-running
// the sum validations; stored rows are taken as already validated.
func RestoreProductionPlan(
	id, orderID kernel.UUID,
	description, status string,
	blend []BlendComponent,
	distribution []Distribution,
	createdAt time.Time,
) (*ProductionPlan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return &ProductionPlan{
		id:            id,
		orderID:       orderID,
		description:   description,
		status:        status,
		sourceBlend:   append([]BlendComponent(nil), blend...),
		distribution:  append([]Distribution(nil), distribution...),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func validatePercentageSum(blend []BlendComponent) error {
	sum := decimal.Zero
	for _, c := range blend {
		sum = sum.Add(decimal.NewFromFloat(c.percentage))
	}
	if sum.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(SumTolerance) {
		return errs.NewValueIsInvalidErrorWithCause(
			"source blend",
			fmt.Errorf("percentages sum to %s, must sum to 100", sum),
		)
	}
	return nil
}

func validateDistributionSum(distribution []Distribution, orderQuantity float64) error {
	sum := decimal.Zero
	for _, d := range distribution {
		sum = sum.Add(decimal.NewFromFloat(d.quantity))
	}
	if sum.Sub(decimal.NewFromFloat(orderQuantity)).Abs().GreaterThan(SumTolerance) {
		return errs.NewValueIsInvalidErrorWithCause(
			"destination distribution",
			fmt.Errorf("quantities sum to %s, must sum to order total %v", sum, orderQuantity),
		)
	}
	return nil
}

// Validate ensures the plan was built via its constructors.
func (p *ProductionPlan) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPlanIsNotConstructed
	}
	return nil
}

// ID returns the plan's unique identifier.
func (p *ProductionPlan) ID() kernel.UUID { return p.id }

// OrderID returns the order this plan belongs to.
func (p *ProductionPlan) OrderID() kernel.UUID { return p.orderID }

// Description returns the free-form plan description.
func (p *ProductionPlan) Description() string { return p.description }

// Status returns the plan status; always "ACTIVE" in practice.
func (p *ProductionPlan) Status() string { return p.status }

// SourceBlend returns the ordered blend components.
func (p *ProductionPlan) SourceBlend() []BlendComponent {
	return append([]BlendComponent(nil), p.sourceBlend...)
}

// Distribution returns the ordered destination distribution.
func (p *ProductionPlan) Distribution() []Distribution {
	return append([]Distribution(nil), p.distribution...)
}

// CreatedAt returns the plan creation time.
func (p *ProductionPlan) CreatedAt() time.Time { return p.createdAt }

// DistributionFor returns the distribution entry for the given destination
// bin, or an ObjectNotFoundError if the bin is not part of the plan.
func (p *ProductionPlan) DistributionFor(binID kernel.UUID) (Distribution, error) {
	for _, d := range p.distribution {
		if d.binID.IsEqual(binID) {
			return d, nil
		}
	}
	return Distribution{}, errs.NewObjectNotFoundError("destination bin", binID.String())
}
