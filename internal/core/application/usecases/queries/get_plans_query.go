package queries

import (
	"errors"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var ErrGetPlansQueryIsNotConstructed = errors.New(
	"GetPlansQuery must be created via NewGetPlansQuery constructor",
)

// GetPlansQuery retrieves an order's production plans with their blend and
// distribution rows, bin names included for display.
type GetPlansQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPlansQuery creates a query for an order's plans.
func NewGetPlansQuery(orderID kernel.UUID) (GetPlansQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPlansQuery{}, err
	}
	return GetPlansQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPlansQuery) Validate() error {
	return q.guard.Validate(ErrGetPlansQueryIsNotConstructed)
}

// OrderID returns the order whose plans are fetched.
func (q GetPlansQuery) OrderID() kernel.UUID {
	return q.orderID
}

// BlendRowResponse is one source bin's share of a plan's blend.
type BlendRowResponse struct {
	BinID      kernel.UUID
	BinName    string
	Percentage float64
	Quantity   float64
}

// DistributionRowResponse is one destination bin's allotted quantity.
type DistributionRowResponse struct {
	BinID    kernel.UUID
	BinName  string
	Quantity float64
}

// PlanResponse is the read model of one production plan.
type PlanResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	Description  string
	Status       string
	CreatedAt    time.Time
	SourceBlend  []BlendRowResponse
	Distribution []DistributionRowResponse
}
