package ports

import (
	"context"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/plan"
)

// PlanRepository defines the persistence contract for production plans.
// Plans are immutable once created, so there is no update method.
type PlanRepository interface {
	// Add persists a new plan with its blend and distribution rows.
	Add(ctx context.Context, aggregate *plan.ProductionPlan) error

	// Get retrieves a plan by its unique identifier, including its blend
	// and distribution rows.
	Get(ctx context.Context, id kernel.UUID) (*plan.ProductionPlan, error)

	// GetLatestByOrder retrieves the most recently created plan for an
	// order. The latest plan is the one the transfer engine executes.
	GetLatestByOrder(ctx context.Context, orderID kernel.UUID) (*plan.ProductionPlan, error)

	// GetAllByOrder retrieves every plan created for an order, newest
	// first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*plan.ProductionPlan, error)
}
