package commands

import (
	"context"
	"time"

	"flourmill/internal/core/domain/model/order"
	"flourmill/internal/core/domain/model/plan"
)

// CreatePlanCommandHandler validates the submitted blend and distribution
// against the order and advances the order to PLANNED.
type CreatePlanCommandHandler struct {
	uowFactory PlanUoWFactory
}

// NewCreatePlanCommandHandler creates a handler for plan creation.
func NewCreatePlanCommandHandler(uowFactory PlanUoWFactory) CreatePlanCommandHandler {
	return CreatePlanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the plan creation command. The blend percentages must sum
// to 100 and the distribution quantities to the order's quantity, both
// within tolerance; either failure rejects the plan before anything is
// written.
func (h *CreatePlanCommandHandler) Handle(ctx context.Context, cmd CreatePlanCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	blend := make([]plan.BlendComponent, 0, len(cmd.Blend()))
	for _, b := range cmd.Blend() {
		component, err := plan.NewBlendComponent(b.BinID, b.Percentage)
		if err != nil {
			return err
		}
		blend = append(blend, component)
	}

	distribution := make([]plan.Distribution, 0, len(cmd.Distribution()))
	for _, d := range cmd.Distribution() {
		dist, err := plan.NewDistribution(d.BinID, d.Quantity)
		if err != nil {
			return err
		}
		distribution = append(distribution, dist)
	}

	productionPlan, err := plan.NewProductionPlan(
		cmd.PlanID(),
		cmd.OrderID(),
		cmd.Description(),
		blend,
		distribution,
		aggregate.Quantity(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.PlanRepository().Add(ctx, productionPlan); err != nil {
		return err
	}

	// A revised plan may be submitted while the order is still PLANNED;
	// only the first plan moves the stage forward.
	if aggregate.Stage() == order.Created {
		if err = aggregate.MarkPlanned(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
