package commands

import (
	"context"
	"time"

	"flourmill/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// it resolves the finished good's initials, generates the next order number
// for the product/year prefix and persists the order in CREATED stage.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. Fails with an object-not-found
// error when the product type is not a known finished good, since without its
// initials no order number can be generated.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	finishedGood, err := uow.ProductRepository().GetFinishedGoodByName(ctx, cmd.ProductType())
	if err != nil {
		return err
	}

	now := time.Now()
	prefix := order.NumberPrefix(finishedGood.InitialName(), now.Year())

	orderRepo := uow.OrderRepository()
	seq, err := orderRepo.HighestSequence(ctx, prefix)
	if err != nil {
		return err
	}

	number := order.BuildNumber(finishedGood.InitialName(), now.Year(), seq+1)
	aggregate, err := order.NewOrder(cmd.OrderID(), number, cmd.ProductType(), cmd.Quantity(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
