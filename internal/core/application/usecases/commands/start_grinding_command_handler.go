package commands

import (
	"context"
	"time"

	"flourmill/internal/core/domain/model/grinding"
)

// StartGrindingCommandHandler starts a grinding run and moves the order to
// GRINDING_IN_PROGRESS.
type StartGrindingCommandHandler struct {
	uowFactory GrindingUoWFactory
}

// NewStartGrindingCommandHandler creates a handler for grinding starts.
func NewStartGrindingCommandHandler(uowFactory GrindingUoWFactory) StartGrindingCommandHandler {
	return StartGrindingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
func (h *StartGrindingCommandHandler) Handle(ctx context.Context, cmd StartGrindingCommand) error {
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

	if err = aggregate.BeginGrinding(); err != nil {
		return err
	}

	job, err := grinding.NewJob(cmd.JobID(), cmd.OrderID(), cmd.BinIDs(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.GrindingRepository().AddJob(ctx, job); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
