package commands

import (
	"context"
	"time"
)

// StopGrindingCommandHandler stops a grinding run, fixing its duration, and
// moves the order to GRINDING_COMPLETED.
type StopGrindingCommandHandler struct {
	uowFactory GrindingUoWFactory
}

// NewStopGrindingCommandHandler creates a handler for grinding stops.
func NewStopGrindingCommandHandler(uowFactory GrindingUoWFactory) StopGrindingCommandHandler {
	return StopGrindingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop command. A stopped run no longer accepts hourly
// reports.
func (h *StopGrindingCommandHandler) Handle(ctx context.Context, cmd StopGrindingCommand) error {
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

	grindingRepo := uow.GrindingRepository()
	job, err := grindingRepo.GetJob(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = job.Stop(time.Now()); err != nil {
		return err
	}

	if err = grindingRepo.UpdateJob(ctx, job); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.CompleteGrinding(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
