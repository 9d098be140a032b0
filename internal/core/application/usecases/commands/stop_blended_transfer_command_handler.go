package commands

import (
	"context"
	"time"

	"flourmill/internal/core/domain/model/transfer"
	"flourmill/internal/pkg/errs"
)

// StopBlendedTransferCommandHandler stops the blended transfer into one
// destination bin: every source bin in the blend gives up its percentage
// share of the target quantity and the destination bin receives the full
// target. All bin movements commit in one transaction.
type StopBlendedTransferCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewStopBlendedTransferCommandHandler creates a handler for blended
// transfer stops.
func NewStopBlendedTransferCommandHandler(uowFactory TransferUoWFactory) StopBlendedTransferCommandHandler {
	return StopBlendedTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop command. Source bins are drawn down without a
// floor check, so a source short on stock goes negative rather than failing;
// the destination deposit still enforces capacity. Once every destination
// bin of the plan is COMPLETED the order advances to
// TRANSFER_PRE_TO_24_COMPLETED.
func (h *StopBlendedTransferCommandHandler) Handle(ctx context.Context, cmd StopBlendedTransferCommand) error {
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

	productionPlan, err := uow.PlanRepository().GetLatestByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	transferRepo := uow.TransferRepository()
	binTransfer, err := transferRepo.GetDestinationTransfer(ctx, productionPlan.ID(), cmd.DestinationBinID())
	if err != nil {
		return err
	}
	if binTransfer == nil {
		return errs.NewObjectNotFoundError("destination bin transfer", cmd.DestinationBinID())
	}

	if err = binTransfer.Stop(time.Now()); err != nil {
		return err
	}

	binRepo := uow.BinRepository()
	target := binTransfer.TargetQuantity()
	for _, component := range productionPlan.SourceBlend() {
		sourceBin, err := binRepo.Get(ctx, component.BinID())
		if err != nil {
			return err
		}
		if err = sourceBin.Draw(component.ContributionFor(target)); err != nil {
			return err
		}
		if err = binRepo.Update(ctx, sourceBin); err != nil {
			return err
		}
	}

	destinationBin, err := binRepo.Get(ctx, cmd.DestinationBinID())
	if err != nil {
		return err
	}
	if err = destinationBin.Deposit(target); err != nil {
		return err
	}
	if err = binRepo.Update(ctx, destinationBin); err != nil {
		return err
	}

	if err = transferRepo.UpdateDestinationTransfer(ctx, binTransfer); err != nil {
		return err
	}

	transfers, err := transferRepo.GetDestinationTransfersByPlan(ctx, productionPlan.ID())
	if err != nil {
		return err
	}

	completed := 0
	for _, t := range transfers {
		if t.Status() == transfer.Completed {
			completed++
		}
	}

	if completed == len(productionPlan.Distribution()) {
		if err = aggregate.CompleteBlendedTransfer(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
