package commands

import (
	"context"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/transfer"
)

// StartBlendedTransferCommandHandler starts the blended transfer into one
// destination bin. The transfer row is created lazily on first start; a
// second start for the same (plan, bin) pair is an invalid transition.
type StartBlendedTransferCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewStartBlendedTransferCommandHandler creates a handler for blended
// transfer starts.
func NewStartBlendedTransferCommandHandler(uowFactory TransferUoWFactory) StartBlendedTransferCommandHandler {
	return StartBlendedTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command. The destination bin must appear in the
// latest plan's distribution; an unlisted bin fails with an object-not-found
// error. The first started bin moves the order to
// TRANSFER_PRE_TO_24_IN_PROGRESS; further starts leave the stage unchanged.
func (h *StartBlendedTransferCommandHandler) Handle(ctx context.Context, cmd StartBlendedTransferCommand) error {
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

	allotted, err := productionPlan.DistributionFor(cmd.DestinationBinID())
	if err != nil {
		return err
	}

	transferRepo := uow.TransferRepository()
	binTransfer, err := transferRepo.GetDestinationTransfer(ctx, productionPlan.ID(), cmd.DestinationBinID())
	if err != nil {
		return err
	}

	created := binTransfer == nil
	if created {
		binTransfer, err = transfer.NewDestinationBinTransfer(
			kernel.NewUUID(),
			cmd.OrderID(),
			productionPlan.ID(),
			cmd.DestinationBinID(),
			allotted.Quantity(),
		)
		if err != nil {
			return err
		}
	}

	if err = binTransfer.Start(time.Now()); err != nil {
		return err
	}

	if created {
		err = transferRepo.AddDestinationTransfer(ctx, binTransfer)
	} else {
		err = transferRepo.UpdateDestinationTransfer(ctx, binTransfer)
	}
	if err != nil {
		return err
	}

	if err = aggregate.BeginBlendedTransfer(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
