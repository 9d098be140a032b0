package commands

import (
	"context"
	"log/slog"
	"math"
	"time"

	"flourmill/internal/core/domain/model/transfer"
)

// StopSequentialTransferCommandHandler closes a sequential transfer job by
// walking the destination bins in order, filling each to capacity before
// moving on. Quantity that fits nowhere is dropped, not returned to the
// source; only the actually placed total leaves the source bin.
type StopSequentialTransferCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewStopSequentialTransferCommandHandler creates a handler for sequential
// transfer stops.
func NewStopSequentialTransferCommandHandler(uowFactory TransferUoWFactory) StopSequentialTransferCommandHandler {
	return StopSequentialTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop command. The order advances to
// TRANSFER_24_TO_12_COMPLETED whether or not the full requested quantity was
// placed; a shortfall is logged and visible in the job's allocations.
func (h *StopSequentialTransferCommandHandler) Handle(ctx context.Context, cmd StopSequentialTransferCommand) error {
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

	transferRepo := uow.TransferRepository()
	job, err := transferRepo.GetSequentialJob(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	binRepo := uow.BinRepository()
	remaining := job.TransferQuantity()
	allocations := make([]transfer.Allocation, 0, len(cmd.DestinationSequence()))
	for i, binID := range cmd.DestinationSequence() {
		destinationBin, err := binRepo.Get(ctx, binID)
		if err != nil {
			return err
		}

		placed := math.Min(remaining, destinationBin.AvailableSpace())
		if placed > 0 {
			if err = destinationBin.Deposit(placed); err != nil {
				return err
			}
			if err = binRepo.Update(ctx, destinationBin); err != nil {
				return err
			}
			remaining -= placed
		}

		allocation, err := transfer.NewAllocation(binID, i+1, placed)
		if err != nil {
			return err
		}
		allocations = append(allocations, allocation)

		if remaining <= 0 {
			break
		}
	}

	if err = job.Complete(allocations, cmd.OutgoingMoisture(), cmd.WaterAdded(), time.Now()); err != nil {
		return err
	}

	total := job.TotalTransferred()
	if remaining > 0 {
		slog.Warn("sequential transfer dropped quantity: destination bins ran out of space",
			"job_id", job.ID().String(),
			"requested", job.TransferQuantity(),
			"placed", total,
			"dropped", remaining,
		)
	}

	sourceBin, err := binRepo.Get(ctx, job.SourceBinID())
	if err != nil {
		return err
	}
	if total > 0 {
		if err = sourceBin.Withdraw(total); err != nil {
			return err
		}
		if err = binRepo.Update(ctx, sourceBin); err != nil {
			return err
		}
	}

	if err = transferRepo.UpdateSequentialJob(ctx, job); err != nil {
		return err
	}

	if err = aggregate.CompleteSequentialTransfer(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
