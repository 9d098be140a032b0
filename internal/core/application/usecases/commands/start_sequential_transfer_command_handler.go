package commands

import (
	"context"
	"fmt"
	"time"

	"flourmill/internal/core/domain/model/transfer"
	"flourmill/internal/pkg/errs"
)

// StartSequentialTransferCommandHandler opens a sequential transfer job. The
// quantity check against the source bin happens here, before any bin is
// mutated, so a rejected start leaves all inventory untouched.
type StartSequentialTransferCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewStartSequentialTransferCommandHandler creates a handler for sequential
// transfer starts.
func NewStartSequentialTransferCommandHandler(uowFactory TransferUoWFactory) StartSequentialTransferCommandHandler {
	return StartSequentialTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command. The quantity defaults to the source
// bin's full current stock and may never exceed it.
func (h *StartSequentialTransferCommandHandler) Handle(ctx context.Context, cmd StartSequentialTransferCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	sourceBin, err := uow.BinRepository().Get(ctx, cmd.SourceBinID())
	if err != nil {
		return err
	}

	quantity := sourceBin.CurrentQuantity()
	if cmd.TransferQuantity() != nil {
		quantity = *cmd.TransferQuantity()
	}
	if quantity > sourceBin.CurrentQuantity() {
		return errs.NewValueIsInvalidErrorWithCause(
			"transfer quantity",
			fmt.Errorf("%v exceeds source bin stock of %v", quantity, sourceBin.CurrentQuantity()),
		)
	}

	job, err := transfer.NewSequentialTransferJob(
		cmd.JobID(),
		cmd.OrderID(),
		cmd.SourceBinID(),
		quantity,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.TransferRepository().AddSequentialJob(ctx, job); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
