package commands

import (
	"context"

	"flourmill/internal/core/domain/model/inventory"
)

// BinCommandHandler handles bin master-data changes: create, update and
// delete.
type BinCommandHandler struct {
	uowFactory BinUoWFactory
}

// NewBinCommandHandler creates a handler for bin master data.
func NewBinCommandHandler(uowFactory BinUoWFactory) BinCommandHandler {
	return BinCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleCreate registers a new empty bin.
func (h *BinCommandHandler) HandleCreate(ctx context.Context, cmd CreateBinCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	bin, err := inventory.NewBin(cmd.BinID(), cmd.Name(), cmd.BinType(), cmd.Capacity(), cmd.IdentityNumber())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BinRepository().Add(ctx, bin); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleUpdate changes a bin's name, capacity or identity number. The bin's
// type and current quantity are preserved; shrinking the capacity below the
// held quantity is allowed and simply leaves the bin with no headroom.
func (h *BinCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateBinCommand) error {
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

	binRepo := uow.BinRepository()
	existing, err := binRepo.Get(ctx, cmd.BinID())
	if err != nil {
		return err
	}

	updated, err := inventory.RestoreBin(
		existing.ID(),
		cmd.Name(),
		existing.BinType(),
		cmd.Capacity(),
		existing.CurrentQuantity(),
		cmd.IdentityNumber(),
	)
	if err != nil {
		return err
	}

	if err = binRepo.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleDelete removes a bin from the master data.
func (h *BinCommandHandler) HandleDelete(ctx context.Context, cmd DeleteBinCommand) error {
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

	binRepo := uow.BinRepository()
	if _, err := binRepo.Get(ctx, cmd.BinID()); err != nil {
		return err
	}

	if err := binRepo.Delete(ctx, cmd.BinID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
