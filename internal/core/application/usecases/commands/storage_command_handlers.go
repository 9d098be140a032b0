package commands

import (
	"context"

	"flourmill/internal/core/domain/model/inventory"
)

// StorageCommandHandler handles shallow and godown master-data changes.
type StorageCommandHandler struct {
	uowFactory StorageUoWFactory
}

// NewStorageCommandHandler creates a handler for storage master data.
func NewStorageCommandHandler(uowFactory StorageUoWFactory) StorageCommandHandler {
	return StorageCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleCreateShallow registers a new empty shallow.
func (h *StorageCommandHandler) HandleCreateShallow(ctx context.Context, cmd CreateShallowCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	shallow, err := inventory.NewShallow(cmd.ShallowID(), cmd.Name(), cmd.Code(), cmd.Capacity())
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

	if err = uow.ShallowRepository().Add(ctx, shallow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleDeleteShallow removes a shallow from the master data.
func (h *StorageCommandHandler) HandleDeleteShallow(ctx context.Context, cmd DeleteStorageCommand) error {
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

	shallowRepo := uow.ShallowRepository()
	if _, err := shallowRepo.Get(ctx, cmd.ID()); err != nil {
		return err
	}

	if err := shallowRepo.Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleCreateGodown registers a new empty godown.
func (h *StorageCommandHandler) HandleCreateGodown(ctx context.Context, cmd CreateGodownCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	godown, err := inventory.NewGodown(cmd.GodownID(), cmd.Name(), cmd.Code(), cmd.Capacity(), cmd.Location())
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

	if err = uow.GodownRepository().Add(ctx, godown); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleDeleteGodown removes a godown from the master data.
func (h *StorageCommandHandler) HandleDeleteGodown(ctx context.Context, cmd DeleteStorageCommand) error {
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

	godownRepo := uow.GodownRepository()
	if _, err := godownRepo.Get(ctx, cmd.ID()); err != nil {
		return err
	}

	if err := godownRepo.Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
