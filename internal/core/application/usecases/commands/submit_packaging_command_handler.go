package commands

import (
	"context"
	"fmt"
	"time"

	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/packaging"
	"flourmill/internal/pkg/errs"
)

// SubmitPackagingCommandHandler routes a grinding run's output into storage:
// loose into a maida shallow, bagged into a godown, or drawn back out of a
// shallow and bagged into a godown. Every movement writes a storage-transfer
// audit row and the order ends in PACKAGING_COMPLETED.
type SubmitPackagingCommandHandler struct {
	uowFactory PackagingUoWFactory
}

// NewSubmitPackagingCommandHandler creates a handler for packaging
// submission.
func NewSubmitPackagingCommandHandler(uowFactory PackagingUoWFactory) SubmitPackagingCommandHandler {
	return SubmitPackagingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the packaging submission. Destination capacity is checked
// by the Deposit calls before anything commits; packaging may be submitted
// repeatedly for the same order.
func (h *SubmitPackagingCommandHandler) Handle(ctx context.Context, cmd SubmitPackagingCommand) error {
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

	if _, err = uow.GrindingRepository().GetJob(ctx, cmd.GrindingJobID()); err != nil {
		return err
	}

	var (
		record   *packaging.Record
		movement *packaging.StorageTransfer
	)

	now := time.Now()
	switch {
	case cmd.GodownID() == nil:
		record, movement, err = h.packLoose(ctx, uow, cmd, now)
	case cmd.ShallowID() == nil:
		record, movement, err = h.packBagged(ctx, uow, cmd, now)
	default:
		record, movement, err = h.packFromShallow(ctx, uow, cmd, now)
	}
	if err != nil {
		return err
	}

	packagingRepo := uow.PackagingRepository()
	if err = packagingRepo.AddRecord(ctx, record); err != nil {
		return err
	}
	if err = packagingRepo.AddStorageTransfer(ctx, movement); err != nil {
		return err
	}

	if err = aggregate.CompletePackaging(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// packLoose deposits loose product into a maida shallow. Shallows hold only
// maida, so any other product type is rejected.
func (h *SubmitPackagingCommandHandler) packLoose(
	ctx context.Context, uow PackagingUoW, cmd SubmitPackagingCommand, now time.Time,
) (*packaging.Record, *packaging.StorageTransfer, error) {
	if cmd.ProductType() != inventory.ShallowProductType {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause(
			"product type",
			fmt.Errorf("shallows only store %s, got %q", inventory.ShallowProductType, cmd.ProductType()),
		)
	}

	shallowRepo := uow.ShallowRepository()
	shallow, err := shallowRepo.Get(ctx, *cmd.ShallowID())
	if err != nil {
		return nil, nil, err
	}
	if err = shallow.Deposit(cmd.LooseQuantity()); err != nil {
		return nil, nil, err
	}
	if err = shallowRepo.Update(ctx, shallow); err != nil {
		return nil, nil, err
	}

	record, err := packaging.NewLooseRecord(
		cmd.RecordID(), cmd.GrindingJobID(), cmd.OrderID(),
		cmd.ProductType(), *cmd.ShallowID(), cmd.LooseQuantity(), now,
	)
	if err != nil {
		return nil, nil, err
	}

	movement, err := packaging.NewStorageTransfer(
		kernel.NewUUID(),
		packaging.LocationGrinding, nil,
		packaging.LocationShallow, *cmd.ShallowID(),
		cmd.ProductType(), cmd.LooseQuantity(), now,
	)
	if err != nil {
		return nil, nil, err
	}
	return record, movement, nil
}

// packBagged bags product straight off the mill into a godown.
func (h *SubmitPackagingCommandHandler) packBagged(
	ctx context.Context, uow PackagingUoW, cmd SubmitPackagingCommand, now time.Time,
) (*packaging.Record, *packaging.StorageTransfer, error) {
	record, err := packaging.NewBaggedRecord(
		cmd.RecordID(), cmd.GrindingJobID(), cmd.OrderID(),
		cmd.ProductType(), *cmd.GodownID(), nil,
		cmd.BagSizeKg(), cmd.NumberOfBags(), now,
	)
	if err != nil {
		return nil, nil, err
	}

	godownRepo := uow.GodownRepository()
	godown, err := godownRepo.Get(ctx, *cmd.GodownID())
	if err != nil {
		return nil, nil, err
	}
	if err = godown.Deposit(record.TotalTonsPacked()); err != nil {
		return nil, nil, err
	}
	if err = godownRepo.Update(ctx, godown); err != nil {
		return nil, nil, err
	}

	movement, err := packaging.NewStorageTransfer(
		kernel.NewUUID(),
		packaging.LocationGrinding, nil,
		packaging.LocationGodown, *cmd.GodownID(),
		cmd.ProductType(), record.TotalTonsPacked(), now,
	)
	if err != nil {
		return nil, nil, err
	}
	return record, movement, nil
}

// packFromShallow draws loose product back out of a shallow and bags it into
// a godown.
func (h *SubmitPackagingCommandHandler) packFromShallow(
	ctx context.Context, uow PackagingUoW, cmd SubmitPackagingCommand, now time.Time,
) (*packaging.Record, *packaging.StorageTransfer, error) {
	record, err := packaging.NewBaggedRecord(
		cmd.RecordID(), cmd.GrindingJobID(), cmd.OrderID(),
		cmd.ProductType(), *cmd.GodownID(), cmd.ShallowID(),
		cmd.BagSizeKg(), cmd.NumberOfBags(), now,
	)
	if err != nil {
		return nil, nil, err
	}

	shallowRepo := uow.ShallowRepository()
	shallow, err := shallowRepo.Get(ctx, *cmd.ShallowID())
	if err != nil {
		return nil, nil, err
	}
	if err = shallow.Withdraw(record.TotalTonsPacked()); err != nil {
		return nil, nil, err
	}
	if err = shallowRepo.Update(ctx, shallow); err != nil {
		return nil, nil, err
	}

	godownRepo := uow.GodownRepository()
	godown, err := godownRepo.Get(ctx, *cmd.GodownID())
	if err != nil {
		return nil, nil, err
	}
	if err = godown.Deposit(record.TotalTonsPacked()); err != nil {
		return nil, nil, err
	}
	if err = godownRepo.Update(ctx, godown); err != nil {
		return nil, nil, err
	}

	shallowID := *cmd.ShallowID()
	movement, err := packaging.NewStorageTransfer(
		kernel.NewUUID(),
		packaging.LocationShallow, &shallowID,
		packaging.LocationGodown, *cmd.GodownID(),
		cmd.ProductType(), record.TotalTonsPacked(), now,
	)
	if err != nil {
		return nil, nil, err
	}
	return record, movement, nil
}
