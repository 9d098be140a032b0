package commands

import (
	"context"

	"flourmill/internal/core/domain/model/product"
)

// ProductCatalogCommandHandler handles product catalog master-data changes.
type ProductCatalogCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewProductCatalogCommandHandler creates a handler for the product catalog.
func NewProductCatalogCommandHandler(uowFactory ProductUoWFactory) ProductCatalogCommandHandler {
	return ProductCatalogCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleCreateFinishedGood registers a new finished good.
func (h *ProductCatalogCommandHandler) HandleCreateFinishedGood(ctx context.Context, cmd CreateFinishedGoodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	finishedGood, err := product.NewFinishedGood(cmd.ProductID(), cmd.ProductName(), cmd.InitialName())
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

	if err = uow.ProductRepository().AddFinishedGood(ctx, finishedGood); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleDeleteFinishedGood removes a finished good from the catalog.
func (h *ProductCatalogCommandHandler) HandleDeleteFinishedGood(ctx context.Context, cmd DeleteProductCommand) error {
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

	if err := uow.ProductRepository().DeleteFinishedGood(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleCreateRawProduct registers a new raw product.
func (h *ProductCatalogCommandHandler) HandleCreateRawProduct(ctx context.Context, cmd CreateRawProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rawProduct, err := product.NewRawProduct(cmd.ProductID(), cmd.ProductName())
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

	if err = uow.ProductRepository().AddRawProduct(ctx, rawProduct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleDeleteRawProduct removes a raw product from the catalog.
func (h *ProductCatalogCommandHandler) HandleDeleteRawProduct(ctx context.Context, cmd DeleteProductCommand) error {
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

	if err := uow.ProductRepository().DeleteRawProduct(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
