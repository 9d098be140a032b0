// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"flourmill/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler declares the narrowest composite it needs; the
// single gorm-backed unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BinRepoFactory provides access to the bin repository within a
	// transaction.
	BinRepoFactory interface {
		BinRepository() ports.BinRepository
	}

	// ShallowRepoFactory provides access to the shallow repository
	// within a transaction.
	ShallowRepoFactory interface {
		ShallowRepository() ports.ShallowRepository
	}

	// GodownRepoFactory provides access to the godown repository within
	// a transaction.
	GodownRepoFactory interface {
		GodownRepository() ports.GodownRepository
	}

	// PlanRepoFactory provides access to the plan repository within a
	// transaction.
	PlanRepoFactory interface {
		PlanRepository() ports.PlanRepository
	}

	// TransferRepoFactory provides access to the transfer repository
	// within a transaction.
	TransferRepoFactory interface {
		TransferRepository() ports.TransferRepository
	}

	// GrindingRepoFactory provides access to the grinding repository
	// within a transaction.
	GrindingRepoFactory interface {
		GrindingRepository() ports.GrindingRepository
	}

	// PackagingRepoFactory provides access to the packaging repository
	// within a transaction.
	PackagingRepoFactory interface {
		PackagingRepository() ports.PackagingRepository
	}

	// ProductRepoFactory provides access to the product catalog
	// repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for operations touching orders and
	// the product catalog (order creation resolves number prefixes).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlanUoW manages transactions for plan creation, which also
	// advances the owning order.
	PlanUoW interface {
		TxManager
		OrderRepoFactory
		PlanRepoFactory
	}

	// PlanUoWFactory creates new plan unit of work instances.
	PlanUoWFactory interface {
		Create() PlanUoW
	}

	// TransferUoW manages transactions for both transfer modes: they
	// read plans, mutate bins and transfers, and advance the order.
	TransferUoW interface {
		TxManager
		OrderRepoFactory
		PlanRepoFactory
		BinRepoFactory
		TransferRepoFactory
	}

	// TransferUoWFactory creates new transfer unit of work instances.
	TransferUoWFactory interface {
		Create() TransferUoW
	}

	// GrindingUoW manages transactions for grinding runs, reports and
	// lab tests.
	GrindingUoW interface {
		TxManager
		OrderRepoFactory
		GrindingRepoFactory
	}

	// GrindingUoWFactory creates new grinding unit of work instances.
	GrindingUoWFactory interface {
		Create() GrindingUoW
	}

	// PackagingUoW manages transactions for packaging, which touches
	// shallows, godowns, the audit trail and the order.
	PackagingUoW interface {
		TxManager
		OrderRepoFactory
		GrindingRepoFactory
		ShallowRepoFactory
		GodownRepoFactory
		PackagingRepoFactory
	}

	// PackagingUoWFactory creates new packaging unit of work instances.
	PackagingUoWFactory interface {
		Create() PackagingUoW
	}

	// BinUoW manages transactions for bin master data.
	BinUoW interface {
		TxManager
		BinRepoFactory
	}

	// BinUoWFactory creates new bin unit of work instances.
	BinUoWFactory interface {
		Create() BinUoW
	}

	// StorageUoW manages transactions for shallow and godown master
	// data.
	StorageUoW interface {
		TxManager
		ShallowRepoFactory
		GodownRepoFactory
	}

	// StorageUoWFactory creates new storage unit of work instances.
	StorageUoWFactory interface {
		Create() StorageUoW
	}

	// ProductUoW manages transactions for product catalog master data.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}
)
