package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Multi-bin
// mutations (blended stop, sequential stop, packaging) must run inside one
// unit so a mid-sequence failure rolls every bin back together.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// BinRepository returns a BinRepository bound to the current
	// transaction.
	BinRepository() BinRepository

	// ShallowRepository returns a ShallowRepository bound to the current
	// transaction.
	ShallowRepository() ShallowRepository

	// GodownRepository returns a GodownRepository bound to the current
	// transaction.
	GodownRepository() GodownRepository

	// PlanRepository returns a PlanRepository bound to the current
	// transaction.
	PlanRepository() PlanRepository

	// TransferRepository returns a TransferRepository bound to the
	// current transaction.
	TransferRepository() TransferRepository

	// GrindingRepository returns a GrindingRepository bound to the
	// current transaction.
	GrindingRepository() GrindingRepository

	// PackagingRepository returns a PackagingRepository bound to the
	// current transaction.
	PackagingRepository() PackagingRepository

	// ProductRepository returns a ProductRepository bound to the current
	// transaction.
	ProductRepository() ProductRepository
}
