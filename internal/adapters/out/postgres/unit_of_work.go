// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work spans every repository the mill exposes, so a
// multi-bin mutation (a blended stop, a sequential walk, a packaging
// submission) either commits as a whole or rolls back as a whole.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create() call returns a fresh instance; concurrent operations must
// not share one.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"flourmill/internal/adapters/out/postgres/grindingrepo"
	"flourmill/internal/adapters/out/postgres/inventoryrepo"
	"flourmill/internal/adapters/out/postgres/orderrepo"
	"flourmill/internal/adapters/out/postgres/packagingrepo"
	"flourmill/internal/adapters/out/postgres/planrepo"
	"flourmill/internal/adapters/out/postgres/productrepo"
	"flourmill/internal/adapters/out/postgres/transferrepo"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by one GORM
// database connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across all mill
// repositories and tracks the aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and do not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction, or the base connection when no
// transaction is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an OrderRepository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// BinRepository returns a BinRepository bound to the current transaction.
func (uow *GormUnitOfWork) BinRepository() ports.BinRepository {
	return inventoryrepo.NewGormBinRepository(uow.conn(), uow)
}

// ShallowRepository returns a ShallowRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) ShallowRepository() ports.ShallowRepository {
	return inventoryrepo.NewGormShallowRepository(uow.conn(), uow)
}

// GodownRepository returns a GodownRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) GodownRepository() ports.GodownRepository {
	return inventoryrepo.NewGormGodownRepository(uow.conn(), uow)
}

// PlanRepository returns a PlanRepository bound to the current transaction.
func (uow *GormUnitOfWork) PlanRepository() ports.PlanRepository {
	return planrepo.NewGormPlanRepository(uow.conn(), uow)
}

// TransferRepository returns a TransferRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) TransferRepository() ports.TransferRepository {
	return transferrepo.NewGormTransferRepository(uow.conn(), uow)
}

// GrindingRepository returns a GrindingRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) GrindingRepository() ports.GrindingRepository {
	return grindingrepo.NewGormGrindingRepository(uow.conn(), uow)
}

// PackagingRepository returns a PackagingRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) PackagingRepository() ports.PackagingRepository {
	return packagingrepo.NewGormPackagingRepository(uow.conn(), uow)
}

// ProductRepository returns a ProductRepository bound to the current
// transaction.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
