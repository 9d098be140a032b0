package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "flourmill/internal/adapters/out/postgres"
	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/order"
	"flourmill/internal/core/domain/model/transfer"
	"flourmill/internal/core/ports"
	"flourmill/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container, the database connection
// and the schema shared by all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, bins, destination_bin_transfers CASCADE").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.BinRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.BinRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Multiple begin calls are safe.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("WF-2026-001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrieved.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrieved.ID()))
}

// TestMultiRepositoryTransaction mirrors a blended-transfer stop: order stage
// and bin quantities must move in the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("WF-2026-002")
	sourceBin := suite.createTestBin("Pre-Clean Bin 1", inventory.PreClean, 500, 100)
	destBin := suite.createTestBin("24HR Bin 1", inventory.TwentyFourHour, 300, 0)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.BinRepository().Add(ctx, sourceBin))
	suite.Require().NoError(uow.BinRepository().Add(ctx, destBin))

	suite.Require().NoError(sourceBin.Draw(60))
	suite.Require().NoError(destBin.Deposit(60))
	suite.Require().NoError(uow.BinRepository().Update(ctx, sourceBin))
	suite.Require().NoError(uow.BinRepository().Update(ctx, destBin))

	suite.Require().NoError(testOrder.MarkPlanned())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedSource, err := newUow.BinRepository().Get(ctx, sourceBin.ID())
	suite.Require().NoError(err)
	suite.InDelta(40, retrievedSource.CurrentQuantity(), 0.001)

	retrievedDest, err := newUow.BinRepository().Get(ctx, destBin.ID())
	suite.Require().NoError(err)
	suite.InDelta(60, retrievedDest.CurrentQuantity(), 0.001)

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Planned, retrievedOrder.Stage())
}

// TestDuplicateDestinationTransferRejected verifies the unique index over
// (plan, destination bin): when two concurrent starts both see no existing
// row and insert, the second insert must fail instead of creating a
// duplicate transfer.
func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateDestinationTransferRejected() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	planID := kernel.NewUUID()
	binID := kernel.NewUUID()

	first, err := transfer.NewDestinationBinTransfer(kernel.NewUUID(), orderID, planID, binID, 60)
	suite.Require().NoError(err)
	suite.Require().NoError(first.Start(time.Now()))

	second, err := transfer.NewDestinationBinTransfer(kernel.NewUUID(), orderID, planID, binID, 60)
	suite.Require().NoError(err)
	suite.Require().NoError(second.Start(time.Now()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TransferRepository().AddDestinationTransfer(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.TransferRepository().AddDestinationTransfer(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrInvalidStateTransition)
	suite.Require().NoError(uow.Rollback(ctx))

	transfers, err := suite.factory.Create().TransferRepository().GetDestinationTransfersByPlan(ctx, planID)
	suite.Require().NoError(err)
	suite.Len(transfers, 1)
	suite.True(first.ID().IsEqual(transfers[0].ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("WF-2026-003")
	testBin := suite.createTestBin("12HR Bin 301", inventory.TwelveHour, 25, 0)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.BinRepository().Add(ctx, testBin))

	// Visible within the transaction.
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	_, err = uow.BinRepository().Get(ctx, testBin.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Gone after rollback.
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = newUow.BinRepository().Get(ctx, testBin.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(number string) *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), number, "Wheat Flour", 100, time.Now())
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestBin(
	name string, binType inventory.BinType, capacity, stock float64,
) *inventory.Bin {
	bin, err := inventory.NewBin(kernel.NewUUID(), name, binType, capacity, "T-01")
	suite.Require().NoError(err)
	if stock > 0 {
		suite.Require().NoError(bin.Deposit(stock))
	}
	return bin
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
