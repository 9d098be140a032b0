package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"flourmill/internal/adapters/out/postgres/orderrepo"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/order"
	"flourmill/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("WF-2026-001")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	id := kernel.NewUUID()
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	original, err := order.NewOrder(id, "WF-2026-007", "Wheat Flour", 120, createdAt)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrieved.ID())
	suite.Equal("WF-2026-007", retrieved.OrderNumber())
	suite.Equal("Wheat Flour", retrieved.ProductType())
	suite.Equal(float64(120), retrieved.Quantity())
	suite.Equal(order.Created, retrieved.Stage())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StagePersists() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("WF-2026-002")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.MarkPlanned())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Planned, retrieved.Stage())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_NewestFirst() {
	ctx := context.Background()

	older := suite.createTestOrderAt("WF-2026-001", time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC))
	newer := suite.createTestOrderAt("WF-2026-002", time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC))

	suite.tracker.On("TrackAggregate", older.ID(), older).Once()
	suite.tracker.On("TrackAggregate", newer.ID(), newer).Once()

	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("WF-2026-002", orders[0].OrderNumber())
	suite.Equal("WF-2026-001", orders[1].OrderNumber())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestHighestSequence() {
	ctx := context.Background()

	for _, number := range []string{"WF-2026-001", "WF-2026-014", "MD-2026-099"} {
		o := suite.createTestOrder(number)
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	highest, err := suite.repository.HighestSequence(ctx, "WF-2026")
	suite.Require().NoError(err)
	suite.Equal(14, highest)

	highest, err = suite.repository.HighestSequence(ctx, "SJ-2026")
	suite.Require().NoError(err)
	suite.Zero(highest)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number string) *order.Order {
	return suite.createTestOrderAt(number, time.Now().UTC())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderAt(number string, createdAt time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), number, "Wheat Flour", 100, createdAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
