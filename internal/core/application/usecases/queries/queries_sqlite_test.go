package queries_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"flourmill/internal/adapters/out/postgres"
	"flourmill/internal/core/application/usecases/queries"
	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/order"
	"flourmill/internal/core/domain/model/plan"
	"flourmill/internal/core/ports"
	"flourmill/internal/pkg/errs"
)

type queryFixture struct {
	t          *testing.T
	db         *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "mill.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	return &queryFixture{t: t, db: db, uowFactory: postgres.NewGormUnitOfWorkFactory(db)}
}

// inTx runs the given writes inside a committed unit of work.
func (f *queryFixture) inTx(write func(uow ports.UnitOfWork) error) {
	f.t.Helper()
	ctx := f.t.Context()

	uow := f.uowFactory.Create()
	require.NoError(f.t, uow.Begin(ctx))
	require.NoError(f.t, write(uow))
	require.NoError(f.t, uow.Commit(ctx))
}

func (f *queryFixture) addOrder(number string, quantity float64) kernel.UUID {
	f.t.Helper()

	aggregate, err := order.NewOrder(kernel.NewUUID(), number, "Wheat Flour", quantity, time.Now())
	require.NoError(f.t, err)
	f.inTx(func(uow ports.UnitOfWork) error {
		return uow.OrderRepository().Add(f.t.Context(), aggregate)
	})
	return aggregate.ID()
}

func (f *queryFixture) addBin(name string, binType inventory.BinType, capacity float64) kernel.UUID {
	f.t.Helper()

	bin, err := inventory.NewBin(kernel.NewUUID(), name, binType, capacity, "T-01")
	require.NoError(f.t, err)
	f.inTx(func(uow ports.UnitOfWork) error {
		return uow.BinRepository().Add(f.t.Context(), bin)
	})
	return bin.ID()
}

func TestGetTimeline_OrderWithoutProgressHasEmptyPhases(t *testing.T) {
	f := newQueryFixture(t)

	orderID := f.addOrder("WF-2026-001", 100)

	handler := queries.NewGetTimelineQueryHandler(f.db)
	query, err := queries.NewGetTimelineQuery(orderID)
	require.NoError(t, err)

	timeline, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	assert.Equal(t, "WF-2026-001", timeline.Order.OrderNumber)
	assert.Equal(t, "CREATED", timeline.Order.ProductionStage)
	assert.Nil(t, timeline.Plan)
	assert.Empty(t, timeline.DestinationTransfers)
	assert.Nil(t, timeline.SequentialJob)
	assert.Nil(t, timeline.Grinding)
	assert.Empty(t, timeline.Packaging)
}

func TestGetTimeline_UnknownOrderReturnsNotFound(t *testing.T) {
	f := newQueryFixture(t)

	handler := queries.NewGetTimelineQueryHandler(f.db)
	query, err := queries.NewGetTimelineQuery(kernel.NewUUID())
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetTimeline_RepeatedReadsReturnTheSameResult(t *testing.T) {
	f := newQueryFixture(t)
	ctx := t.Context()

	orderID := f.addOrder("WF-2026-002", 100)
	sourceBinID := f.addBin("Pre-Clean Bin 1", inventory.PreClean, 500)
	destBinID := f.addBin("24HR Bin 1", inventory.TwentyFourHour, 300)

	blend, err := plan.NewBlendComponent(sourceBinID, 100)
	require.NoError(t, err)
	distribution, err := plan.NewDistribution(destBinID, 100)
	require.NoError(t, err)
	productionPlan, err := plan.NewProductionPlan(
		kernel.NewUUID(), orderID, "single bin plan",
		[]plan.BlendComponent{blend}, []plan.Distribution{distribution},
		100, time.Now(),
	)
	require.NoError(t, err)
	f.inTx(func(uow ports.UnitOfWork) error {
		return uow.PlanRepository().Add(ctx, productionPlan)
	})

	handler := queries.NewGetTimelineQueryHandler(f.db)
	query, err := queries.NewGetTimelineQuery(orderID)
	require.NoError(t, err)

	first, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	second, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NotNil(t, first.Plan)
	assert.Len(t, first.Plan.SourceBlend, 1)
	assert.Len(t, first.Plan.Distribution, 1)
}

func TestGetGrindingSummary_AggregatesReports(t *testing.T) {
	f := newQueryFixture(t)
	ctx := t.Context()

	orderID := f.addOrder("WF-2026-003", 100)
	jobID := kernel.NewUUID()

	job, err := grinding.NewJob(jobID, orderID, []kernel.UUID{kernel.NewUUID()}, time.Now())
	require.NoError(t, err)

	report1, err := grinding.NewHourlyReport(
		kernel.NewUUID(), jobID, 1, "08:00", "09:00",
		grinding.ProductTons{Maida: 4, Suji: 2, ChakkiAta: 1, Tandoori: 1, Bran: 2},
		time.Now(),
	)
	require.NoError(t, err)
	report2, err := grinding.NewHourlyReport(
		kernel.NewUUID(), jobID, 2, "09:00", "10:00",
		grinding.ProductTons{Maida: 6, Suji: 2, ChakkiAta: 1, Tandoori: 1, Bran: 2},
		time.Now(),
	)
	require.NoError(t, err)
	labTest, err := grinding.NewLabTest(
		kernel.NewUUID(), jobID, "08:30", "08:45", "Maida", 13.5, time.Now())
	require.NoError(t, err)

	f.inTx(func(uow ports.UnitOfWork) error {
		repo := uow.GrindingRepository()
		if err := repo.AddJob(ctx, job); err != nil {
			return err
		}
		if err := repo.AddReport(ctx, report1); err != nil {
			return err
		}
		if err := repo.AddReport(ctx, report2); err != nil {
			return err
		}
		return repo.AddLabTest(ctx, labTest)
	})

	handler := queries.NewGetGrindingSummaryQueryHandler(f.db)
	query, err := queries.NewGetGrindingSummaryQuery(jobID)
	require.NoError(t, err)

	summary, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Summary.ReportCount)
	assert.InDelta(t, 10, summary.Summary.Tons.Maida, 0.001)
	assert.InDelta(t, 4, summary.Summary.Tons.Suji, 0.001)
	assert.Len(t, summary.Reports, 2)
	require.Len(t, summary.LabTests, 1)
	assert.InDelta(t, 13.5, summary.LabTests[0].Moisture, 0.001)
}

func TestGetGrindingSummary_UnknownJobReturnsNotFound(t *testing.T) {
	f := newQueryFixture(t)

	handler := queries.NewGetGrindingSummaryQueryHandler(f.db)
	query, err := queries.NewGetGrindingSummaryQuery(kernel.NewUUID())
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
