package commands_test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"flourmill/internal/adapters/out/postgres"
	"flourmill/internal/core/application/usecases/commands"
	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/order"
	"flourmill/internal/core/domain/model/product"
	"flourmill/internal/core/domain/model/transfer"
	"flourmill/internal/pkg/errs"
)

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW { return f() }

type planUoWFactoryFunc func() commands.PlanUoW

func (f planUoWFactoryFunc) Create() commands.PlanUoW { return f() }

type transferUoWFactoryFunc func() commands.TransferUoW

func (f transferUoWFactoryFunc) Create() commands.TransferUoW { return f() }

// millFixture runs the command handlers against a real SQLite database so the
// workflow tests exercise the same repositories and unit of work as
// production.
type millFixture struct {
	t          *testing.T
	uowFactory *postgres.GormUnitOfWorkFactory

	createOrder     commands.CreateOrderCommandHandler
	createPlan      commands.CreatePlanCommandHandler
	startBlended    commands.StartBlendedTransferCommandHandler
	stopBlended     commands.StopBlendedTransferCommandHandler
	startSequential commands.StartSequentialTransferCommandHandler
	stopSequential  commands.StopSequentialTransferCommandHandler
}

func newMillFixture(t *testing.T) *millFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "mill.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	uowFactory := postgres.NewGormUnitOfWorkFactory(db)
	f := &millFixture{t: t, uowFactory: uowFactory}

	f.createOrder = commands.NewCreateOrderCommandHandler(
		orderUoWFactoryFunc(func() commands.OrderUoW { return uowFactory.Create() }))
	f.createPlan = commands.NewCreatePlanCommandHandler(
		planUoWFactoryFunc(func() commands.PlanUoW { return uowFactory.Create() }))

	transfers := transferUoWFactoryFunc(func() commands.TransferUoW { return uowFactory.Create() })
	f.startBlended = commands.NewStartBlendedTransferCommandHandler(transfers)
	f.stopBlended = commands.NewStopBlendedTransferCommandHandler(transfers)
	f.startSequential = commands.NewStartSequentialTransferCommandHandler(transfers)
	f.stopSequential = commands.NewStopSequentialTransferCommandHandler(transfers)

	f.seedFinishedGood("Wheat Flour", "WF")
	return f
}

func (f *millFixture) seedFinishedGood(name, initial string) {
	f.t.Helper()
	ctx := f.t.Context()

	uow := f.uowFactory.Create()
	require.NoError(f.t, uow.Begin(ctx))
	good, err := product.NewFinishedGood(kernel.NewUUID(), name, initial)
	require.NoError(f.t, err)
	require.NoError(f.t, uow.ProductRepository().AddFinishedGood(ctx, good))
	require.NoError(f.t, uow.Commit(ctx))
}

func (f *millFixture) addBin(binType inventory.BinType, capacity, stock float64) kernel.UUID {
	f.t.Helper()
	ctx := f.t.Context()

	bin, err := inventory.NewBin(kernel.NewUUID(), binType.String()+" test bin", binType, capacity, "T-01")
	require.NoError(f.t, err)
	if stock > 0 {
		require.NoError(f.t, bin.Deposit(stock))
	}

	uow := f.uowFactory.Create()
	require.NoError(f.t, uow.Begin(ctx))
	require.NoError(f.t, uow.BinRepository().Add(ctx, bin))
	require.NoError(f.t, uow.Commit(ctx))
	return bin.ID()
}

func (f *millFixture) newOrder(quantity float64) kernel.UUID {
	f.t.Helper()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, "Wheat Flour", quantity)
	require.NoError(f.t, err)
	require.NoError(f.t, f.createOrder.Handle(f.t.Context(), cmd))
	return orderID
}

func (f *millFixture) submitPlan(orderID kernel.UUID, blend []commands.BlendInput, distribution []commands.DistributionInput) {
	f.t.Helper()

	cmd, err := commands.NewCreatePlanCommand(kernel.NewUUID(), orderID, "test plan", blend, distribution)
	require.NoError(f.t, err)
	require.NoError(f.t, f.createPlan.Handle(f.t.Context(), cmd))
}

// advanceToBlendedDone walks the order through the stages preceding the
// sequential transfer without moving any inventory.
func (f *millFixture) advanceToBlendedDone(orderID kernel.UUID) {
	f.t.Helper()
	ctx := f.t.Context()

	uow := f.uowFactory.Create()
	require.NoError(f.t, uow.Begin(ctx))
	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	require.NoError(f.t, err)
	require.NoError(f.t, aggregate.MarkPlanned())
	require.NoError(f.t, aggregate.BeginBlendedTransfer())
	require.NoError(f.t, aggregate.CompleteBlendedTransfer())
	require.NoError(f.t, uow.OrderRepository().Update(ctx, aggregate))
	require.NoError(f.t, uow.Commit(ctx))
}

func (f *millFixture) binQuantity(binID kernel.UUID) float64 {
	f.t.Helper()

	bin, err := f.uowFactory.Create().BinRepository().Get(f.t.Context(), binID)
	require.NoError(f.t, err)
	return bin.CurrentQuantity()
}

func (f *millFixture) orderStage(orderID kernel.UUID) order.Stage {
	f.t.Helper()

	aggregate, err := f.uowFactory.Create().OrderRepository().Get(f.t.Context(), orderID)
	require.NoError(f.t, err)
	return aggregate.Stage()
}

func TestBlendedTransfer_DistributesBlendAcrossDestinations(t *testing.T) {
	f := newMillFixture(t)
	ctx := t.Context()

	source1 := f.addBin(inventory.PreClean, 500, 200)
	source2 := f.addBin(inventory.PreClean, 500, 200)
	dest1 := f.addBin(inventory.TwentyFourHour, 300, 0)
	dest2 := f.addBin(inventory.TwentyFourHour, 300, 0)

	orderID := f.newOrder(100)
	f.submitPlan(orderID,
		[]commands.BlendInput{{BinID: source1, Percentage: 50}, {BinID: source2, Percentage: 50}},
		[]commands.DistributionInput{{BinID: dest1, Quantity: 60}, {BinID: dest2, Quantity: 40}},
	)

	for _, dest := range []kernel.UUID{dest1, dest2} {
		startCmd, err := commands.NewStartBlendedTransferCommand(orderID, dest)
		require.NoError(t, err)
		require.NoError(t, f.startBlended.Handle(ctx, startCmd))

		stopCmd, err := commands.NewStopBlendedTransferCommand(orderID, dest)
		require.NoError(t, err)
		require.NoError(t, f.stopBlended.Handle(ctx, stopCmd))
	}

	// Each source contributes its percentage of both targets: 50% of 100t.
	assert.InDelta(t, 150, f.binQuantity(source1), 0.001)
	assert.InDelta(t, 150, f.binQuantity(source2), 0.001)
	assert.InDelta(t, 60, f.binQuantity(dest1), 0.001)
	assert.InDelta(t, 40, f.binQuantity(dest2), 0.001)
	assert.Equal(t, order.TransferPreTo24Completed, f.orderStage(orderID))
}

func TestBlendedTransfer_SourceCanGoNegative(t *testing.T) {
	f := newMillFixture(t)
	ctx := t.Context()

	// The blended stop draws each source's share of the plan without
	// checking remaining stock, so an under-filled source ends up negative.
	source := f.addBin(inventory.PreClean, 500, 30)
	dest := f.addBin(inventory.TwentyFourHour, 300, 0)

	orderID := f.newOrder(100)
	f.submitPlan(orderID,
		[]commands.BlendInput{{BinID: source, Percentage: 100}},
		[]commands.DistributionInput{{BinID: dest, Quantity: 100}},
	)

	startCmd, err := commands.NewStartBlendedTransferCommand(orderID, dest)
	require.NoError(t, err)
	require.NoError(t, f.startBlended.Handle(ctx, startCmd))

	stopCmd, err := commands.NewStopBlendedTransferCommand(orderID, dest)
	require.NoError(t, err)
	require.NoError(t, f.stopBlended.Handle(ctx, stopCmd))

	assert.InDelta(t, -70, f.binQuantity(source), 0.001)
	assert.InDelta(t, 100, f.binQuantity(dest), 0.001)
	assert.Equal(t, order.TransferPreTo24Completed, f.orderStage(orderID))
}

func TestBlendedTransfer_SecondStartForSameBinFails(t *testing.T) {
	f := newMillFixture(t)
	ctx := t.Context()

	source := f.addBin(inventory.PreClean, 500, 200)
	dest := f.addBin(inventory.TwentyFourHour, 300, 0)

	orderID := f.newOrder(100)
	f.submitPlan(orderID,
		[]commands.BlendInput{{BinID: source, Percentage: 100}},
		[]commands.DistributionInput{{BinID: dest, Quantity: 100}},
	)

	cmd, err := commands.NewStartBlendedTransferCommand(orderID, dest)
	require.NoError(t, err)
	require.NoError(t, f.startBlended.Handle(ctx, cmd))

	err = f.startBlended.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
}

func TestBlendedTransfer_UnlistedDestinationBinRejected(t *testing.T) {
	f := newMillFixture(t)

	source := f.addBin(inventory.PreClean, 500, 200)
	dest := f.addBin(inventory.TwentyFourHour, 300, 0)
	unlisted := f.addBin(inventory.TwentyFourHour, 300, 0)

	orderID := f.newOrder(100)
	f.submitPlan(orderID,
		[]commands.BlendInput{{BinID: source, Percentage: 100}},
		[]commands.DistributionInput{{BinID: dest, Quantity: 100}},
	)

	cmd, err := commands.NewStartBlendedTransferCommand(orderID, unlisted)
	require.NoError(t, err)

	err = f.startBlended.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.InDelta(t, 0, f.binQuantity(unlisted), 0.001)
}

func TestSequentialTransfer_FillsDestinationsInOrder(t *testing.T) {
	f := newMillFixture(t)
	ctx := t.Context()

	source := f.addBin(inventory.TwentyFourHour, 300, 50)
	dest1 := f.addBin(inventory.TwelveHour, 25, 0)
	dest2 := f.addBin(inventory.TwelveHour, 25, 0)

	orderID := f.newOrder(50)
	f.advanceToBlendedDone(orderID)

	jobID := kernel.NewUUID()
	startCmd, err := commands.NewStartSequentialTransferCommand(jobID, orderID, source, nil)
	require.NoError(t, err)
	require.NoError(t, f.startSequential.Handle(ctx, startCmd))

	stopCmd, err := commands.NewStopSequentialTransferCommand(
		jobID, orderID, []kernel.UUID{dest1, dest2}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, f.stopSequential.Handle(ctx, stopCmd))

	assert.InDelta(t, 0, f.binQuantity(source), 0.001)
	assert.InDelta(t, 25, f.binQuantity(dest1), 0.001)
	assert.InDelta(t, 25, f.binQuantity(dest2), 0.001)
	assert.Equal(t, order.Transfer24To12Completed, f.orderStage(orderID))

	job, err := f.uowFactory.Create().TransferRepository().GetSequentialJob(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, transfer.Completed, job.Status())
	assert.InDelta(t, 50, job.TotalTransferred(), 0.001)
}

func TestSequentialTransfer_ShortfallStillCompletes(t *testing.T) {
	f := newMillFixture(t)
	ctx := t.Context()

	source := f.addBin(inventory.TwentyFourHour, 300, 50)
	dest := f.addBin(inventory.TwelveHour, 30, 0)

	orderID := f.newOrder(50)
	f.advanceToBlendedDone(orderID)

	jobID := kernel.NewUUID()
	startCmd, err := commands.NewStartSequentialTransferCommand(jobID, orderID, source, nil)
	require.NoError(t, err)
	require.NoError(t, f.startSequential.Handle(ctx, startCmd))

	stopCmd, err := commands.NewStopSequentialTransferCommand(jobID, orderID, []kernel.UUID{dest}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, f.stopSequential.Handle(ctx, stopCmd))

	// Only what fit left the source; the rest of the requested 50t is
	// dropped and the order still advances.
	assert.InDelta(t, 20, f.binQuantity(source), 0.001)
	assert.InDelta(t, 30, f.binQuantity(dest), 0.001)
	assert.Equal(t, order.Transfer24To12Completed, f.orderStage(orderID))

	job, err := f.uowFactory.Create().TransferRepository().GetSequentialJob(ctx, jobID)
	require.NoError(t, err)
	assert.InDelta(t, 30, job.TotalTransferred(), 0.001)
}

func TestSequentialTransfer_QuantityAboveStockRejectedBeforeMutation(t *testing.T) {
	f := newMillFixture(t)

	source := f.addBin(inventory.TwentyFourHour, 300, 40)

	orderID := f.newOrder(50)
	f.advanceToBlendedDone(orderID)

	quantity := 50.0
	cmd, err := commands.NewStartSequentialTransferCommand(kernel.NewUUID(), orderID, source, &quantity)
	require.NoError(t, err)

	err = f.startSequential.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.InDelta(t, 40, f.binQuantity(source), 0.001)
}

func TestCreatePlan_SecondPlanKeepsOrderPlanned(t *testing.T) {
	f := newMillFixture(t)

	source := f.addBin(inventory.PreClean, 500, 200)
	dest := f.addBin(inventory.TwentyFourHour, 300, 0)

	orderID := f.newOrder(100)
	blend := []commands.BlendInput{{BinID: source, Percentage: 100}}
	distribution := []commands.DistributionInput{{BinID: dest, Quantity: 100}}

	f.submitPlan(orderID, blend, distribution)
	require.Equal(t, order.Planned, f.orderStage(orderID))

	f.submitPlan(orderID, blend, distribution)
	assert.Equal(t, order.Planned, f.orderStage(orderID))
}

func TestCreateOrder_NumbersIncrementPerProduct(t *testing.T) {
	f := newMillFixture(t)
	ctx := t.Context()

	first := f.newOrder(100)
	second := f.newOrder(80)

	repo := f.uowFactory.Create().OrderRepository()
	a, err := repo.Get(ctx, first)
	require.NoError(t, err)
	b, err := repo.Get(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, 1, order.SequenceOf(a.OrderNumber()))
	assert.Equal(t, 2, order.SequenceOf(b.OrderNumber()))
	assert.Contains(t, a.OrderNumber(), "WF-")
}

func TestCreateOrder_UnknownProductTypeRejected(t *testing.T) {
	f := newMillFixture(t)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Unknown Product", 100)
	require.NoError(t, err)

	err = f.createOrder.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
