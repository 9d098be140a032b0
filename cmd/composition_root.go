package cmd

import (
	"gorm.io/gorm"

	"flourmill/internal/adapters/out/postgres"
	"flourmill/internal/core/application/usecases/commands"
	"flourmill/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePlanCommandHandler() commands.CreatePlanCommandHandler {
	var f commands.PlanUoWFactory = FuncPlanUoWFactory(func() commands.PlanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePlanCommandHandler(f)
}

func (c *CompositionRoot) CreateStartBlendedTransferCommandHandler() commands.StartBlendedTransferCommandHandler {
	return commands.NewStartBlendedTransferCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateStopBlendedTransferCommandHandler() commands.StopBlendedTransferCommandHandler {
	return commands.NewStopBlendedTransferCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateStartSequentialTransferCommandHandler() commands.StartSequentialTransferCommandHandler {
	return commands.NewStartSequentialTransferCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateStopSequentialTransferCommandHandler() commands.StopSequentialTransferCommandHandler {
	return commands.NewStopSequentialTransferCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateStartGrindingCommandHandler() commands.StartGrindingCommandHandler {
	return commands.NewStartGrindingCommandHandler(c.grindingUoWFactory())
}

func (c *CompositionRoot) CreateStopGrindingCommandHandler() commands.StopGrindingCommandHandler {
	return commands.NewStopGrindingCommandHandler(c.grindingUoWFactory())
}

func (c *CompositionRoot) CreateSubmitHourlyReportCommandHandler() commands.SubmitHourlyReportCommandHandler {
	return commands.NewSubmitHourlyReportCommandHandler(c.grindingUoWFactory())
}

func (c *CompositionRoot) CreateSubmitLabTestCommandHandler() commands.SubmitLabTestCommandHandler {
	return commands.NewSubmitLabTestCommandHandler(c.grindingUoWFactory())
}

func (c *CompositionRoot) CreateSubmitPackagingCommandHandler() commands.SubmitPackagingCommandHandler {
	var f commands.PackagingUoWFactory = FuncPackagingUoWFactory(func() commands.PackagingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPackagingCommandHandler(f)
}

func (c *CompositionRoot) CreateBinCommandHandler() commands.BinCommandHandler {
	var f commands.BinUoWFactory = FuncBinUoWFactory(func() commands.BinUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBinCommandHandler(f)
}

func (c *CompositionRoot) CreateStorageCommandHandler() commands.StorageCommandHandler {
	var f commands.StorageUoWFactory = FuncStorageUoWFactory(func() commands.StorageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStorageCommandHandler(f)
}

func (c *CompositionRoot) CreateProductCatalogCommandHandler() commands.ProductCatalogCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProductCatalogCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllBinsQueryHandler() queries.GetAllBinsQueryHandler {
	return queries.NewGetAllBinsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStorageLocationsQueryHandler() queries.GetStorageLocationsQueryHandler {
	return queries.NewGetStorageLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductCatalogQueryHandler() queries.GetProductCatalogQueryHandler {
	return queries.NewGetProductCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPlansQueryHandler() queries.GetPlansQueryHandler {
	return queries.NewGetPlansQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetGrindingSummaryQueryHandler() queries.GetGrindingSummaryQueryHandler {
	return queries.NewGetGrindingSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTimelineQueryHandler() queries.GetTimelineQueryHandler {
	return queries.NewGetTimelineQueryHandler(c.gormDB)
}

func (c *CompositionRoot) transferUoWFactory() commands.TransferUoWFactory {
	return FuncTransferUoWFactory(func() commands.TransferUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) grindingUoWFactory() commands.GrindingUoWFactory {
	return FuncGrindingUoWFactory(func() commands.GrindingUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlanUoWFactory func() commands.PlanUoW

func (f FuncPlanUoWFactory) Create() commands.PlanUoW {
	return f()
}

type FuncTransferUoWFactory func() commands.TransferUoW

func (f FuncTransferUoWFactory) Create() commands.TransferUoW {
	return f()
}

type FuncGrindingUoWFactory func() commands.GrindingUoW

func (f FuncGrindingUoWFactory) Create() commands.GrindingUoW {
	return f()
}

type FuncPackagingUoWFactory func() commands.PackagingUoW

func (f FuncPackagingUoWFactory) Create() commands.PackagingUoW {
	return f()
}

type FuncBinUoWFactory func() commands.BinUoW

func (f FuncBinUoWFactory) Create() commands.BinUoW {
	return f()
}

type FuncStorageUoWFactory func() commands.StorageUoW

func (f FuncStorageUoWFactory) Create() commands.StorageUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
