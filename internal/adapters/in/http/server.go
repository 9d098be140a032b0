// Package http exposes the mill workflow over a JSON REST API. Every
// response uses the same success/error envelope; write endpoints accept JSON
// bodies, read endpoints take path parameters.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"flourmill/internal/adapters/out/excel"
	"flourmill/internal/core/application/usecases/commands"
	"flourmill/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler             commands.CreateOrderCommandHandler
	createPlanHandler              commands.CreatePlanCommandHandler
	startBlendedTransferHandler    commands.StartBlendedTransferCommandHandler
	stopBlendedTransferHandler     commands.StopBlendedTransferCommandHandler
	startSequentialTransferHandler commands.StartSequentialTransferCommandHandler
	stopSequentialTransferHandler  commands.StopSequentialTransferCommandHandler
	startGrindingHandler           commands.StartGrindingCommandHandler
	stopGrindingHandler            commands.StopGrindingCommandHandler
	submitHourlyReportHandler      commands.SubmitHourlyReportCommandHandler
	submitLabTestHandler           commands.SubmitLabTestCommandHandler
	submitPackagingHandler         commands.SubmitPackagingCommandHandler
	binHandler                     commands.BinCommandHandler
	storageHandler                 commands.StorageCommandHandler
	productCatalogHandler          commands.ProductCatalogCommandHandler

	// Query handlers
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	getAllBinsHandler          queries.GetAllBinsQueryHandler
	getStorageLocationsHandler queries.GetStorageLocationsQueryHandler
	getProductCatalogHandler   queries.GetProductCatalogQueryHandler
	getPlansHandler            queries.GetPlansQueryHandler
	getGrindingSummaryHandler  queries.GetGrindingSummaryQueryHandler
	getTimelineHandler         queries.GetTimelineQueryHandler

	reportWriter excel.GrindingReportWriter
}

// Handlers bundles everything the server needs; the composition root fills
// it in.
type Handlers struct {
	CreateOrder             commands.CreateOrderCommandHandler
	CreatePlan              commands.CreatePlanCommandHandler
	StartBlendedTransfer    commands.StartBlendedTransferCommandHandler
	StopBlendedTransfer     commands.StopBlendedTransferCommandHandler
	StartSequentialTransfer commands.StartSequentialTransferCommandHandler
	StopSequentialTransfer  commands.StopSequentialTransferCommandHandler
	StartGrinding           commands.StartGrindingCommandHandler
	StopGrinding            commands.StopGrindingCommandHandler
	SubmitHourlyReport      commands.SubmitHourlyReportCommandHandler
	SubmitLabTest           commands.SubmitLabTestCommandHandler
	SubmitPackaging         commands.SubmitPackagingCommandHandler
	Bins                    commands.BinCommandHandler
	Storage                 commands.StorageCommandHandler
	ProductCatalog          commands.ProductCatalogCommandHandler

	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetAllBins          queries.GetAllBinsQueryHandler
	GetStorageLocations queries.GetStorageLocationsQueryHandler
	GetProductCatalog   queries.GetProductCatalogQueryHandler
	GetPlans            queries.GetPlansQueryHandler
	GetGrindingSummary  queries.GetGrindingSummaryQueryHandler
	GetTimeline         queries.GetTimelineQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:             h.CreateOrder,
		createPlanHandler:              h.CreatePlan,
		startBlendedTransferHandler:    h.StartBlendedTransfer,
		stopBlendedTransferHandler:     h.StopBlendedTransfer,
		startSequentialTransferHandler: h.StartSequentialTransfer,
		stopSequentialTransferHandler:  h.StopSequentialTransfer,
		startGrindingHandler:           h.StartGrinding,
		stopGrindingHandler:            h.StopGrinding,
		submitHourlyReportHandler:      h.SubmitHourlyReport,
		submitLabTestHandler:           h.SubmitLabTest,
		submitPackagingHandler:         h.SubmitPackaging,
		binHandler:                     h.Bins,
		storageHandler:                 h.Storage,
		productCatalogHandler:          h.ProductCatalog,
		getAllOrdersHandler:            h.GetAllOrders,
		getOrderHandler:                h.GetOrder,
		getAllBinsHandler:              h.GetAllBins,
		getStorageLocationsHandler:     h.GetStorageLocations,
		getProductCatalogHandler:       h.GetProductCatalog,
		getPlansHandler:                h.GetPlans,
		getGrindingSummaryHandler:      h.GetGrindingSummary,
		getTimelineHandler:             h.GetTimeline,
		reportWriter:                   excel.NewGrindingReportWriter(),
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/timeline", s.GetTimeline)
	api.GET("/orders/:id/report.xlsx", s.DownloadGrindingReport)

	api.POST("/plans", s.CreatePlan)
	api.GET("/plans/:order_id", s.GetPlans)

	api.POST("/transfers/blended/start", s.StartBlendedTransfer)
	api.POST("/transfers/blended/stop", s.StopBlendedTransfer)
	api.POST("/transfers/sequential/start", s.StartSequentialTransfer)
	api.POST("/transfers/sequential/stop", s.StopSequentialTransfer)

	api.POST("/grinding/start", s.StartGrinding)
	api.POST("/grinding/stop", s.StopGrinding)
	api.POST("/grinding/reports", s.SubmitHourlyReport)
	api.POST("/grinding/lab-tests", s.SubmitLabTest)
	api.GET("/grinding/:job_id/summary", s.GetGrindingSummary)

	api.POST("/packaging", s.SubmitPackaging)

	api.GET("/bins", s.GetBins)
	api.POST("/bins", s.CreateBin)
	api.PUT("/bins/:id", s.UpdateBin)
	api.DELETE("/bins/:id", s.DeleteBin)

	api.GET("/storage", s.GetStorageLocations)
	api.POST("/shallows", s.CreateShallow)
	api.DELETE("/shallows/:id", s.DeleteShallow)
	api.POST("/godowns", s.CreateGodown)
	api.DELETE("/godowns/:id", s.DeleteGodown)

	api.GET("/products", s.GetProductCatalog)
	api.POST("/products/finished", s.CreateFinishedGood)
	api.DELETE("/products/finished/:id", s.DeleteFinishedGood)
	api.POST("/products/raw", s.CreateRawProduct)
	api.DELETE("/products/raw/:id", s.DeleteRawProduct)
}
