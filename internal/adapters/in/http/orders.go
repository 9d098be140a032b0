package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"flourmill/internal/core/application/usecases/commands"
	"flourmill/internal/core/application/usecases/queries"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

type createOrderRequest struct {
	ProductType string  `json:"product_type"`
	Quantity    float64 `json:"quantity"`
}

// CreateOrder registers a new production order and assigns it the next
// order number for its product type.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.ProductType, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	created, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, created)
}

func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, orders)
}

func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	order, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, order)
}

// GetTimeline returns the full workflow history of an order: plan, transfers,
// grinding and packaging, with phases not yet reached left empty.
func (s *Server) GetTimeline(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	query, err := queries.NewGetTimelineQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	timeline, err := s.getTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, timeline)
}

// DownloadGrindingReport streams the grinding shift report of the order's
// latest grinding job as an xlsx workbook.
func (s *Server) DownloadGrindingReport(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	timelineQuery, err := queries.NewGetTimelineQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	timeline, err := s.getTimelineHandler.Handle(ctx.Request().Context(), timelineQuery)
	if err != nil {
		return respondError(ctx, err)
	}
	if timeline.Grinding == nil {
		return respondError(ctx, errs.NewObjectNotFoundError("grinding job for order", orderID.String()))
	}

	summaryQuery, err := queries.NewGetGrindingSummaryQuery(timeline.Grinding.ID)
	if err != nil {
		return respondError(ctx, err)
	}
	summary, err := s.getGrindingSummaryHandler.Handle(ctx.Request().Context(), summaryQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", s.reportWriter.Filename(timeline.Order)))
	ctx.Response().WriteHeader(http.StatusOK)
	return s.reportWriter.Write(ctx.Response(), timeline.Order, summary)
}
