package http

import (
	"github.com/labstack/echo/v4"

	"flourmill/internal/core/application/usecases/commands"
	"flourmill/internal/core/application/usecases/queries"
	"flourmill/internal/core/domain/model/kernel"
)

type blendRowRequest struct {
	BinID      string  `json:"bin_id"`
	Percentage float64 `json:"percentage"`
}

type distributionRowRequest struct {
	BinID    string  `json:"bin_id"`
	Quantity float64 `json:"quantity"`
}

type createPlanRequest struct {
	OrderID      string                   `json:"order_id"`
	Description  string                   `json:"description"`
	SourceBlend  []blendRowRequest        `json:"source_blend"`
	Distribution []distributionRowRequest `json:"destination_distribution"`
}

// CreatePlan attaches a blending plan to an order.
func (s *Server) CreatePlan(ctx echo.Context) error {
	var req createPlanRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	blend := make([]commands.BlendInput, 0, len(req.SourceBlend))
	for _, row := range req.SourceBlend {
		binID, err := kernel.UUIDFromString(row.BinID)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		blend = append(blend, commands.BlendInput{BinID: binID, Percentage: row.Percentage})
	}

	distribution := make([]commands.DistributionInput, 0, len(req.Distribution))
	for _, row := range req.Distribution {
		binID, err := kernel.UUIDFromString(row.BinID)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		distribution = append(distribution, commands.DistributionInput{BinID: binID, Quantity: row.Quantity})
	}

	planID := kernel.NewUUID()
	cmd, err := commands.NewCreatePlanCommand(planID, orderID, req.Description, blend, distribution)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.createPlanHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, map[string]string{"id": planID.String()})
}

// GetPlans lists every plan ever submitted for an order, newest first.
func (s *Server) GetPlans(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	query, err := queries.NewGetPlansQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	plans, err := s.getPlansHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, plans)
}
