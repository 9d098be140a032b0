package http

import (
	"github.com/labstack/echo/v4"

	"flourmill/internal/core/application/usecases/commands"
	"flourmill/internal/core/application/usecases/queries"
	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/kernel"
)

type startGrindingRequest struct {
	OrderID      string   `json:"order_id"`
	SourceBinIDs []string `json:"source_bin_ids"`
}

// StartGrinding starts a grinding run fed from the given 12HR bins.
func (s *Server) StartGrinding(ctx echo.Context) error {
	var req startGrindingRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	binIDs := make([]kernel.UUID, 0, len(req.SourceBinIDs))
	for _, raw := range req.SourceBinIDs {
		binID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		binIDs = append(binIDs, binID)
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewStartGrindingCommand(jobID, orderID, binIDs)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.startGrindingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, map[string]string{"job_id": jobID.String()})
}

type stopGrindingRequest struct {
	JobID   string `json:"job_id"`
	OrderID string `json:"order_id"`
}

func (s *Server) StopGrinding(ctx echo.Context) error {
	var req stopGrindingRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	jobID, err := kernel.UUIDFromString(req.JobID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewStopGrindingCommand(jobID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.stopGrindingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, nil)
}

type submitHourlyReportRequest struct {
	JobID        string  `json:"job_id"`
	ReportNumber int     `json:"report_number"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	MaidaTons    float64 `json:"maida_tons"`
	SujiTons     float64 `json:"suji_tons"`
	ChakkiAta    float64 `json:"chakki_ata_tons"`
	TandooriTons float64 `json:"tandoori_tons"`
	BranTons     float64 `json:"bran_tons"`
}

// SubmitHourlyReport records one hour's production figures for a running
// grinding job.
func (s *Server) SubmitHourlyReport(ctx echo.Context) error {
	var req submitHourlyReportRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	jobID, err := kernel.UUIDFromString(req.JobID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	tons := grinding.ProductTons{
		Maida:     req.MaidaTons,
		Suji:      req.SujiTons,
		ChakkiAta: req.ChakkiAta,
		Tandoori:  req.TandooriTons,
		Bran:      req.BranTons,
	}
	cmd, err := commands.NewSubmitHourlyReportCommand(
		kernel.NewUUID(), jobID, req.ReportNumber, req.StartTime, req.EndTime, tons)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.submitHourlyReportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, nil)
}

type submitLabTestRequest struct {
	JobID       string  `json:"job_id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	ProductType string  `json:"product_type"`
	Moisture    float64 `json:"moisture"`
}

func (s *Server) SubmitLabTest(ctx echo.Context) error {
	var req submitLabTestRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	jobID, err := kernel.UUIDFromString(req.JobID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewSubmitLabTestCommand(
		kernel.NewUUID(), jobID, req.StartTime, req.EndTime, req.ProductType, req.Moisture)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.submitLabTestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, nil)
}

// GetGrindingSummary aggregates every hourly report and lab test of a job.
func (s *Server) GetGrindingSummary(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("job_id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	query, err := queries.NewGetGrindingSummaryQuery(jobID)
	if err != nil {
		return respondError(ctx, err)
	}
	summary, err := s.getGrindingSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, summary)
}
