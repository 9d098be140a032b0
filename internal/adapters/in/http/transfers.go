package http

import (
	"github.com/labstack/echo/v4"

	"flourmill/internal/core/application/usecases/commands"
	"flourmill/internal/core/domain/model/kernel"
)

type blendedTransferRequest struct {
	OrderID          string `json:"order_id"`
	DestinationBinID string `json:"destination_bin_id"`
}

// StartBlendedTransfer starts the blended PRE_CLEAN to 24HR transfer into one
// destination bin, drawing from every source bin by its blend percentage.
func (s *Server) StartBlendedTransfer(ctx echo.Context) error {
	var req blendedTransferRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, destinationBinID, err := blendedTransferIDs(req)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	cmd, err := commands.NewStartBlendedTransferCommand(orderID, destinationBinID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.startBlendedTransferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, nil)
}

func (s *Server) StopBlendedTransfer(ctx echo.Context) error {
	var req blendedTransferRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, destinationBinID, err := blendedTransferIDs(req)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	cmd, err := commands.NewStopBlendedTransferCommand(orderID, destinationBinID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.stopBlendedTransferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, nil)
}

func blendedTransferIDs(req blendedTransferRequest) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	destinationBinID, err := kernel.UUIDFromString(req.DestinationBinID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return orderID, destinationBinID, nil
}

type startSequentialTransferRequest struct {
	OrderID          string   `json:"order_id"`
	SourceBinID      string   `json:"source_bin_id"`
	TransferQuantity *float64 `json:"transfer_quantity"`
}

// StartSequentialTransfer starts a 24HR to 12HR transfer out of one source
// bin. When transfer_quantity is omitted the whole source quantity moves.
func (s *Server) StartSequentialTransfer(ctx echo.Context) error {
	var req startSequentialTransferRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	sourceBinID, err := kernel.UUIDFromString(req.SourceBinID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewStartSequentialTransferCommand(jobID, orderID, sourceBinID, req.TransferQuantity)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.startSequentialTransferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, map[string]string{"job_id": jobID.String()})
}

type stopSequentialTransferRequest struct {
	JobID               string   `json:"job_id"`
	OrderID             string   `json:"order_id"`
	DestinationSequence []string `json:"destination_sequence"`
	OutgoingMoisture    *float64 `json:"outgoing_moisture"`
	WaterAdded          *float64 `json:"water_added"`
}

// StopSequentialTransfer completes a sequential transfer, filling the given
// destination bins in order until the transfer quantity is exhausted.
func (s *Server) StopSequentialTransfer(ctx echo.Context) error {
	var req stopSequentialTransferRequest
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
	sequence := make([]kernel.UUID, 0, len(req.DestinationSequence))
	for _, raw := range req.DestinationSequence {
		binID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		sequence = append(sequence, binID)
	}

	cmd, err := commands.NewStopSequentialTransferCommand(jobID, orderID, sequence, req.OutgoingMoisture, req.WaterAdded)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.stopSequentialTransferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondOK(ctx, nil)
}
