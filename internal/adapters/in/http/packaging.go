package http

import (
	"github.com/labstack/echo/v4"

	"flourmill/internal/core/application/usecases/commands"
	"flourmill/internal/core/domain/model/kernel"
)

type submitPackagingRequest struct {
	OrderID       string  `json:"order_id"`
	GrindingJobID string  `json:"grinding_job_id"`
	ProductType   string  `json:"product_type"`
	ShallowID     *string `json:"shallow_id"`
	GodownID      *string `json:"godown_id"`
	LooseQuantity float64 `json:"loose_quantity"`
	BagSizeKg     float64 `json:"bag_size_kg"`
	NumberOfBags  int     `json:"number_of_bags"`
}

// SubmitPackaging records a packaging run for a completed grinding job:
// bagged output goes to a godown, loose maida to a shallow.
func (s *Server) SubmitPackaging(ctx echo.Context) error {
	var req submitPackagingRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	grindingJobID, err := kernel.UUIDFromString(req.GrindingJobID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	shallowID, err := optionalID(req.ShallowID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	godownID, err := optionalID(req.GodownID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewSubmitPackagingCommand(
		kernel.NewUUID(), orderID, grindingJobID,
		req.ProductType, shallowID, godownID,
		req.LooseQuantity, req.BagSizeKg, req.NumberOfBags)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.submitPackagingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return respondCreated(ctx, nil)
}

func optionalID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
