package commands

import (
	"context"
	"time"

	"flourmill/internal/core/domain/model/grinding"
)

// SubmitLabTestCommandHandler attaches one lab moisture sample to a grinding
// run. Unlike hourly reports, lab tests are accepted even after the run has
// stopped.
type SubmitLabTestCommandHandler struct {
	uowFactory GrindingUoWFactory
}

// NewSubmitLabTestCommandHandler creates a handler for lab test submission.
func NewSubmitLabTestCommandHandler(uowFactory GrindingUoWFactory) SubmitLabTestCommandHandler {
	return SubmitLabTestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the lab test submission.
func (h *SubmitLabTestCommandHandler) Handle(ctx context.Context, cmd SubmitLabTestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	grindingRepo := uow.GrindingRepository()
	if _, err := grindingRepo.GetJob(ctx, cmd.JobID()); err != nil {
		return err
	}

	test, err := grinding.NewLabTest(
		cmd.TestID(),
		cmd.JobID(),
		cmd.StartTime(),
		cmd.EndTime(),
		cmd.ProductType(),
		cmd.Moisture(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = grindingRepo.AddLabTest(ctx, test); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
