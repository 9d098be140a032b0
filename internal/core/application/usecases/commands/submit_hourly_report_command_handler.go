package commands

import (
	"context"
	"time"

	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/pkg/errs"
)

// SubmitHourlyReportCommandHandler attaches one hourly throughput report to
// a running grinding job.
type SubmitHourlyReportCommandHandler struct {
	uowFactory GrindingUoWFactory
}

// NewSubmitHourlyReportCommandHandler creates a handler for hourly report
// submission.
func NewSubmitHourlyReportCommandHandler(uowFactory GrindingUoWFactory) SubmitHourlyReportCommandHandler {
	return SubmitHourlyReportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the report submission. Reports against a job that is not
// STARTED fail with an invalid-transition error; nothing else about report
// numbers or time ranges is enforced.
func (h *SubmitHourlyReportCommandHandler) Handle(ctx context.Context, cmd SubmitHourlyReportCommand) error {
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
	job, err := grindingRepo.GetJob(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !job.AcceptsReports() {
		return errs.NewInvalidStateTransitionError(
			"hourly report", job.Status().String(), grinding.JobStarted.String(),
		)
	}

	report, err := grinding.NewHourlyReport(
		cmd.ReportID(),
		cmd.JobID(),
		cmd.ReportNumber(),
		cmd.StartTime(),
		cmd.EndTime(),
		cmd.Tons(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = grindingRepo.AddReport(ctx, report); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
