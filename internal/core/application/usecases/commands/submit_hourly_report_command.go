package commands

import (
	"errors"

	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
	"flourmill/internal/pkg/guard"
)

var ErrSubmitHourlyReportCommandIsNotConstructed = errors.New(
	"SubmitHourlyReportCommand must be created via NewSubmitHourlyReportCommand constructor",
)

// SubmitHourlyReportCommand represents one hour's throughput submission for
// a running grinding job.
type SubmitHourlyReportCommand struct { //nolint:recvcheck //using for validation
	reportID     kernel.UUID
	jobID        kernel.UUID
	reportNumber int
	startTime    string
	endTime      string
	tons         grinding.ProductTons

	guard guard.ConstructorGuard
}

// NewSubmitHourlyReportCommand creates a command to submit one hourly
// report. Tonnage validation happens in the domain constructor.
func NewSubmitHourlyReportCommand(
	reportID, jobID kernel.UUID,
	reportNumber int,
	startTime, endTime string,
	tons grinding.ProductTons,
) (SubmitHourlyReportCommand, error) {
	cmd := SubmitHourlyReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reportID.Validate(),
		jobID.Validate(),
	); err != nil {
		return SubmitHourlyReportCommand{}, err
	}
	if reportNumber < 1 {
		return SubmitHourlyReportCommand{}, errs.NewValueIsInvalidError("report number")
	}
	if startTime == "" {
		return SubmitHourlyReportCommand{}, errs.NewValueIsRequiredError("start time")
	}
	if endTime == "" {
		return SubmitHourlyReportCommand{}, errs.NewValueIsRequiredError("end time")
	}

	cmd.reportID = reportID
	cmd.jobID = jobID
	cmd.reportNumber = reportNumber
	cmd.startTime = startTime
	cmd.endTime = endTime
	cmd.tons = tons
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitHourlyReportCommand) Validate() error {
	return c.guard.Validate(ErrSubmitHourlyReportCommandIsNotConstructed)
}

// ReportID returns the unique identifier for the new report.
func (c SubmitHourlyReportCommand) ReportID() kernel.UUID {
	return c.reportID
}

// JobID returns the run the report belongs to.
func (c SubmitHourlyReportCommand) JobID() kernel.UUID {
	return c.jobID
}

// ReportNumber returns the crew-assigned report number.
func (c SubmitHourlyReportCommand) ReportNumber() int {
	return c.reportNumber
}

// StartTime returns the hour's start as entered by the crew.
func (c SubmitHourlyReportCommand) StartTime() string {
	return c.startTime
}

// EndTime returns the hour's end as entered by the crew.
func (c SubmitHourlyReportCommand) EndTime() string {
	return c.endTime
}

// Tons returns the per-product throughput.
func (c SubmitHourlyReportCommand) Tons() grinding.ProductTons {
	return c.tons
}
