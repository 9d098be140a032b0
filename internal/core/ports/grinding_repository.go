package ports

import (
	"context"

	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/kernel"
)

// GrindingRepository defines the persistence contract for grinding runs and
// their attached reports and lab tests.
type GrindingRepository interface {
	// AddJob persists a newly started grinding run with its source bins.
	AddJob(ctx context.Context, job *grinding.Job) error

	// UpdateJob persists the run's stop state.
	UpdateJob(ctx context.Context, job *grinding.Job) error

	// GetJob retrieves a run by its unique identifier.
	GetJob(ctx context.Context, id kernel.UUID) (*grinding.Job, error)

	// GetLatestJobByOrder retrieves the most recent run for an order,
	// nil when the order has none. Feeds the timeline view.
	GetLatestJobByOrder(ctx context.Context, orderID kernel.UUID) (*grinding.Job, error)

	// AddReport persists one hourly report.
	AddReport(ctx context.Context, report *grinding.HourlyReport) error

	// GetReportsByJob retrieves a run's reports in report-number order.
	GetReportsByJob(ctx context.Context, jobID kernel.UUID) ([]*grinding.HourlyReport, error)

	// AddLabTest persists one lab moisture sample.
	AddLabTest(ctx context.Context, test *grinding.LabTest) error

	// GetLabTestsByJob retrieves a run's lab tests in submission order.
	GetLabTestsByJob(ctx context.Context, jobID kernel.UUID) ([]*grinding.LabTest, error)
}
