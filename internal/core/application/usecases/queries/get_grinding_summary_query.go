package queries

import (
	"errors"
	"time"

	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var ErrGetGrindingSummaryQueryIsNotConstructed = errors.New(
	"GetGrindingSummaryQuery must be created via NewGetGrindingSummaryQuery constructor",
)

// GetGrindingSummaryQuery retrieves a grinding run's hourly reports, lab
// tests and the computed run summary.
type GetGrindingSummaryQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetGrindingSummaryQuery creates a query for one run's summary.
func NewGetGrindingSummaryQuery(jobID kernel.UUID) (GetGrindingSummaryQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetGrindingSummaryQuery{}, err
	}
	return GetGrindingSummaryQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetGrindingSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetGrindingSummaryQueryIsNotConstructed)
}

// JobID returns the run being summarized.
func (q GetGrindingSummaryQuery) JobID() kernel.UUID {
	return q.jobID
}

// HourlyReportResponse is the read model of one hourly report.
type HourlyReportResponse struct {
	ID           kernel.UUID
	ReportNumber int
	StartTime    string
	EndTime      string
	Status       string
	Tons         grinding.ProductTons
	Percents     grinding.ProductPercents
	SubmittedAt  *time.Time
}

// LabTestResponse is the read model of one lab moisture sample.
type LabTestResponse struct {
	ID          kernel.UUID
	StartTime   string
	EndTime     string
	ProductType string
	Moisture    float64
	Status      string
	SubmittedAt *time.Time
}

// GrindingSummaryResponse bundles a run's reports, lab tests and summary.
type GrindingSummaryResponse struct {
	JobID    kernel.UUID
	Reports  []HourlyReportResponse
	LabTests []LabTestResponse
	Summary  grinding.Summary
}
