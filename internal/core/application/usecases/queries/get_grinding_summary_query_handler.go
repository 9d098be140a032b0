package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"flourmill/internal/pkg/errs"
	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/kernel"
)

// GetGrindingSummaryQueryHandler loads a run's reports and lab tests and
// derives the summary through the domain aggregation, so percentages in the
// read model always match what the write side would compute.
type GetGrindingSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetGrindingSummaryQueryHandler creates a handler for the summary query.
func NewGetGrindingSummaryQueryHandler(db *gorm.DB) GetGrindingSummaryQueryHandler {
	return GetGrindingSummaryQueryHandler{db: db}
}

// Handle executes the query.
func (h GetGrindingSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetGrindingSummaryQuery,
) (GrindingSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return GrindingSummaryResponse{}, err
	}

	if err := grindingJobExists(ctx, h.db, query.JobID()); err != nil {
		return GrindingSummaryResponse{}, err
	}

	reports, domainReports, err := loadReports(ctx, h.db, query.JobID())
	if err != nil {
		return GrindingSummaryResponse{}, err
	}

	labTests, err := loadLabTests(ctx, h.db, query.JobID())
	if err != nil {
		return GrindingSummaryResponse{}, err
	}

	return GrindingSummaryResponse{
		JobID:    query.JobID(),
		Reports:  reports,
		LabTests: labTests,
		Summary:  grinding.Summarize(domainReports),
	}, nil
}

func grindingJobExists(ctx context.Context, db *gorm.DB, jobID kernel.UUID) error {
	var id string

	row := db.WithContext(ctx).Raw(`
		SELECT id FROM grinding_jobs WHERE id = ?
	`, jobID.String()).Row()

	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundError("grinding job", jobID)
		}
		return err
	}
	return nil
}

// loadReports returns both the read models and the restored domain reports;
// the latter feed grinding.Summarize. Shared with the timeline query.
func loadReports(
	ctx context.Context, db *gorm.DB, jobID kernel.UUID,
) ([]HourlyReportResponse, []*grinding.HourlyReport, error) {
	responses := make([]HourlyReportResponse, 0)
	domainReports := make([]*grinding.HourlyReport, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			report_number,
			start_time,
			end_time,
			status,
			maida_tons,
			suji_tons,
			chakki_ata_tons,
			tandoori_tons,
			bran_tons,
			submitted_at
		FROM hourly_reports
		WHERE grinding_job_id = ?
		ORDER BY report_number
	`, jobID.String()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           string
			reportNumber int
			startTime    string
			endTime      string
			status       string
			tons         grinding.ProductTons
			submittedAt  *time.Time
		)

		if err = rows.Scan(
			&id,
			&reportNumber,
			&startTime,
			&endTime,
			&status,
			&tons.Maida,
			&tons.Suji,
			&tons.ChakkiAta,
			&tons.Tandoori,
			&tons.Bran,
			&submittedAt,
		); err != nil {
			return nil, nil, err
		}

		reportID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, nil, idErr
		}

		report, restoreErr := grinding.RestoreHourlyReport(
			reportID, jobID, reportNumber, startTime, endTime, status, tons, submittedAt,
		)
		if restoreErr != nil {
			return nil, nil, restoreErr
		}

		domainReports = append(domainReports, report)
		responses = append(responses, HourlyReportResponse{
			ID:           reportID,
			ReportNumber: reportNumber,
			StartTime:    startTime,
			EndTime:      endTime,
			Status:       status,
			Tons:         tons,
			Percents:     report.Percents(),
			SubmittedAt:  submittedAt,
		})
	}

	return responses, domainReports, rows.Err()
}

// loadLabTests returns the read models of a run's lab tests. Shared with the
// timeline query.
func loadLabTests(ctx context.Context, db *gorm.DB, jobID kernel.UUID) ([]LabTestResponse, error) {
	labTests := make([]LabTestResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			start_time,
			end_time,
			product_type,
			moisture,
			status,
			submitted_at
		FROM grinding_lab_tests
		WHERE grinding_job_id = ?
		ORDER BY submitted_at
	`, jobID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp LabTestResponse
		var id string

		if err = rows.Scan(
			&id,
			&resp.StartTime,
			&resp.EndTime,
			&resp.ProductType,
			&resp.Moisture,
			&resp.Status,
			&resp.SubmittedAt,
		); err != nil {
			return nil, err
		}

		testID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = testID
		labTests = append(labTests, resp)
	}

	return labTests, rows.Err()
}
