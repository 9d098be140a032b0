package grindingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// GormGrindingRepository implements GrindingRepository using GORM.
type GormGrindingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormGrindingRepository creates a new GORM grinding repository.
func NewGormGrindingRepository(db *gorm.DB, tracker aggregateTracker) *GormGrindingRepository {
	return &GormGrindingRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddJob saves a newly started run with its source bins.
func (r *GormGrindingRepository) AddJob(ctx context.Context, job *grinding.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	dto := jobFromDomain(job)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(job.ID(), job)
	return nil
}

// UpdateJob saves the run's stop state.
func (r *GormGrindingRepository) UpdateJob(ctx context.Context, job *grinding.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	dto := jobFromDomain(job)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(job.ID(), job)
	return nil
}

// GetJob retrieves a run by ID with its source bins.
func (r *GormGrindingRepository) GetJob(ctx context.Context, id kernel.UUID) (*grinding.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("grinding job", id.String())
	}
	if err != nil {
		return nil, err
	}

	return jobToDomain(dto)
}

// GetLatestJobByOrder retrieves the most recent run for an order, nil when
// the order has none.
func (r *GormGrindingRepository) GetLatestJobByOrder(ctx context.Context, orderID kernel.UUID) (*grinding.Job, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	err := r.preloaded(ctx).
		Where("order_id = ?", orderID.String()).
		Order("grinding_start_time DESC").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return jobToDomain(dto)
}

// AddReport saves one hourly report.
func (r *GormGrindingRepository) AddReport(ctx context.Context, report *grinding.HourlyReport) error {
	if err := report.Validate(); err != nil {
		return err
	}

	dto := reportFromDomain(report)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(report.ID(), report)
	return nil
}

// GetReportsByJob retrieves a run's reports in report-number order.
func (r *GormGrindingRepository) GetReportsByJob(ctx context.Context, jobID kernel.UUID) ([]*grinding.HourlyReport, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReportDTO
	err := r.db.WithContext(ctx).
		Where("grinding_job_id = ?", jobID.String()).
		Order("report_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reports := make([]*grinding.HourlyReport, 0, len(dtos))
	for _, dto := range dtos {
		report, dErr := reportToDomain(dto)
		if dErr != nil {
			return nil, dErr
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// AddLabTest saves one lab moisture sample.
func (r *GormGrindingRepository) AddLabTest(ctx context.Context, test *grinding.LabTest) error {
	if err := test.Validate(); err != nil {
		return err
	}

	dto := labTestFromDomain(test)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(test.ID(), test)
	return nil
}

// GetLabTestsByJob retrieves a run's lab tests in submission order.
func (r *GormGrindingRepository) GetLabTestsByJob(ctx context.Context, jobID kernel.UUID) ([]*grinding.LabTest, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LabTestDTO
	err := r.db.WithContext(ctx).
		Where("grinding_job_id = ?", jobID.String()).
		Order("submitted_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tests := make([]*grinding.LabTest, 0, len(dtos))
	for _, dto := range dtos {
		test, dErr := labTestToDomain(dto)
		if dErr != nil {
			return nil, dErr
		}
		tests = append(tests, test)
	}

	return tests, nil
}

func (r *GormGrindingRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("SourceBins", func(db *gorm.DB) *gorm.DB {
		return db.Order("bin_sequence_order")
	})
}
