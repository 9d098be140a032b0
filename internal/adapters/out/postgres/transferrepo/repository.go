package transferrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/transfer"
	"flourmill/internal/pkg/errs"
)

// GormTransferRepository implements TransferRepository using GORM.
type GormTransferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransferRepository creates a new GORM transfer repository.
func NewGormTransferRepository(db *gorm.DB, tracker aggregateTracker) *GormTransferRepository {
	return &GormTransferRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddDestinationTransfer saves a lazily created blended transfer. A concurrent
// start that already inserted a row for the same (plan, destination bin) pair
// makes this insert hit the unique index; the loser gets an invalid state
// transition, same as starting an already started transfer.
func (r *GormTransferRepository) AddDestinationTransfer(ctx context.Context, t *transfer.DestinationBinTransfer) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := destinationFromDomain(t)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewInvalidStateTransitionErrorWithCause(
				"destination bin transfer",
				transfer.Ready.String(), transfer.InProgress.String(),
				err,
			)
		}
		return err
	}

	r.tracker.TrackAggregate(t.ID(), t)
	return nil
}

// UpdateDestinationTransfer saves status and quantity changes.
func (r *GormTransferRepository) UpdateDestinationTransfer(ctx context.Context, t *transfer.DestinationBinTransfer) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := destinationFromDomain(t)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(t.ID(), t)
	return nil
}

// GetDestinationTransfer retrieves the transfer for one (plan, destination
// bin) pair. A missing row returns (nil, nil): the transfer has simply never
// been started.
func (r *GormTransferRepository) GetDestinationTransfer(
	ctx context.Context, planID, destinationBinID kernel.UUID,
) (*transfer.DestinationBinTransfer, error) {
	if err := errors.Join(planID.Validate(), destinationBinID.Validate()); err != nil {
		return nil, err
	}

	var dto DestinationTransferDTO
	err := r.db.WithContext(ctx).
		Where("plan_id = ? AND destination_bin_id = ?", planID.String(), destinationBinID.String()).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return destinationToDomain(dto)
}

// GetDestinationTransfersByPlan retrieves all blended transfers for a plan.
func (r *GormTransferRepository) GetDestinationTransfersByPlan(
	ctx context.Context, planID kernel.UUID,
) ([]*transfer.DestinationBinTransfer, error) {
	if err := planID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DestinationTransferDTO
	if err := r.db.WithContext(ctx).Where("plan_id = ?", planID.String()).Find(&dtos).Error; err != nil {
		return nil, err
	}

	transfers := make([]*transfer.DestinationBinTransfer, 0, len(dtos))
	for _, dto := range dtos {
		t, err := destinationToDomain(dto)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}

	return transfers, nil
}

// AddSequentialJob saves a newly opened sequential transfer job.
func (r *GormTransferRepository) AddSequentialJob(ctx context.Context, job *transfer.SequentialTransferJob) error {
	if err := job.Validate(); err != nil {
		return err
	}

	dto := sequentialFromDomain(job)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(job.ID(), job)
	return nil
}

// UpdateSequentialJob saves the job's completion, including its allocation
// rows.
func (r *GormTransferRepository) UpdateSequentialJob(ctx context.Context, job *transfer.SequentialTransferJob) error {
	if err := job.Validate(); err != nil {
		return err
	}

	dto := sequentialFromDomain(job)

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

// GetSequentialJob retrieves a job by ID with its allocation rows.
func (r *GormTransferRepository) GetSequentialJob(ctx context.Context, id kernel.UUID) (*transfer.SequentialTransferJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SequentialJobDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("sequential transfer job", id.String())
	}
	if err != nil {
		return nil, err
	}

	return sequentialToDomain(dto)
}

// GetLatestSequentialJobByOrder retrieves the most recent job for an order,
// nil when the order has none.
func (r *GormTransferRepository) GetLatestSequentialJobByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*transfer.SequentialTransferJob, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto SequentialJobDTO
	err := r.preloaded(ctx).
		Where("order_id = ?", orderID.String()).
		Order("started_at DESC").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return sequentialToDomain(dto)
}

func (r *GormTransferRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Allocations", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order")
	})
}
