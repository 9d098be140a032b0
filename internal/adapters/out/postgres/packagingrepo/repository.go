package packagingrepo

import (
	"context"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/packaging"
)

// GormPackagingRepository implements PackagingRepository using GORM. Records
// and audit rows are append-only; nothing here updates or deletes.
type GormPackagingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackagingRepository creates a new GORM packaging repository.
func NewGormPackagingRepository(db *gorm.DB, tracker aggregateTracker) *GormPackagingRepository {
	return &GormPackagingRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddRecord saves one packaging submission.
func (r *GormPackagingRepository) AddRecord(ctx context.Context, record *packaging.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := recordFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetRecordsByOrder retrieves an order's packaging records, newest first.
func (r *GormPackagingRepository) GetRecordsByOrder(ctx context.Context, orderID kernel.UUID) ([]*packaging.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.String()).
		Order("packed_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*packaging.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, dErr := recordToDomain(dto)
		if dErr != nil {
			return nil, dErr
		}
		records = append(records, record)
	}

	return records, nil
}

// AddStorageTransfer saves one audit row.
func (r *GormPackagingRepository) AddStorageTransfer(ctx context.Context, t *packaging.StorageTransfer) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := storageTransferFromDomain(t)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(t.ID(), t)
	return nil
}

// GetStorageTransfers retrieves the full audit trail, newest first.
func (r *GormPackagingRepository) GetStorageTransfers(ctx context.Context) ([]*packaging.StorageTransfer, error) {
	var dtos []StorageTransferDTO
	if err := r.db.WithContext(ctx).Order("transfer_date DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	transfers := make([]*packaging.StorageTransfer, 0, len(dtos))
	for _, dto := range dtos {
		t, err := storageTransferToDomain(dto)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}

	return transfers, nil
}
