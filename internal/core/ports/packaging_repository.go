package ports

import (
	"context"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/packaging"
)

// PackagingRepository defines the persistence contract for packaging records
// and the storage-transfer audit trail.
type PackagingRepository interface {
	// AddRecord persists one packaging submission.
	AddRecord(ctx context.Context, record *packaging.Record) error

	// GetRecordsByOrder retrieves an order's packaging records, newest
	// first.
	GetRecordsByOrder(ctx context.Context, orderID kernel.UUID) ([]*packaging.Record, error)

	// AddStorageTransfer persists one audit row.
	AddStorageTransfer(ctx context.Context, t *packaging.StorageTransfer) error

	// GetStorageTransfers retrieves the full audit trail, newest first.
	GetStorageTransfers(ctx context.Context) ([]*packaging.StorageTransfer, error)
}
