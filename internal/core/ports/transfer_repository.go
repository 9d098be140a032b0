package ports

import (
	"context"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/transfer"
)

// TransferRepository defines the persistence contract for both transfer
// modes: blended destination-bin transfers and sequential transfer jobs.
type TransferRepository interface {
	// AddDestinationTransfer persists a lazily created blended transfer.
	AddDestinationTransfer(ctx context.Context, t *transfer.DestinationBinTransfer) error

	// UpdateDestinationTransfer persists status and quantity changes.
	UpdateDestinationTransfer(ctx context.Context, t *transfer.DestinationBinTransfer) error

	// GetDestinationTransfer retrieves the transfer for one (plan,
	// destination bin) pair, if it exists. A missing row is not an
	// error state: it means the transfer has never been started.
	GetDestinationTransfer(ctx context.Context, planID, destinationBinID kernel.UUID) (*transfer.DestinationBinTransfer, error)

	// GetDestinationTransfersByPlan retrieves all blended transfers for a
	// plan, used to decide whether the stage can advance.
	GetDestinationTransfersByPlan(ctx context.Context, planID kernel.UUID) ([]*transfer.DestinationBinTransfer, error)

	// AddSequentialJob persists a newly opened sequential transfer job.
	AddSequentialJob(ctx context.Context, job *transfer.SequentialTransferJob) error

	// UpdateSequentialJob persists the job's completion, including its
	// allocation rows.
	UpdateSequentialJob(ctx context.Context, job *transfer.SequentialTransferJob) error

	// GetSequentialJob retrieves a job by its unique identifier.
	GetSequentialJob(ctx context.Context, id kernel.UUID) (*transfer.SequentialTransferJob, error)

	// GetLatestSequentialJobByOrder retrieves the most recent job for an
	// order, nil when the order has none. Feeds the timeline view.
	GetLatestSequentialJobByOrder(ctx context.Context, orderID kernel.UUID) (*transfer.SequentialTransferJob, error)
}
