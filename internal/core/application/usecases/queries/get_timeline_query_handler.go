package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// GetTimelineQueryHandler assembles the full production history of one order.
// Each section is loaded independently; an order that has not reached a phase
// simply gets a nil or empty section.
type GetTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetTimelineQueryHandler creates a handler for the timeline query.
func NewGetTimelineQueryHandler(db *gorm.DB) GetTimelineQueryHandler {
	return GetTimelineQueryHandler{db: db}
}

// Handle executes the query, returning an object-not-found error when no
// order carries the id.
func (h GetTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetTimelineQuery,
) (TimelineResponse, error) {
	if err := query.Validate(); err != nil {
		return TimelineResponse{}, err
	}

	var timeline TimelineResponse
	var err error

	if timeline.Order, err = h.loadOrder(ctx, query.OrderID()); err != nil {
		return TimelineResponse{}, err
	}
	if timeline.Plan, err = h.loadLatestPlan(ctx, query.OrderID()); err != nil {
		return TimelineResponse{}, err
	}
	if timeline.Plan != nil {
		timeline.DestinationTransfers, err = h.loadDestinationTransfers(ctx, timeline.Plan.ID)
		if err != nil {
			return TimelineResponse{}, err
		}
	}
	if timeline.SequentialJob, err = h.loadLatestSequentialJob(ctx, query.OrderID()); err != nil {
		return TimelineResponse{}, err
	}
	if timeline.Grinding, err = h.loadLatestGrindingJob(ctx, query.OrderID()); err != nil {
		return TimelineResponse{}, err
	}
	if timeline.Packaging, err = h.loadPackagingRecords(ctx, query.OrderID()); err != nil {
		return TimelineResponse{}, err
	}

	return timeline, nil
}

func (h GetTimelineQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (OrderResponse, error) {
	var resp OrderResponse
	var id string

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, order_number, product_type, quantity, production_stage, created_at
		FROM orders
		WHERE id = ?
	`, orderID.String()).Row()

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&resp.ProductType,
		&resp.Quantity,
		&resp.ProductionStage,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", orderID)
	}
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	return resp, nil
}

// loadLatestPlan returns the newest plan with its blend and distribution
// rows, or nil when the order has not been planned yet.
func (h GetTimelineQueryHandler) loadLatestPlan(ctx context.Context, orderID kernel.UUID) (*PlanResponse, error) {
	var resp PlanResponse
	var id string

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, description, plan_status, created_at
		FROM production_plans
		WHERE order_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, orderID.String()).Row()

	err := row.Scan(&id, &resp.Description, &resp.Status, &resp.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromString(id); err != nil {
		return nil, err
	}
	resp.OrderID = orderID

	if resp.SourceBlend, err = loadPlanBlend(ctx, h.db, resp.ID); err != nil {
		return nil, err
	}
	if resp.Distribution, err = loadPlanDistribution(ctx, h.db, resp.ID); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (h GetTimelineQueryHandler) loadDestinationTransfers(
	ctx context.Context, planID kernel.UUID,
) ([]DestinationTransferResponse, error) {
	transfers := make([]DestinationTransferResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dbt.id,
			dbt.destination_bin_id,
			b.bin_name,
			dbt.status,
			dbt.target_quantity,
			dbt.transferred_quantity,
			dbt.started_at,
			dbt.completed_at
		FROM destination_bin_transfers dbt
		JOIN bins b ON b.id = dbt.destination_bin_id
		WHERE dbt.plan_id = ?
		ORDER BY dbt.started_at
	`, planID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp DestinationTransferResponse
		var id, binID string

		if err = rows.Scan(
			&id,
			&binID,
			&resp.BinName,
			&resp.Status,
			&resp.TargetQuantity,
			&resp.TransferredQuantity,
			&resp.StartedAt,
			&resp.CompletedAt,
		); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if resp.DestinationBinID, err = kernel.UUIDFromString(binID); err != nil {
			return nil, err
		}
		transfers = append(transfers, resp)
	}

	return transfers, rows.Err()
}

// loadLatestSequentialJob returns the newest sequential transfer job with its
// allocation rows, or nil when none was started.
func (h GetTimelineQueryHandler) loadLatestSequentialJob(
	ctx context.Context, orderID kernel.UUID,
) (*SequentialJobResponse, error) {
	var resp SequentialJobResponse
	var id, sourceBinID string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			stj.id,
			stj.source_bin_id,
			b.bin_name,
			stj.transfer_quantity,
			stj.status,
			stj.started_at,
			stj.stopped_at,
			stj.outgoing_moisture,
			stj.water_added
		FROM sequential_transfer_jobs stj
		JOIN bins b ON b.id = stj.source_bin_id
		WHERE stj.order_id = ?
		ORDER BY stj.started_at DESC
		LIMIT 1
	`, orderID.String()).Row()

	err := row.Scan(
		&id,
		&sourceBinID,
		&resp.SourceBinName,
		&resp.TransferQuantity,
		&resp.Status,
		&resp.StartedAt,
		&resp.StoppedAt,
		&resp.OutgoingMoisture,
		&resp.WaterAdded,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromString(id); err != nil {
		return nil, err
	}
	if resp.SourceBinID, err = kernel.UUIDFromString(sourceBinID); err != nil {
		return nil, err
	}

	if resp.Allocations, err = h.loadAllocations(ctx, resp.ID); err != nil {
		return nil, err
	}
	for _, a := range resp.Allocations {
		resp.TotalTransferred += a.QuantityTransferred
	}

	return &resp, nil
}

func (h GetTimelineQueryHandler) loadAllocations(
	ctx context.Context, jobID kernel.UUID,
) ([]SequentialAllocationResponse, error) {
	allocations := make([]SequentialAllocationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			stb.destination_bin_id,
			b.bin_name,
			stb.sequence_order,
			stb.quantity_transferred,
			stb.status
		FROM sequential_transfer_bins stb
		JOIN bins b ON b.id = stb.destination_bin_id
		WHERE stb.job_id = ?
		ORDER BY stb.sequence_order
	`, jobID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp SequentialAllocationResponse
		var binID string

		if err = rows.Scan(
			&binID,
			&resp.BinName,
			&resp.SequenceOrder,
			&resp.QuantityTransferred,
			&resp.Status,
		); err != nil {
			return nil, err
		}
		if resp.DestinationBinID, err = kernel.UUIDFromString(binID); err != nil {
			return nil, err
		}
		allocations = append(allocations, resp)
	}

	return allocations, rows.Err()
}

// loadLatestGrindingJob returns the newest grinding run with its source bins,
// hourly reports, lab tests and summary, or nil when grinding never started.
func (h GetTimelineQueryHandler) loadLatestGrindingJob(
	ctx context.Context, orderID kernel.UUID,
) (*GrindingJobResponse, error) {
	var resp GrindingJobResponse
	var id string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			machine_id,
			grinding_status,
			grinding_start_time,
			grinding_end_time,
			grinding_duration_hours
		FROM grinding_jobs
		WHERE order_id = ?
		ORDER BY grinding_start_time DESC
		LIMIT 1
	`, orderID.String()).Row()

	err := row.Scan(
		&id,
		&resp.MachineID,
		&resp.Status,
		&resp.StartTime,
		&resp.EndTime,
		&resp.DurationHours,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromString(id); err != nil {
		return nil, err
	}

	if resp.SourceBins, err = h.loadGrindingSourceBins(ctx, resp.ID); err != nil {
		return nil, err
	}

	var domainReports []*grinding.HourlyReport
	if resp.Reports, domainReports, err = loadReports(ctx, h.db, resp.ID); err != nil {
		return nil, err
	}
	resp.Summary = grinding.Summarize(domainReports)

	if resp.LabTests, err = loadLabTests(ctx, h.db, resp.ID); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (h GetTimelineQueryHandler) loadGrindingSourceBins(
	ctx context.Context, jobID kernel.UUID,
) ([]GrindingSourceBinResponse, error) {
	bins := make([]GrindingSourceBinResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			gsb.bin_id,
			b.bin_name,
			gsb.bin_sequence_order,
			gsb.status,
			gsb.outgoing_moisture,
			gsb.water_added
		FROM grinding_source_bins gsb
		JOIN bins b ON b.id = gsb.bin_id
		WHERE gsb.grinding_job_id = ?
		ORDER BY gsb.bin_sequence_order
	`, jobID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GrindingSourceBinResponse
		var binID string

		if err = rows.Scan(
			&binID,
			&resp.BinName,
			&resp.SequenceOrder,
			&resp.Status,
			&resp.OutgoingMoisture,
			&resp.WaterAdded,
		); err != nil {
			return nil, err
		}
		if resp.BinID, err = kernel.UUIDFromString(binID); err != nil {
			return nil, err
		}
		bins = append(bins, resp)
	}

	return bins, rows.Err()
}

func (h GetTimelineQueryHandler) loadPackagingRecords(
	ctx context.Context, orderID kernel.UUID,
) ([]PackagingRecordResponse, error) {
	records := make([]PackagingRecordResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			grinding_job_id,
			product_type,
			shallow_id,
			godown_id,
			bag_size_kg,
			number_of_bags,
			total_kg_packed,
			status,
			packed_at
		FROM packaging_records
		WHERE order_id = ?
		ORDER BY packed_at
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp PackagingRecordResponse
		var id, jobID string
		var shallowID, godownID *string

		if err = rows.Scan(
			&id,
			&jobID,
			&resp.ProductType,
			&shallowID,
			&godownID,
			&resp.BagSizeKg,
			&resp.NumberOfBags,
			&resp.TotalKgPacked,
			&resp.Status,
			&resp.PackedAt,
		); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if resp.GrindingJobID, err = kernel.UUIDFromString(jobID); err != nil {
			return nil, err
		}
		if resp.ShallowID, err = optionalUUID(shallowID); err != nil {
			return nil, err
		}
		if resp.GodownID, err = optionalUUID(godownID); err != nil {
			return nil, err
		}
		records = append(records, resp)
	}

	return records, rows.Err()
}

func optionalUUID(value *string) (*kernel.UUID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
