package queries

import (
	"context"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/kernel"
)

// GetPlansQueryHandler retrieves an order's plans with their blend and
// distribution rows joined against bin names.
type GetPlansQueryHandler struct {
	db *gorm.DB
}

// NewGetPlansQueryHandler creates a handler for the plans query.
func NewGetPlansQueryHandler(db *gorm.DB) GetPlansQueryHandler {
	return GetPlansQueryHandler{db: db}
}

// Handle executes the query, newest plan first.
func (h GetPlansQueryHandler) Handle(
	ctx context.Context,
	query GetPlansQuery,
) ([]PlanResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	plans := make([]PlanResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, description, plan_status, created_at
		FROM production_plans
		WHERE order_id = ?
		ORDER BY created_at DESC
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp PlanResponse
		var id, orderID string

		if err = rows.Scan(&id, &orderID, &resp.Description, &resp.Status, &resp.CreatedAt); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromString(orderID); err != nil {
			return nil, err
		}
		plans = append(plans, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range plans {
		if plans[i].SourceBlend, err = loadPlanBlend(ctx, h.db, plans[i].ID); err != nil {
			return nil, err
		}
		if plans[i].Distribution, err = loadPlanDistribution(ctx, h.db, plans[i].ID); err != nil {
			return nil, err
		}
	}

	return plans, nil
}

// loadPlanBlend is shared with the timeline query.
func loadPlanBlend(ctx context.Context, db *gorm.DB, planID kernel.UUID) ([]BlendRowResponse, error) {
	blend := make([]BlendRowResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			psb.source_bin_id,
			b.bin_name,
			psb.blend_percentage,
			psb.blend_quantity
		FROM plan_source_blend psb
		JOIN bins b ON b.id = psb.source_bin_id
		WHERE psb.plan_id = ?
		ORDER BY psb.sort_order
	`, planID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row BlendRowResponse
		var binID string

		if err = rows.Scan(&binID, &row.BinName, &row.Percentage, &row.Quantity); err != nil {
			return nil, err
		}
		if row.BinID, err = kernel.UUIDFromString(binID); err != nil {
			return nil, err
		}
		blend = append(blend, row)
	}

	return blend, rows.Err()
}

// loadPlanDistribution is shared with the timeline query.
func loadPlanDistribution(ctx context.Context, db *gorm.DB, planID kernel.UUID) ([]DistributionRowResponse, error) {
	distribution := make([]DistributionRowResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			pdd.destination_bin_id,
			b.bin_name,
			pdd.distribution_quantity
		FROM plan_destination_distribution pdd
		JOIN bins b ON b.id = pdd.destination_bin_id
		WHERE pdd.plan_id = ?
		ORDER BY pdd.sort_order
	`, planID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row DistributionRowResponse
		var binID string

		if err = rows.Scan(&binID, &row.BinName, &row.Quantity); err != nil {
			return nil, err
		}
		if row.BinID, err = kernel.UUIDFromString(binID); err != nil {
			return nil, err
		}
		distribution = append(distribution, row)
	}

	return distribution, rows.Err()
}
