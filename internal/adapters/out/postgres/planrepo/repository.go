package planrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/plan"
	"flourmill/internal/pkg/errs"
)

// GormPlanRepository implements PlanRepository using GORM. Plans are
// immutable after creation, so the repository has no update path.
type GormPlanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPlanRepository creates a new GORM plan repository.
func NewGormPlanRepository(db *gorm.DB, tracker aggregateTracker) *GormPlanRepository {
	return &GormPlanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new plan with its blend and distribution rows.
func (r *GormPlanRepository) Add(ctx context.Context, aggregate *plan.ProductionPlan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a plan by ID with its child rows.
func (r *GormPlanRepository) Get(ctx context.Context, id kernel.UUID) (*plan.ProductionPlan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlanDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("production plan", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestByOrder retrieves the most recently created plan for an order.
func (r *GormPlanRepository) GetLatestByOrder(ctx context.Context, orderID kernel.UUID) (*plan.ProductionPlan, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PlanDTO
	err := r.preloaded(ctx).
		Where("order_id = ?", orderID.String()).
		Order("created_at DESC").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("production plan for order", orderID.String())
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every plan created for an order, newest first.
func (r *GormPlanRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*plan.ProductionPlan, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PlanDTO
	err := r.preloaded(ctx).
		Where("order_id = ?", orderID.String()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	plans := make([]*plan.ProductionPlan, 0, len(dtos))
	for _, dto := range dtos {
		p, dErr := toDomain(dto)
		if dErr != nil {
			return nil, dErr
		}
		plans = append(plans, p)
	}

	return plans, nil
}

func (r *GormPlanRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("SourceBlend", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		Preload("Distribution", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		})
}
