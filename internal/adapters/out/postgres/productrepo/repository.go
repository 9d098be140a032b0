package productrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/product"
	"flourmill/internal/pkg/errs"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product catalog repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddFinishedGood saves a new finished good.
func (r *GormProductRepository) AddFinishedGood(ctx context.Context, fg *product.FinishedGood) error {
	if err := fg.Validate(); err != nil {
		return err
	}

	dto := finishedGoodFromDomain(fg)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(fg.ID(), fg)
	return nil
}

// GetFinishedGoodByName retrieves a finished good by its product name.
func (r *GormProductRepository) GetFinishedGoodByName(ctx context.Context, productName string) (*product.FinishedGood, error) {
	var dto FinishedGoodDTO
	err := r.db.WithContext(ctx).First(&dto, "product_name = ?", productName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("finished good", productName)
	}
	if err != nil {
		return nil, err
	}

	return finishedGoodToDomain(dto)
}

// GetAllFinishedGoods retrieves the catalog ordered by name.
func (r *GormProductRepository) GetAllFinishedGoods(ctx context.Context) ([]*product.FinishedGood, error) {
	var dtos []FinishedGoodDTO
	if err := r.db.WithContext(ctx).Order("product_name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	goods := make([]*product.FinishedGood, 0, len(dtos))
	for _, dto := range dtos {
		fg, err := finishedGoodToDomain(dto)
		if err != nil {
			return nil, err
		}
		goods = append(goods, fg)
	}

	return goods, nil
}

// DeleteFinishedGood removes a finished good from the catalog.
func (r *GormProductRepository) DeleteFinishedGood(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&FinishedGoodDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("finished good", id.String())
	}
	return nil
}

// AddRawProduct saves a new raw product.
func (r *GormProductRepository) AddRawProduct(ctx context.Context, rp *product.RawProduct) error {
	if err := rp.Validate(); err != nil {
		return err
	}

	dto := rawProductFromDomain(rp)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rp.ID(), rp)
	return nil
}

// GetAllRawProducts retrieves the raw products ordered by name.
func (r *GormProductRepository) GetAllRawProducts(ctx context.Context) ([]*product.RawProduct, error) {
	var dtos []RawProductDTO
	if err := r.db.WithContext(ctx).Order("product_name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.RawProduct, 0, len(dtos))
	for _, dto := range dtos {
		rp, err := rawProductToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, rp)
	}

	return products, nil
}

// DeleteRawProduct removes a raw product.
func (r *GormProductRepository) DeleteRawProduct(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RawProductDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("raw product", id.String())
	}
	return nil
}
