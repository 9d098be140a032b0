package inventoryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormBinRepository implements BinRepository using GORM.
type GormBinRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormBinRepository creates a new GORM bin repository.
func NewGormBinRepository(db *gorm.DB, tracker aggregateTracker) *GormBinRepository {
	return &GormBinRepository{db: db, tracker: tracker}
}

// Add saves a new bin to the database.
func (r *GormBinRepository) Add(ctx context.Context, bin *inventory.Bin) error {
	if err := bin.Validate(); err != nil {
		return err
	}

	dto := binFromDomain(bin)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(bin.ID(), bin)
	return nil
}

// Update saves an existing bin, including its current quantity.
func (r *GormBinRepository) Update(ctx context.Context, bin *inventory.Bin) error {
	if err := bin.Validate(); err != nil {
		return err
	}

	dto := binFromDomain(bin)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(bin.ID(), bin)
	return nil
}

// Get retrieves a bin by ID.
func (r *GormBinRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Bin, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BinDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bin", id.String())
		}
		return nil, err
	}

	return binToDomain(dto)
}

// GetAll retrieves every bin, grouped by type then name.
func (r *GormBinRepository) GetAll(ctx context.Context) ([]*inventory.Bin, error) {
	var dtos []BinDTO
	if err := r.db.WithContext(ctx).Order("bin_type, bin_name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	bins := make([]*inventory.Bin, 0, len(dtos))
	for _, dto := range dtos {
		b, err := binToDomain(dto)
		if err != nil {
			return nil, err
		}
		bins = append(bins, b)
	}

	return bins, nil
}

// Delete removes a bin.
func (r *GormBinRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BinDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bin", id.String())
	}
	return nil
}

// GormShallowRepository implements ShallowRepository using GORM.
type GormShallowRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormShallowRepository creates a new GORM shallow repository.
func NewGormShallowRepository(db *gorm.DB, tracker aggregateTracker) *GormShallowRepository {
	return &GormShallowRepository{db: db, tracker: tracker}
}

// Add saves a new shallow to the database.
func (r *GormShallowRepository) Add(ctx context.Context, shallow *inventory.Shallow) error {
	if err := shallow.Validate(); err != nil {
		return err
	}

	dto := shallowFromDomain(shallow)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(shallow.ID(), shallow)
	return nil
}

// Update saves an existing shallow.
func (r *GormShallowRepository) Update(ctx context.Context, shallow *inventory.Shallow) error {
	if err := shallow.Validate(); err != nil {
		return err
	}

	dto := shallowFromDomain(shallow)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(shallow.ID(), shallow)
	return nil
}

// Get retrieves a shallow by ID.
func (r *GormShallowRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Shallow, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShallowDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shallow", id.String())
		}
		return nil, err
	}

	return shallowToDomain(dto)
}

// GetAll retrieves every shallow ordered by name.
func (r *GormShallowRepository) GetAll(ctx context.Context) ([]*inventory.Shallow, error) {
	var dtos []ShallowDTO
	if err := r.db.WithContext(ctx).Order("shallow_name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	shallows := make([]*inventory.Shallow, 0, len(dtos))
	for _, dto := range dtos {
		s, err := shallowToDomain(dto)
		if err != nil {
			return nil, err
		}
		shallows = append(shallows, s)
	}

	return shallows, nil
}

// Delete removes a shallow.
func (r *GormShallowRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShallowDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shallow", id.String())
	}
	return nil
}

// GormGodownRepository implements GodownRepository using GORM.
type GormGodownRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormGodownRepository creates a new GORM godown repository.
func NewGormGodownRepository(db *gorm.DB, tracker aggregateTracker) *GormGodownRepository {
	return &GormGodownRepository{db: db, tracker: tracker}
}

// Add saves a new godown to the database.
func (r *GormGodownRepository) Add(ctx context.Context, godown *inventory.Godown) error {
	if err := godown.Validate(); err != nil {
		return err
	}

	dto := godownFromDomain(godown)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(godown.ID(), godown)
	return nil
}

// Update saves an existing godown.
func (r *GormGodownRepository) Update(ctx context.Context, godown *inventory.Godown) error {
	if err := godown.Validate(); err != nil {
		return err
	}

	dto := godownFromDomain(godown)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(godown.ID(), godown)
	return nil
}

// Get retrieves a godown by ID.
func (r *GormGodownRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Godown, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GodownDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("godown", id.String())
		}
		return nil, err
	}

	return godownToDomain(dto)
}

// GetAll retrieves every godown ordered by name.
func (r *GormGodownRepository) GetAll(ctx context.Context) ([]*inventory.Godown, error) {
	var dtos []GodownDTO
	if err := r.db.WithContext(ctx).Order("godown_name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	godowns := make([]*inventory.Godown, 0, len(dtos))
	for _, dto := range dtos {
		g, err := godownToDomain(dto)
		if err != nil {
			return nil, err
		}
		godowns = append(godowns, g)
	}

	return godowns, nil
}

// Delete removes a godown.
func (r *GormGodownRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&GodownDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("godown", id.String())
	}
	return nil
}
