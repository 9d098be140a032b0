// Package planrepo persists production plans with their blend and
// distribution rows.
package planrepo

import (
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/plan"
)

// PlanDTO represents the database structure for persisting plan aggregates.
type PlanDTO struct {
	ID           string            `gorm:"type:varchar(36);primaryKey"`
	OrderID      string            `gorm:"type:varchar(36);not null;index"`
	Description  string            `gorm:"type:text"`
	PlanStatus   string            `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time         `gorm:"not null"`
	SourceBlend  []BlendRowDTO     `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Distribution []DistributionDTO `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "production_plans".
func (PlanDTO) TableName() string {
	return "production_plans"
}

// BlendRowDTO is one source bin's share of a plan's blend. SortOrder keeps
// the submitted row order, which string primary keys do not.
type BlendRowDTO struct {
	ID              string  `gorm:"type:varchar(36);primaryKey"`
	PlanID          string  `gorm:"type:varchar(36);not null;index"`
	SourceBinID     string  `gorm:"type:varchar(36);not null"`
	BlendPercentage float64 `gorm:"not null"`
	BlendQuantity   float64 `gorm:"not null"`
	SortOrder       int     `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "plan_source_blend".
func (BlendRowDTO) TableName() string {
	return "plan_source_blend"
}

// DistributionDTO is one destination bin's allotted quantity.
type DistributionDTO struct {
	ID                   string  `gorm:"type:varchar(36);primaryKey"`
	PlanID               string  `gorm:"type:varchar(36);not null;index"`
	DestinationBinID     string  `gorm:"type:varchar(36);not null"`
	DistributionQuantity float64 `gorm:"not null"`
	SortOrder            int     `gorm:"not null"`
}

// TableName overrides GORM's default naming to use
// "plan_destination_distribution".
func (DistributionDTO) TableName() string {
	return "plan_destination_distribution"
}

func fromDomain(aggregate *plan.ProductionPlan) PlanDTO {
	planID := aggregate.ID().String()

	blend := make([]BlendRowDTO, 0, len(aggregate.SourceBlend()))
	for i, c := range aggregate.SourceBlend() {
		blend = append(blend, BlendRowDTO{
			ID:              kernel.NewUUID().String(),
			PlanID:          planID,
			SourceBinID:     c.BinID().String(),
			BlendPercentage: c.Percentage(),
			BlendQuantity:   c.Quantity(),
			SortOrder:       i + 1,
		})
	}

	distribution := make([]DistributionDTO, 0, len(aggregate.Distribution()))
	for i, d := range aggregate.Distribution() {
		distribution = append(distribution, DistributionDTO{
			ID:                   kernel.NewUUID().String(),
			PlanID:               planID,
			DestinationBinID:     d.BinID().String(),
			DistributionQuantity: d.Quantity(),
			SortOrder:            i + 1,
		})
	}

	return PlanDTO{
		ID:           planID,
		OrderID:      aggregate.OrderID().String(),
		Description:  aggregate.Description(),
		PlanStatus:   aggregate.Status(),
		CreatedAt:    aggregate.CreatedAt(),
		SourceBlend:  blend,
		Distribution: distribution,
	}
}

func toDomain(dto PlanDTO) (*plan.ProductionPlan, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	blend := make([]plan.BlendComponent, 0, len(dto.SourceBlend))
	for _, row := range dto.SourceBlend {
		binID, binErr := kernel.UUIDFromString(row.SourceBinID)
		if binErr != nil {
			return nil, binErr
		}
		blend = append(blend, plan.RestoreBlendComponent(binID, row.BlendPercentage, row.BlendQuantity))
	}

	distribution := make([]plan.Distribution, 0, len(dto.Distribution))
	for _, row := range dto.Distribution {
		binID, binErr := kernel.UUIDFromString(row.DestinationBinID)
		if binErr != nil {
			return nil, binErr
		}
		d, dErr := plan.NewDistribution(binID, row.DistributionQuantity)
		if dErr != nil {
			return nil, dErr
		}
		distribution = append(distribution, d)
	}

	return plan.RestoreProductionPlan(id, orderID, dto.Description, dto.PlanStatus, blend, distribution, dto.CreatedAt)
}
