// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and its relational shape.
package orderrepo

import (
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Identifiers are stored in their canonical 36-character string form so the
// schema works unchanged on both postgres and sqlite.
type OrderDTO struct {
	ID              string    `gorm:"type:varchar(36);primaryKey"`
	OrderNumber     string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	ProductType     string    `gorm:"type:varchar(100);not null"`
	Quantity        float64   `gorm:"not null"`
	ProductionStage string    `gorm:"type:varchar(50);not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().String(),
		OrderNumber:     aggregate.OrderNumber(),
		ProductType:     aggregate.ProductType(),
		Quantity:        aggregate.Quantity(),
		ProductionStage: aggregate.Stage().String(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	stage, err := order.StageFromString(dto.ProductionStage)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.OrderNumber, dto.ProductType, dto.Quantity, stage, dto.CreatedAt)
}
