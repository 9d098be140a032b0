// Package productrepo persists the product catalog: finished goods with
// their order-number initials, and raw products.
package productrepo

import (
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/product"
)

// FinishedGoodDTO represents the database structure for finished goods.
type FinishedGoodDTO struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	ProductName string `gorm:"type:varchar(100);not null;uniqueIndex"`
	InitialName string `gorm:"type:varchar(10);not null"`
}

// TableName overrides GORM's default naming to use "finished_goods".
func (FinishedGoodDTO) TableName() string {
	return "finished_goods"
}

// RawProductDTO represents the database structure for raw products.
type RawProductDTO struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	ProductName string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName overrides GORM's default naming to use "raw_products".
func (RawProductDTO) TableName() string {
	return "raw_products"
}

func finishedGoodFromDomain(fg *product.FinishedGood) FinishedGoodDTO {
	return FinishedGoodDTO{
		ID:          fg.ID().String(),
		ProductName: fg.ProductName(),
		InitialName: fg.InitialName(),
	}
}

func finishedGoodToDomain(dto FinishedGoodDTO) (*product.FinishedGood, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return product.RestoreFinishedGood(id, dto.ProductName, dto.InitialName), nil
}

func rawProductFromDomain(rp *product.RawProduct) RawProductDTO {
	return RawProductDTO{
		ID:          rp.ID().String(),
		ProductName: rp.ProductName(),
	}
}

func rawProductToDomain(dto RawProductDTO) (*product.RawProduct, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return product.RestoreRawProduct(id, dto.ProductName), nil
}
