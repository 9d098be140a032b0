// Package inventoryrepo persists the three storage location kinds: process
// bins, maida shallows and finished-goods godowns.
package inventoryrepo

import (
	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
)

// BinDTO represents the database structure for persisting process bins.
type BinDTO struct {
	ID              string  `gorm:"type:varchar(36);primaryKey"`
	BinName         string  `gorm:"type:varchar(100);not null"`
	BinType         string  `gorm:"type:varchar(20);not null;index"`
	Capacity        float64 `gorm:"not null"`
	CurrentQuantity float64 `gorm:"not null"`
	IdentityNumber  string  `gorm:"type:varchar(50)"`
}

// TableName overrides GORM's default naming to use "bins".
func (BinDTO) TableName() string {
	return "bins"
}

// ShallowDTO represents the database structure for persisting maida shallows.
type ShallowDTO struct {
	ID              string  `gorm:"type:varchar(36);primaryKey"`
	ShallowName     string  `gorm:"type:varchar(100);not null"`
	ShallowCode     string  `gorm:"type:varchar(50);not null"`
	Capacity        float64 `gorm:"not null"`
	CurrentQuantity float64 `gorm:"not null"`
	ProductType     string  `gorm:"type:varchar(50);not null"`
}

// TableName overrides GORM's default naming to use "maida_shallows".
func (ShallowDTO) TableName() string {
	return "maida_shallows"
}

// GodownDTO represents the database structure for persisting godowns.
type GodownDTO struct {
	ID              string  `gorm:"type:varchar(36);primaryKey"`
	GodownName      string  `gorm:"type:varchar(100);not null"`
	GodownCode      string  `gorm:"type:varchar(50);not null"`
	Capacity        float64 `gorm:"not null"`
	CurrentQuantity float64 `gorm:"not null"`
	Location        string  `gorm:"type:varchar(255)"`
}

// TableName overrides GORM's default naming to use "finished_goods_godowns".
func (GodownDTO) TableName() string {
	return "finished_goods_godowns"
}

func binFromDomain(b *inventory.Bin) BinDTO {
	return BinDTO{
		ID:              b.ID().String(),
		BinName:         b.Name(),
		BinType:         b.BinType().String(),
		Capacity:        b.Capacity(),
		CurrentQuantity: b.CurrentQuantity(),
		IdentityNumber:  b.IdentityNumber(),
	}
}

func binToDomain(dto BinDTO) (*inventory.Bin, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	binType, err := inventory.BinTypeFromString(dto.BinType)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreBin(id, dto.BinName, binType, dto.Capacity, dto.CurrentQuantity, dto.IdentityNumber)
}

func shallowFromDomain(s *inventory.Shallow) ShallowDTO {
	return ShallowDTO{
		ID:              s.ID().String(),
		ShallowName:     s.Name(),
		ShallowCode:     s.Code(),
		Capacity:        s.Capacity(),
		CurrentQuantity: s.CurrentQuantity(),
		ProductType:     inventory.ShallowProductType,
	}
}

func shallowToDomain(dto ShallowDTO) (*inventory.Shallow, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return inventory.RestoreShallow(id, dto.ShallowName, dto.ShallowCode, dto.Capacity, dto.CurrentQuantity)
}

func godownFromDomain(g *inventory.Godown) GodownDTO {
	return GodownDTO{
		ID:              g.ID().String(),
		GodownName:      g.Name(),
		GodownCode:      g.Code(),
		Capacity:        g.Capacity(),
		CurrentQuantity: g.CurrentQuantity(),
		Location:        g.Location(),
	}
}

func godownToDomain(dto GodownDTO) (*inventory.Godown, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	return inventory.RestoreGodown(id, dto.GodownName, dto.GodownCode, dto.Capacity, dto.CurrentQuantity, dto.Location)
}
