// Package packagingrepo persists packaging records and the storage-transfer
// audit trail.
package packagingrepo

import (
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/packaging"
)

// RecordDTO represents the database structure for persisting packaging
// records. ShallowID and GodownID nilability encodes the route: loose into a
// shallow, bagged straight to a godown, or re-bagged out of a shallow.
type RecordDTO struct {
	ID            string     `gorm:"type:varchar(36);primaryKey"`
	GrindingJobID string     `gorm:"type:varchar(36);not null;index"`
	OrderID       string     `gorm:"type:varchar(36);not null;index"`
	ProductType   string     `gorm:"type:varchar(50);not null"`
	ShallowID     *string    `gorm:"type:varchar(36)"`
	GodownID      *string    `gorm:"type:varchar(36)"`
	BagSizeKg     float64    `gorm:"not null"`
	NumberOfBags  int        `gorm:"not null"`
	TotalKgPacked float64    `gorm:"not null"`
	Status        string     `gorm:"type:varchar(20);not null"`
	PackedAt      *time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "packaging_records".
func (RecordDTO) TableName() string {
	return "packaging_records"
}

// StorageTransferDTO is one audit row of product moving between the mill,
// shallows and godowns.
type StorageTransferDTO struct {
	ID              string    `gorm:"type:varchar(36);primaryKey"`
	SourceType      string    `gorm:"type:varchar(20);not null"`
	SourceID        *string   `gorm:"type:varchar(36)"`
	DestinationType string    `gorm:"type:varchar(20);not null"`
	DestinationID   string    `gorm:"type:varchar(36);not null"`
	ProductType     string    `gorm:"type:varchar(50);not null"`
	Quantity        float64   `gorm:"not null"`
	TransferDate    time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "storage_transfers".
func (StorageTransferDTO) TableName() string {
	return "storage_transfers"
}

func recordFromDomain(r *packaging.Record) RecordDTO {
	return RecordDTO{
		ID:            r.ID().String(),
		GrindingJobID: r.GrindingJobID().String(),
		OrderID:       r.OrderID().String(),
		ProductType:   r.ProductType(),
		ShallowID:     uuidToString(r.ShallowID()),
		GodownID:      uuidToString(r.GodownID()),
		BagSizeKg:     r.BagSizeKg(),
		NumberOfBags:  r.NumberOfBags(),
		TotalKgPacked: r.TotalKgPacked(),
		Status:        r.Status(),
		PackedAt:      r.PackedAt(),
	}
}

func recordToDomain(dto RecordDTO) (*packaging.Record, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromString(dto.GrindingJobID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}
	shallowID, err := uuidFromString(dto.ShallowID)
	if err != nil {
		return nil, err
	}
	godownID, err := uuidFromString(dto.GodownID)
	if err != nil {
		return nil, err
	}

	return packaging.RestoreRecord(
		id, jobID, orderID,
		dto.ProductType,
		shallowID, godownID,
		dto.BagSizeKg, dto.NumberOfBags, dto.TotalKgPacked,
		dto.Status,
		dto.PackedAt,
	)
}

func storageTransferFromDomain(t *packaging.StorageTransfer) StorageTransferDTO {
	return StorageTransferDTO{
		ID:              t.ID().String(),
		SourceType:      t.SourceType(),
		SourceID:        uuidToString(t.SourceID()),
		DestinationType: t.DestinationType(),
		DestinationID:   t.DestinationID().String(),
		ProductType:     t.ProductType(),
		Quantity:        t.Quantity(),
		TransferDate:    t.TransferDate(),
	}
}

func storageTransferToDomain(dto StorageTransferDTO) (*packaging.StorageTransfer, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	sourceID, err := uuidFromString(dto.SourceID)
	if err != nil {
		return nil, err
	}
	destinationID, err := kernel.UUIDFromString(dto.DestinationID)
	if err != nil {
		return nil, err
	}

	return packaging.RestoreStorageTransfer(
		id,
		dto.SourceType, sourceID,
		dto.DestinationType, destinationID,
		dto.ProductType, dto.Quantity, dto.TransferDate,
	), nil
}

func uuidToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func uuidFromString(value *string) (*kernel.UUID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
