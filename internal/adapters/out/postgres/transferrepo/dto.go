// Package transferrepo persists both transfer modes: blended destination-bin
// transfers and sequential transfer jobs with their allocation rows.
package transferrepo

import (
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/transfer"
)

// DestinationTransferDTO represents the database structure for persisting one
// blended transfer into a destination bin. The composite unique index enforces
// at most one row per (plan, destination bin) pair, so a concurrent second
// start fails on insert instead of duplicating the transfer.
type DestinationTransferDTO struct {
	ID                  string     `gorm:"type:varchar(36);primaryKey"`
	OrderID             string     `gorm:"type:varchar(36);not null;index"`
	PlanID              string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_destination_transfers_plan_bin"`
	DestinationBinID    string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_destination_transfers_plan_bin"`
	Status              string     `gorm:"type:varchar(20);not null"`
	TargetQuantity      float64    `gorm:"not null"`
	TransferredQuantity float64    `gorm:"not null"`
	StartedAt           *time.Time `gorm:""`
	CompletedAt         *time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use
// "destination_bin_transfers".
func (DestinationTransferDTO) TableName() string {
	return "destination_bin_transfers"
}

// SequentialJobDTO represents the database structure for persisting a
// sequential transfer job.
type SequentialJobDTO struct {
	ID               string          `gorm:"type:varchar(36);primaryKey"`
	OrderID          string          `gorm:"type:varchar(36);not null;index"`
	SourceBinID      string          `gorm:"type:varchar(36);not null"`
	TransferQuantity float64         `gorm:"not null"`
	Status           string          `gorm:"type:varchar(20);not null"`
	StartedAt        *time.Time      `gorm:""`
	StoppedAt        *time.Time      `gorm:""`
	OutgoingMoisture *float64        `gorm:""`
	WaterAdded       *float64        `gorm:""`
	Allocations      []AllocationDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use
// "sequential_transfer_jobs".
func (SequentialJobDTO) TableName() string {
	return "sequential_transfer_jobs"
}

// AllocationDTO is one destination bin's share of a sequential transfer, in
// walk order.
type AllocationDTO struct {
	ID                  string  `gorm:"type:varchar(36);primaryKey"`
	JobID               string  `gorm:"type:varchar(36);not null;index"`
	DestinationBinID    string  `gorm:"type:varchar(36);not null"`
	SequenceOrder       int     `gorm:"not null"`
	QuantityTransferred float64 `gorm:"not null"`
	Status              string  `gorm:"type:varchar(20);not null"`
}

// TableName overrides GORM's default naming to use
// "sequential_transfer_bins".
func (AllocationDTO) TableName() string {
	return "sequential_transfer_bins"
}

func destinationFromDomain(t *transfer.DestinationBinTransfer) DestinationTransferDTO {
	return DestinationTransferDTO{
		ID:                  t.ID().String(),
		OrderID:             t.OrderID().String(),
		PlanID:              t.PlanID().String(),
		DestinationBinID:    t.DestinationBinID().String(),
		Status:              t.Status().String(),
		TargetQuantity:      t.TargetQuantity(),
		TransferredQuantity: t.TransferredQuantity(),
		StartedAt:           t.StartedAt(),
		CompletedAt:         t.CompletedAt(),
	}
}

func destinationToDomain(dto DestinationTransferDTO) (*transfer.DestinationBinTransfer, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}
	planID, err := kernel.UUIDFromString(dto.PlanID)
	if err != nil {
		return nil, err
	}
	binID, err := kernel.UUIDFromString(dto.DestinationBinID)
	if err != nil {
		return nil, err
	}
	status, err := transfer.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return transfer.RestoreDestinationBinTransfer(
		id, orderID, planID, binID,
		status,
		dto.TargetQuantity, dto.TransferredQuantity,
		dto.StartedAt, dto.CompletedAt,
	)
}

func sequentialFromDomain(j *transfer.SequentialTransferJob) SequentialJobDTO {
	jobID := j.ID().String()

	allocations := make([]AllocationDTO, 0, len(j.Allocations()))
	for _, a := range j.Allocations() {
		allocations = append(allocations, AllocationDTO{
			ID:                  kernel.NewUUID().String(),
			JobID:               jobID,
			DestinationBinID:    a.DestinationBinID().String(),
			SequenceOrder:       a.SequenceOrder(),
			QuantityTransferred: a.QuantityTransferred(),
			Status:              a.Status().String(),
		})
	}

	return SequentialJobDTO{
		ID:               jobID,
		OrderID:          j.OrderID().String(),
		SourceBinID:      j.SourceBinID().String(),
		TransferQuantity: j.TransferQuantity(),
		Status:           j.Status().String(),
		StartedAt:        j.StartedAt(),
		StoppedAt:        j.StoppedAt(),
		OutgoingMoisture: j.OutgoingMoisture(),
		WaterAdded:       j.WaterAdded(),
		Allocations:      allocations,
	}
}

func sequentialToDomain(dto SequentialJobDTO) (*transfer.SequentialTransferJob, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}
	sourceBinID, err := kernel.UUIDFromString(dto.SourceBinID)
	if err != nil {
		return nil, err
	}
	status, err := transfer.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	allocations := make([]transfer.Allocation, 0, len(dto.Allocations))
	for _, row := range dto.Allocations {
		binID, binErr := kernel.UUIDFromString(row.DestinationBinID)
		if binErr != nil {
			return nil, binErr
		}
		rowStatus, sErr := transfer.StatusFromString(row.Status)
		if sErr != nil {
			return nil, sErr
		}
		allocations = append(allocations, transfer.RestoreAllocation(
			binID, row.SequenceOrder, row.QuantityTransferred, rowStatus,
		))
	}

	return transfer.RestoreSequentialTransferJob(
		id, orderID, sourceBinID,
		dto.TransferQuantity,
		status,
		dto.StartedAt, dto.StoppedAt,
		dto.OutgoingMoisture, dto.WaterAdded,
		allocations,
	)
}
