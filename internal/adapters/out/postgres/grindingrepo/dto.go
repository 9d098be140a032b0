// Package grindingrepo persists grinding runs with their source bins, hourly
// reports and lab tests.
package grindingrepo

import (
	"time"

	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/kernel"
)

// JobDTO represents the database structure for persisting grinding runs.
type JobDTO struct {
	ID                    string         `gorm:"type:varchar(36);primaryKey"`
	OrderID               string         `gorm:"type:varchar(36);not null;index"`
	MachineID             string         `gorm:"type:varchar(50);not null"`
	GrindingStatus        string         `gorm:"type:varchar(20);not null"`
	GrindingStartTime     *time.Time     `gorm:""`
	GrindingEndTime       *time.Time     `gorm:""`
	GrindingDurationHours *float64       `gorm:""`
	SourceBins            []SourceBinDTO `gorm:"foreignKey:GrindingJobID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "grinding_jobs".
func (JobDTO) TableName() string {
	return "grinding_jobs"
}

// SourceBinDTO is one bin in a run's feed order.
type SourceBinDTO struct {
	ID               string   `gorm:"type:varchar(36);primaryKey"`
	GrindingJobID    string   `gorm:"type:varchar(36);not null;index"`
	BinID            string   `gorm:"type:varchar(36);not null"`
	BinSequenceOrder int      `gorm:"not null"`
	Status           string   `gorm:"type:varchar(20);not null"`
	OutgoingMoisture *float64 `gorm:""`
	WaterAdded       *float64 `gorm:""`
}

// TableName overrides GORM's default naming to use "grinding_source_bins".
func (SourceBinDTO) TableName() string {
	return "grinding_source_bins"
}

// ReportDTO represents the database structure for persisting hourly reports.
// Totals and percentages are stored alongside the raw tons so the read side
// can serve them without recomputation.
type ReportDTO struct {
	ID               string     `gorm:"type:varchar(36);primaryKey"`
	GrindingJobID    string     `gorm:"type:varchar(36);not null;index"`
	ReportNumber     int        `gorm:"not null"`
	StartTime        string     `gorm:"type:varchar(20);not null"`
	EndTime          string     `gorm:"type:varchar(20);not null"`
	Status           string     `gorm:"type:varchar(20);not null"`
	MaidaTons        float64    `gorm:"not null"`
	SujiTons         float64    `gorm:"not null"`
	ChakkiAtaTons    float64    `gorm:"not null"`
	TandooriTons     float64    `gorm:"not null"`
	MainTotalTons    float64    `gorm:"not null"`
	BranTons         float64    `gorm:"not null"`
	GrandTotalTons   float64    `gorm:"not null"`
	MaidaPercent     float64    `gorm:"not null"`
	SujiPercent      float64    `gorm:"not null"`
	ChakkiAtaPercent float64    `gorm:"not null"`
	TandooriPercent  float64    `gorm:"not null"`
	MainTotalPercent float64    `gorm:"not null"`
	BranPercent      float64    `gorm:"not null"`
	SubmittedAt      *time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "hourly_reports".
func (ReportDTO) TableName() string {
	return "hourly_reports"
}

// LabTestDTO represents the database structure for persisting lab moisture
// samples.
type LabTestDTO struct {
	ID            string     `gorm:"type:varchar(36);primaryKey"`
	GrindingJobID string     `gorm:"type:varchar(36);not null;index"`
	StartTime     string     `gorm:"type:varchar(20);not null"`
	EndTime       string     `gorm:"type:varchar(20);not null"`
	ProductType   string     `gorm:"type:varchar(50);not null"`
	Moisture      float64    `gorm:"not null"`
	Status        string     `gorm:"type:varchar(20);not null"`
	SubmittedAt   *time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "grinding_lab_tests".
func (LabTestDTO) TableName() string {
	return "grinding_lab_tests"
}

func jobFromDomain(j *grinding.Job) JobDTO {
	jobID := j.ID().String()

	sourceBins := make([]SourceBinDTO, 0, len(j.SourceBins()))
	for _, b := range j.SourceBins() {
		sourceBins = append(sourceBins, SourceBinDTO{
			ID:               kernel.NewUUID().String(),
			GrindingJobID:    jobID,
			BinID:            b.BinID().String(),
			BinSequenceOrder: b.SequenceOrder(),
			Status:           b.Status().String(),
			OutgoingMoisture: b.OutgoingMoisture(),
			WaterAdded:       b.WaterAdded(),
		})
	}

	return JobDTO{
		ID:                    jobID,
		OrderID:               j.OrderID().String(),
		MachineID:             j.MachineID(),
		GrindingStatus:        j.Status().String(),
		GrindingStartTime:     j.StartTime(),
		GrindingEndTime:       j.EndTime(),
		GrindingDurationHours: j.DurationHours(),
		SourceBins:            sourceBins,
	}
}

func jobToDomain(dto JobDTO) (*grinding.Job, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}
	status, err := grinding.JobStatusFromString(dto.GrindingStatus)
	if err != nil {
		return nil, err
	}

	sourceBins := make([]grinding.SourceBin, 0, len(dto.SourceBins))
	for _, row := range dto.SourceBins {
		binID, binErr := kernel.UUIDFromString(row.BinID)
		if binErr != nil {
			return nil, binErr
		}
		binStatus, sErr := grinding.SourceBinStatusFromString(row.Status)
		if sErr != nil {
			return nil, sErr
		}
		sourceBins = append(sourceBins, grinding.RestoreSourceBin(
			binID, row.BinSequenceOrder, binStatus, row.OutgoingMoisture, row.WaterAdded,
		))
	}

	return grinding.RestoreJob(
		id, orderID,
		dto.MachineID,
		status,
		dto.GrindingStartTime, dto.GrindingEndTime,
		dto.GrindingDurationHours,
		sourceBins,
	)
}

func reportFromDomain(r *grinding.HourlyReport) ReportDTO {
	tons := r.Tons()
	percents := r.Percents()

	return ReportDTO{
		ID:               r.ID().String(),
		GrindingJobID:    r.JobID().String(),
		ReportNumber:     r.ReportNumber(),
		StartTime:        r.StartTime(),
		EndTime:          r.EndTime(),
		Status:           r.Status(),
		MaidaTons:        tons.Maida,
		SujiTons:         tons.Suji,
		ChakkiAtaTons:    tons.ChakkiAta,
		TandooriTons:     tons.Tandoori,
		MainTotalTons:    tons.MainTotal(),
		BranTons:         tons.Bran,
		GrandTotalTons:   tons.GrandTotal(),
		MaidaPercent:     percents.Maida,
		SujiPercent:      percents.Suji,
		ChakkiAtaPercent: percents.ChakkiAta,
		TandooriPercent:  percents.Tandoori,
		MainTotalPercent: percents.MainTotal,
		BranPercent:      percents.Bran,
		SubmittedAt:      r.SubmittedAt(),
	}
}

func reportToDomain(dto ReportDTO) (*grinding.HourlyReport, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromString(dto.GrindingJobID)
	if err != nil {
		return nil, err
	}

	tons := grinding.ProductTons{
		Maida:     dto.MaidaTons,
		Suji:      dto.SujiTons,
		ChakkiAta: dto.ChakkiAtaTons,
		Tandoori:  dto.TandooriTons,
		Bran:      dto.BranTons,
	}

	return grinding.RestoreHourlyReport(
		id, jobID, dto.ReportNumber, dto.StartTime, dto.EndTime, dto.Status, tons, dto.SubmittedAt,
	)
}

func labTestFromDomain(t *grinding.LabTest) LabTestDTO {
	return LabTestDTO{
		ID:            t.ID().String(),
		GrindingJobID: t.JobID().String(),
		StartTime:     t.StartTime(),
		EndTime:       t.EndTime(),
		ProductType:   t.ProductType(),
		Moisture:      t.Moisture(),
		Status:        t.Status(),
		SubmittedAt:   t.SubmittedAt(),
	}
}

func labTestToDomain(dto LabTestDTO) (*grinding.LabTest, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromString(dto.GrindingJobID)
	if err != nil {
		return nil, err
	}

	return grinding.RestoreLabTest(
		id, jobID, dto.StartTime, dto.EndTime, dto.ProductType, dto.Moisture, dto.Status, dto.SubmittedAt,
	)
}
