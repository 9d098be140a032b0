package grinding

import (
	"errors"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrGrindingJobIsNotConstructed is returned when a GrindingJob was not
// created through its constructors.
var ErrGrindingJobIsNotConstructed = errors.New(
	"GrindingJob must be created via NewGrindingJob or RestoreGrindingJob",
)

// SourceBin is one 12HR bin in the grinding feed order. The first listed bin
// is marked IN_USE and the rest PENDING; the ordering is informational only
// and is not enforced by any later operation.
type SourceBin struct {
	binID            kernel.UUID
	sequenceOrder    int
	status           SourceBinStatus
	outgoingMoisture *float64
	waterAdded       *float64
}

// NewSourceBin records a bin at its position in the feed order.
func NewSourceBin(binID kernel.UUID, sequenceOrder int, status SourceBinStatus) (SourceBin, error) {
	if err := binID.Validate(); err != nil {
		return SourceBin{}, err
	}
	if sequenceOrder < 1 {
		return SourceBin{}, errs.NewValueIsInvalidError("sequence order")
	}
	return SourceBin{
		binID:         binID,
		sequenceOrder: sequenceOrder,
		status:        status,
	}, nil
}

// RestoreSourceBin reconstructs a source bin from persistence.
func RestoreSourceBin(
	binID kernel.UUID, sequenceOrder int, status SourceBinStatus, outgoingMoisture, waterAdded *float64,
) SourceBin {
	return SourceBin{
		binID:            binID,
		sequenceOrder:    sequenceOrder,
		status:           status,
		outgoingMoisture: outgoingMoisture,
		waterAdded:       waterAdded,
	}
}

// BinID returns the 12HR bin's identifier.
func (b SourceBin) BinID() kernel.UUID { return b.binID }

// SequenceOrder returns the 1-based position in the feed order.
func (b SourceBin) SequenceOrder() int { return b.sequenceOrder }

// Status returns the bin's feed status.
func (b SourceBin) Status() SourceBinStatus { return b.status }

// OutgoingMoisture returns the moisture reading recorded for the bin, if any.
func (b SourceBin) OutgoingMoisture() *float64 { return b.outgoingMoisture }

// WaterAdded returns the water volume recorded for the bin, if any.
func (b SourceBin) WaterAdded() *float64 { return b.waterAdded }

// Job is one grinding run for an order: the mill draws from an ordered list
// of 12HR bins and produces hourly throughput reports until stopped.
type Job struct {
	id         kernel.UUID
	orderID    kernel.UUID
	machineID  string
	status     JobStatus
	startTime  *time.Time
	endTime    *time.Time
	duration   *float64
	sourceBins []SourceBin

	isConstructed bool
}

// NewJob opens a grinding run directly in STARTED, marking the first listed
// bin IN_USE and the rest PENDING.
func NewJob(id, orderID kernel.UUID, binIDs []kernel.UUID, startTime time.Time) (*Job, error) {
	j := &Job{
		machineID:     DefaultMachineID,
		status:        JobStarted,
		isConstructed: true,
	}

	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if len(binIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("bin ids")
	}

	for i, binID := range binIDs {
		status := SourceBinPending
		if i == 0 {
			status = SourceBinInUse
		}
		sb, err := NewSourceBin(binID, i+1, status)
		if err != nil {
			return nil, err
		}
		j.sourceBins = append(j.sourceBins, sb)
	}

	j.id = id
	j.orderID = orderID
	j.startTime = &startTime
	return j, nil
}

// RestoreJob reconstructs a grinding job from persistence.
func RestoreJob(
	id, orderID kernel.UUID,
	machineID string,
	status JobStatus,
	startTime, endTime *time.Time,
	duration *float64,
	sourceBins []SourceBin,
) (*Job, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if machineID == "" {
		machineID = DefaultMachineID
	}
	return &Job{
		id:            id,
		orderID:       orderID,
		machineID:     machineID,
		status:        status,
		startTime:     startTime,
		endTime:       endTime,
		duration:      duration,
		sourceBins:    append([]SourceBin(nil), sourceBins...),
		isConstructed: true,
	}, nil
}

// Validate ensures the job was built via its constructors.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrGrindingJobIsNotConstructed
	}
	return nil
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID { return j.id }

// OrderID returns the order this run belongs to.
func (j *Job) OrderID() kernel.UUID { return j.orderID }

// MachineID returns the grinding line identifier.
func (j *Job) MachineID() string { return j.machineID }

// Status returns the job's lifecycle status.
func (j *Job) Status() JobStatus { return j.status }

// StartTime returns when milling began.
func (j *Job) StartTime() *time.Time { return j.startTime }

// EndTime returns when milling stopped, nil while running.
func (j *Job) EndTime() *time.Time { return j.endTime }

// DurationHours returns the run length in hours, nil while running.
func (j *Job) DurationHours() *float64 { return j.duration }

// SourceBins returns the feed-ordered 12HR bins.
func (j *Job) SourceBins() []SourceBin {
	return append([]SourceBin(nil), j.sourceBins...)
}

// AcceptsReports reports whether hourly reports may still be submitted.
func (j *Job) AcceptsReports() bool {
	return j.status == JobStarted
}

// Stop closes the run: STARTED -> STOPPED, recording the end time and the
// duration in hours.
func (j *Job) Stop(endTime time.Time) error {
	newStatus, err := j.status.Stop()
	if err != nil {
		return err
	}
	j.status = newStatus
	j.endTime = &endTime
	if j.startTime != nil {
		hours := endTime.Sub(*j.startTime).Seconds() / 3600
		j.duration = &hours
	}
	return nil
}
