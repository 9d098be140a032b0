package queries

import (
	"errors"
	"time"

	"flourmill/internal/core/domain/model/grinding"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var ErrGetTimelineQueryIsNotConstructed = errors.New(
	"GetTimelineQuery must be created via NewGetTimelineQuery constructor",
)

// GetTimelineQuery retrieves the full production history of one order: the
// active plan, both transfer phases, the grinding run with its reports, and
// the packaging records. The timeline is a pure read; fetching it repeatedly
// never changes any state.
type GetTimelineQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTimelineQuery creates a query for an order's timeline.
func NewGetTimelineQuery(orderID kernel.UUID) (GetTimelineQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTimelineQuery{}, err
	}
	return GetTimelineQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetTimelineQueryIsNotConstructed)
}

// OrderID returns the order whose timeline is fetched.
func (q GetTimelineQuery) OrderID() kernel.UUID {
	return q.orderID
}

// DestinationTransferResponse is the state of one blended transfer into a
// destination bin. Bins the plan lists but nobody started yet have no row.
type DestinationTransferResponse struct {
	ID                  kernel.UUID
	DestinationBinID    kernel.UUID
	BinName             string
	Status              string
	TargetQuantity      float64
	TransferredQuantity float64
	StartedAt           *time.Time
	CompletedAt         *time.Time
}

// SequentialAllocationResponse is one destination bin's share of a sequential
// transfer, in walk order.
type SequentialAllocationResponse struct {
	DestinationBinID    kernel.UUID
	BinName             string
	SequenceOrder       int
	QuantityTransferred float64
	Status              string
}

// SequentialJobResponse is the read model of one sequential transfer job.
type SequentialJobResponse struct {
	ID               kernel.UUID
	SourceBinID      kernel.UUID
	SourceBinName    string
	TransferQuantity float64
	TotalTransferred float64
	Status           string
	StartedAt        *time.Time
	StoppedAt        *time.Time
	OutgoingMoisture *float64
	WaterAdded       *float64
	Allocations      []SequentialAllocationResponse
}

// GrindingSourceBinResponse is one bin in a grinding run's feed order.
type GrindingSourceBinResponse struct {
	BinID            kernel.UUID
	BinName          string
	SequenceOrder    int
	Status           string
	OutgoingMoisture *float64
	WaterAdded       *float64
}

// GrindingJobResponse is the read model of one grinding run, including its
// hourly reports, lab tests and the derived summary.
type GrindingJobResponse struct {
	ID            kernel.UUID
	MachineID     string
	Status        string
	StartTime     *time.Time
	EndTime       *time.Time
	DurationHours *float64
	SourceBins    []GrindingSourceBinResponse
	Reports       []HourlyReportResponse
	LabTests      []LabTestResponse
	Summary       grinding.Summary
}

// PackagingRecordResponse is the read model of one packaging action.
type PackagingRecordResponse struct {
	ID            kernel.UUID
	GrindingJobID kernel.UUID
	ProductType   string
	ShallowID     *kernel.UUID
	GodownID      *kernel.UUID
	BagSizeKg     *float64
	NumberOfBags  *int
	TotalKgPacked float64
	Status        string
	PackedAt      time.Time
}

// TimelineResponse is the complete production history of one order. Sections
// the order has not reached yet are nil or empty.
type TimelineResponse struct {
	Order                OrderResponse
	Plan                 *PlanResponse
	DestinationTransfers []DestinationTransferResponse
	SequentialJob        *SequentialJobResponse
	Grinding             *GrindingJobResponse
	Packaging            []PackagingRecordResponse
}
