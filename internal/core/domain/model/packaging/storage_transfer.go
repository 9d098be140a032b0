package packaging

import (
	"errors"
	"fmt"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// ErrStorageTransferIsNotConstructed is returned when a StorageTransfer was
// not created through its constructors.
var ErrStorageTransferIsNotConstructed = errors.New(
	"StorageTransfer must be created via NewStorageTransfer or RestoreStorageTransfer",
)

// Storage location kinds appearing in the audit trail.
const (
	LocationGrinding = "GRINDING"
	LocationShallow  = "SHALLOW"
	LocationGodown   = "GODOWN"
)

// StorageTransfer is one audit row of product moving between storage
// locations during packaging. SourceID is nil when the product comes
// straight off the mill.
type StorageTransfer struct {
	id              kernel.UUID
	sourceType      string
	sourceID        *kernel.UUID
	destinationType string
	destinationID   kernel.UUID
	productType     string
	quantity        float64
	transferDate    time.Time

	isConstructed bool
}

// NewStorageTransfer records one movement of product into a storage location.
func NewStorageTransfer(
	id kernel.UUID,
	sourceType string,
	sourceID *kernel.UUID,
	destinationType string,
	destinationID kernel.UUID,
	productType string,
	quantity float64,
	transferDate time.Time,
) (*StorageTransfer, error) {
	if err := errors.Join(id.Validate(), destinationID.Validate()); err != nil {
		return nil, err
	}
	if sourceID != nil {
		if err := sourceID.Validate(); err != nil {
			return nil, err
		}
	}
	if sourceType == "" {
		return nil, errs.NewValueIsRequiredError("source type")
	}
	if destinationType == "" {
		return nil, errs.NewValueIsRequiredError("destination type")
	}
	if productType == "" {
		return nil, errs.NewValueIsRequiredError("product type")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%v is not greater than 0", quantity),
		)
	}
	return &StorageTransfer{
		id:              id,
		sourceType:      sourceType,
		sourceID:        sourceID,
		destinationType: destinationType,
		destinationID:   destinationID,
		productType:     productType,
		quantity:        quantity,
		transferDate:    transferDate,
		isConstructed:   true,
	}, nil
}

// RestoreStorageTransfer reconstructs an audit row from persistence.
func RestoreStorageTransfer(
	id kernel.UUID,
	sourceType string,
	sourceID *kernel.UUID,
	destinationType string,
	destinationID kernel.UUID,
	productType string,
	quantity float64,
	transferDate time.Time,
) *StorageTransfer {
	return &StorageTransfer{
		id:              id,
		sourceType:      sourceType,
		sourceID:        sourceID,
		destinationType: destinationType,
		destinationID:   destinationID,
		productType:     productType,
		quantity:        quantity,
		transferDate:    transferDate,
		isConstructed:   true,
	}
}

// Validate ensures the transfer was built via its constructors.
func (s *StorageTransfer) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStorageTransferIsNotConstructed
	}
	return nil
}

// ID returns the audit row's unique identifier.
func (s *StorageTransfer) ID() kernel.UUID { return s.id }

// SourceType returns the kind of location the product left.
func (s *StorageTransfer) SourceType() string { return s.sourceType }

// SourceID returns the source location, nil when product comes off the mill.
func (s *StorageTransfer) SourceID() *kernel.UUID { return s.sourceID }

// DestinationType returns the kind of location the product entered.
func (s *StorageTransfer) DestinationType() string { return s.destinationType }

// DestinationID returns the destination location.
func (s *StorageTransfer) DestinationID() kernel.UUID { return s.destinationID }

// ProductType returns the moved product.
func (s *StorageTransfer) ProductType() string { return s.productType }

// Quantity returns the moved quantity in tons.
func (s *StorageTransfer) Quantity() float64 { return s.quantity }

// TransferDate returns when the movement happened.
func (s *StorageTransfer) TransferDate() time.Time { return s.transferDate }
