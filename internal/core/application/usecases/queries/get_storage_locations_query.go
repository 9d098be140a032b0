package queries

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var ErrGetStorageLocationsQueryIsNotConstructed = errors.New(
	"GetStorageLocationsQuery must be created via NewGetStorageLocationsQuery constructor",
)

// GetStorageLocationsQuery retrieves all maida shallows and finished-goods
// godowns for the storage view.
type GetStorageLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStorageLocationsQuery creates a parameterless storage query.
func NewGetStorageLocationsQuery() GetStorageLocationsQuery {
	return GetStorageLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStorageLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetStorageLocationsQueryIsNotConstructed)
}

// ShallowResponse is the flat read model of one maida shallow.
type ShallowResponse struct {
	ID              kernel.UUID
	Name            string
	Code            string
	Capacity        float64
	CurrentQuantity float64
	ProductType     string
}

// GodownResponse is the flat read model of one finished-goods godown.
type GodownResponse struct {
	ID              kernel.UUID
	Name            string
	Code            string
	Capacity        float64
	CurrentQuantity float64
	Location        string
}

// StorageLocationsResponse bundles both storage kinds.
type StorageLocationsResponse struct {
	Shallows []ShallowResponse
	Godowns  []GodownResponse
}
