package queries

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var ErrGetAllBinsQueryIsNotConstructed = errors.New(
	"GetAllBinsQuery must be created via NewGetAllBinsQuery constructor",
)

// GetAllBinsQuery retrieves every process bin for the inventory view.
type GetAllBinsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllBinsQuery creates a parameterless query for all bins.
func NewGetAllBinsQuery() GetAllBinsQuery {
	return GetAllBinsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllBinsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllBinsQueryIsNotConstructed)
}

// BinResponse is the flat read model of one process bin.
type BinResponse struct {
	ID              kernel.UUID
	Name            string
	BinType         string
	Capacity        float64
	CurrentQuantity float64
	IdentityNumber  string
}
