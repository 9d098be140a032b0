// Package queries contains read-side operations that bypass the domain
// aggregates and read directly from the store. Handlers run raw SQL through
// gorm and return flat read models shaped for the API layer.
package queries

import (
	"errors"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every production order for the order list view.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a parameterless query for all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderResponse is the flat read model of one production order.
type OrderResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	ProductType     string
	Quantity        float64
	ProductionStage string
	CreatedAt       time.Time
}
