package queries

import (
	"errors"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/guard"
)

var ErrGetProductCatalogQueryIsNotConstructed = errors.New(
	"GetProductCatalogQuery must be created via NewGetProductCatalogQuery constructor",
)

// GetProductCatalogQuery retrieves the finished goods and raw products.
type GetProductCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductCatalogQuery creates a parameterless catalog query.
func NewGetProductCatalogQuery() GetProductCatalogQuery {
	return GetProductCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetProductCatalogQueryIsNotConstructed)
}

// FinishedGoodResponse is the flat read model of one finished good.
type FinishedGoodResponse struct {
	ID          kernel.UUID
	ProductName string
	InitialName string
}

// RawProductResponse is the flat read model of one raw product.
type RawProductResponse struct {
	ID          kernel.UUID
	ProductName string
}

// ProductCatalogResponse bundles the whole catalog.
type ProductCatalogResponse struct {
	FinishedGoods []FinishedGoodResponse
	RawProducts   []RawProductResponse
}
