package queries

import (
	"context"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/kernel"
)

// GetProductCatalogQueryHandler retrieves the product catalog from the
// database.
type GetProductCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetProductCatalogQueryHandler creates a handler for the catalog query.
func NewGetProductCatalogQueryHandler(db *gorm.DB) GetProductCatalogQueryHandler {
	return GetProductCatalogQueryHandler{db: db}
}

// Handle executes the query.
func (h GetProductCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetProductCatalogQuery,
) (ProductCatalogResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductCatalogResponse{}, err
	}

	finishedGoods := make([]FinishedGoodResponse, 0)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, product_name, initial_name
		FROM finished_goods
		ORDER BY product_name
	`).Rows()
	if err != nil {
		return ProductCatalogResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp FinishedGoodResponse
		var id string

		if err = rows.Scan(&id, &resp.ProductName, &resp.InitialName); err != nil {
			return ProductCatalogResponse{}, err
		}

		productID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return ProductCatalogResponse{}, idErr
		}
		resp.ID = productID
		finishedGoods = append(finishedGoods, resp)
	}
	if err = rows.Err(); err != nil {
		return ProductCatalogResponse{}, err
	}

	rawProducts := make([]RawProductResponse, 0)
	rawRows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, product_name
		FROM raw_products
		ORDER BY product_name
	`).Rows()
	if err != nil {
		return ProductCatalogResponse{}, err
	}
	defer rawRows.Close()

	for rawRows.Next() {
		var resp RawProductResponse
		var id string

		if err = rawRows.Scan(&id, &resp.ProductName); err != nil {
			return ProductCatalogResponse{}, err
		}

		productID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return ProductCatalogResponse{}, idErr
		}
		resp.ID = productID
		rawProducts = append(rawProducts, resp)
	}
	if err = rawRows.Err(); err != nil {
		return ProductCatalogResponse{}, err
	}

	return ProductCatalogResponse{
		FinishedGoods: finishedGoods,
		RawProducts:   rawProducts,
	}, nil
}
