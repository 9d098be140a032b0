package ports

import (
	"context"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product
// catalog: finished goods and raw products.
type ProductRepository interface {
	// AddFinishedGood persists a new finished good.
	AddFinishedGood(ctx context.Context, fg *product.FinishedGood) error

	// GetFinishedGoodByName retrieves a finished good by its product
	// name. Order creation uses this to resolve the number prefix.
	GetFinishedGoodByName(ctx context.Context, productName string) (*product.FinishedGood, error)

	// GetAllFinishedGoods retrieves the catalog ordered by name.
	GetAllFinishedGoods(ctx context.Context) ([]*product.FinishedGood, error)

	// DeleteFinishedGood removes a finished good from the catalog.
	DeleteFinishedGood(ctx context.Context, id kernel.UUID) error

	// AddRawProduct persists a new raw product.
	AddRawProduct(ctx context.Context, rp *product.RawProduct) error

	// GetAllRawProducts retrieves the raw products ordered by name.
	GetAllRawProducts(ctx context.Context) ([]*product.RawProduct, error)

	// DeleteRawProduct removes a raw product.
	DeleteRawProduct(ctx context.Context, id kernel.UUID) error
}
