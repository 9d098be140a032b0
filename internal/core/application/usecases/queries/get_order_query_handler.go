package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves one order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for the single-order query.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query, returning an object-not-found error when no
// order carries the id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	var id string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			product_type,
			quantity,
			production_stage,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&resp.ProductType,
		&resp.Quantity,
		&resp.ProductionStage,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	return resp, nil
}
