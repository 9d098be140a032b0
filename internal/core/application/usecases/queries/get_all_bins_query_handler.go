package queries

import (
	"context"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/kernel"
)

// GetAllBinsQueryHandler retrieves all bins from the database, grouped by
// type then name.
type GetAllBinsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllBinsQueryHandler creates a handler for the bin list query.
func NewGetAllBinsQueryHandler(db *gorm.DB) GetAllBinsQueryHandler {
	return GetAllBinsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllBinsQueryHandler) Handle(
	ctx context.Context,
	query GetAllBinsQuery,
) ([]BinResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bins := make([]BinResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			bin_name,
			bin_type,
			capacity,
			current_quantity,
			identity_number
		FROM bins
		ORDER BY bin_type, bin_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp BinResponse
		var id string

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.BinType,
			&resp.Capacity,
			&resp.CurrentQuantity,
			&resp.IdentityNumber,
		); err != nil {
			return nil, err
		}

		binID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = binID
		bins = append(bins, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bins, nil
}
