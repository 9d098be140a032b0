package queries

import (
	"context"

	"gorm.io/gorm"

	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
)

// GetStorageLocationsQueryHandler retrieves all shallows and godowns from
// the database.
type GetStorageLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetStorageLocationsQueryHandler creates a handler for the storage
// query.
func NewGetStorageLocationsQueryHandler(db *gorm.DB) GetStorageLocationsQueryHandler {
	return GetStorageLocationsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetStorageLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetStorageLocationsQuery,
) (StorageLocationsResponse, error) {
	if err := query.Validate(); err != nil {
		return StorageLocationsResponse{}, err
	}

	shallows, err := h.loadShallows(ctx)
	if err != nil {
		return StorageLocationsResponse{}, err
	}

	godowns, err := h.loadGodowns(ctx)
	if err != nil {
		return StorageLocationsResponse{}, err
	}

	return StorageLocationsResponse{Shallows: shallows, Godowns: godowns}, nil
}

func (h GetStorageLocationsQueryHandler) loadShallows(ctx context.Context) ([]ShallowResponse, error) {
	shallows := make([]ShallowResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shallow_name,
			shallow_code,
			capacity,
			current_quantity
		FROM maida_shallows
		ORDER BY shallow_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ShallowResponse
		var id string

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Code,
			&resp.Capacity,
			&resp.CurrentQuantity,
		); err != nil {
			return nil, err
		}

		shallowID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shallowID
		resp.ProductType = inventory.ShallowProductType
		shallows = append(shallows, resp)
	}

	return shallows, rows.Err()
}

func (h GetStorageLocationsQueryHandler) loadGodowns(ctx context.Context) ([]GodownResponse, error) {
	godowns := make([]GodownResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			godown_name,
			godown_code,
			capacity,
			current_quantity,
			location
		FROM finished_goods_godowns
		ORDER BY godown_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GodownResponse
		var id string

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Code,
			&resp.Capacity,
			&resp.CurrentQuantity,
			&resp.Location,
		); err != nil {
			return nil, err
		}

		godownID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = godownID
		godowns = append(godowns, resp)
	}

	return godowns, rows.Err()
}
