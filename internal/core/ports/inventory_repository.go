package ports

import (
	"context"

	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
)

// BinRepository defines the persistence contract for process bins
// (PRE_CLEAN, 24HR and 12HR).
type BinRepository interface {
	// Add persists a new bin.
	Add(ctx context.Context, bin *inventory.Bin) error

	// Update persists changes to an existing bin, including its quantity.
	Update(ctx context.Context, bin *inventory.Bin) error

	// Get retrieves a bin by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Bin, error)

	// GetAll retrieves every bin, grouped by type then name.
	GetAll(ctx context.Context) ([]*inventory.Bin, error)

	// Delete removes a bin from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}

// ShallowRepository defines the persistence contract for maida shallows.
type ShallowRepository interface {
	// Add persists a new shallow.
	Add(ctx context.Context, shallow *inventory.Shallow) error

	// Update persists changes to an existing shallow.
	Update(ctx context.Context, shallow *inventory.Shallow) error

	// Get retrieves a shallow by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Shallow, error)

	// GetAll retrieves every shallow ordered by name.
	GetAll(ctx context.Context) ([]*inventory.Shallow, error)

	// Delete removes a shallow from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}

// GodownRepository defines the persistence contract for finished-goods
// godowns.
type GodownRepository interface {
	// Add persists a new godown.
	Add(ctx context.Context, godown *inventory.Godown) error

	// Update persists changes to an existing godown.
	Update(ctx context.Context, godown *inventory.Godown) error

	// Get retrieves a godown by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Godown, error)

	// GetAll retrieves every godown ordered by name.
	GetAll(ctx context.Context) ([]*inventory.Godown, error)

	// Delete removes a godown from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
