package packaging_test

import (
	"testing"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/packaging"
	"flourmill/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLooseRecord(t *testing.T) {
	t.Run("stores_loose_tons_as_kilograms", func(t *testing.T) {
		r, err := packaging.NewLooseRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"MAIDA", kernel.NewUUID(), 2.5, time.Now(),
		)
		require.NoError(t, err)

		assert.Equal(t, packaging.StatusPacked, r.Status())
		assert.InDelta(t, 2500, r.TotalKgPacked(), 0.0001)
		assert.InDelta(t, 2.5, r.TotalTonsPacked(), 0.0001)
		require.NotNil(t, r.ShallowID())
		assert.Nil(t, r.GodownID())
		assert.Zero(t, r.NumberOfBags())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := packaging.NewLooseRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"MAIDA", kernel.NewUUID(), 0, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewBaggedRecord(t *testing.T) {
	t.Run("computes_total_from_bags", func(t *testing.T) {
		r, err := packaging.NewBaggedRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"WHEAT FLOUR", kernel.NewUUID(), nil, 50, 40, time.Now(),
		)
		require.NoError(t, err)

		assert.InDelta(t, 2000, r.TotalKgPacked(), 0.0001)
		assert.InDelta(t, 2, r.TotalTonsPacked(), 0.0001)
		require.NotNil(t, r.GodownID())
		assert.Nil(t, r.ShallowID())
	})

	t.Run("keeps_source_shallow_for_rebagging", func(t *testing.T) {
		shallowID := kernel.NewUUID()
		r, err := packaging.NewBaggedRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"MAIDA", kernel.NewUUID(), &shallowID, 25, 80, time.Now(),
		)
		require.NoError(t, err)

		require.NotNil(t, r.ShallowID())
		assert.True(t, r.ShallowID().IsEqual(shallowID))
		assert.InDelta(t, 2000, r.TotalKgPacked(), 0.0001)
	})

	t.Run("rejects_zero_bags", func(t *testing.T) {
		_, err := packaging.NewBaggedRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"MAIDA", kernel.NewUUID(), nil, 50, 0, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_product_type", func(t *testing.T) {
		_, err := packaging.NewBaggedRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", kernel.NewUUID(), nil, 50, 10, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewStorageTransfer(t *testing.T) {
	t.Run("mill_to_shallow_has_no_source_id", func(t *testing.T) {
		st, err := packaging.NewStorageTransfer(
			kernel.NewUUID(),
			packaging.LocationGrinding, nil,
			packaging.LocationShallow, kernel.NewUUID(),
			"MAIDA", 2.5, time.Now(),
		)
		require.NoError(t, err)

		assert.Nil(t, st.SourceID())
		assert.Equal(t, packaging.LocationShallow, st.DestinationType())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := packaging.NewStorageTransfer(
			kernel.NewUUID(),
			packaging.LocationGrinding, nil,
			packaging.LocationGodown, kernel.NewUUID(),
			"MAIDA", -1, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
