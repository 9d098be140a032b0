package order_test

import (
	"testing"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/order"
	"flourmill/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "WF-2026-001", "Wheat Flour", 100, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_in_created_stage", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.Created, o.Stage())
		assert.Equal(t, "WF-2026-001", o.OrderNumber())
		assert.Equal(t, "Wheat Flour", o.ProductType())
		assert.InDelta(t, 100.0, o.Quantity(), 0.0001)
		require.NoError(t, o.Validate())
	})

	t.Run("rejects_zero_uuid", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, "WF-2026-001", "Wheat Flour", 100, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects_empty_order_number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", "Wheat Flour", 100, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_empty_product_type", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "WF-2026-001", "", 100, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "WF-2026-001", "Wheat Flour", 0, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewOrder(kernel.NewUUID(), "WF-2026-001", "Wheat Flour", -5, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_stage", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "MD-2026-007", "Maida", 50, order.GrindingInProgress, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.GrindingInProgress, o.Stage())
	})

	t.Run("rejects_invalid_stage", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "MD-2026-007", "Maida", 50, order.Unknown, time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_StageAdvancement(t *testing.T) {
	t.Run("walks_whole_lifecycle", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.MarkPlanned())
		require.NoError(t, o.BeginBlendedTransfer())
		require.NoError(t, o.BeginBlendedTransfer()) // second destination bin start
		require.NoError(t, o.CompleteBlendedTransfer())
		require.NoError(t, o.CompleteSequentialTransfer())
		require.NoError(t, o.BeginGrinding())
		require.NoError(t, o.CompleteGrinding())
		require.NoError(t, o.CompletePackaging())
		require.NoError(t, o.CompletePackaging()) // repeated packaging allowed

		assert.Equal(t, order.PackagingCompleted, o.Stage())
	})

	t.Run("rejected_transition_leaves_stage_unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.BeginGrinding()

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Created, o.Stage())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	o1 := newTestOrder(t)
	o2 := newTestOrder(t)

	assert.True(t, o1.IsEqual(o1))
	assert.False(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(nil))
}
