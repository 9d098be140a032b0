package transfer_test

import (
	"testing"
	"time"

	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/core/domain/model/transfer"
	"flourmill/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Transitions(t *testing.T) {
	t.Run("ready_starts", func(t *testing.T) {
		s, err := transfer.Ready.Start()
		require.NoError(t, err)
		assert.Equal(t, transfer.InProgress, s)
	})

	t.Run("in_progress_stops", func(t *testing.T) {
		s, err := transfer.InProgress.Stop()
		require.NoError(t, err)
		assert.Equal(t, transfer.Completed, s)
	})

	t.Run("starting_twice_is_rejected", func(t *testing.T) {
		_, err := transfer.InProgress.Start()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("completed_is_final", func(t *testing.T) {
		_, err := transfer.Completed.Start()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)

		_, err = transfer.Completed.Stop()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("ready_cannot_stop", func(t *testing.T) {
		_, err := transfer.Ready.Stop()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestStatusFromString(t *testing.T) {
	for _, s := range []transfer.Status{transfer.Ready, transfer.InProgress, transfer.Completed} {
		parsed, err := transfer.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := transfer.StatusFromString("PAUSED")
	require.Error(t, err)
}

func newDestinationTransfer(t *testing.T) *transfer.DestinationBinTransfer {
	t.Helper()
	dt, err := transfer.NewDestinationBinTransfer(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 60,
	)
	require.NoError(t, err)
	return dt
}

func TestDestinationBinTransfer(t *testing.T) {
	t.Run("created_ready_with_target", func(t *testing.T) {
		dt := newDestinationTransfer(t)

		assert.Equal(t, transfer.Ready, dt.Status())
		assert.InDelta(t, 60.0, dt.TargetQuantity(), 0.0001)
		assert.Nil(t, dt.StartedAt())
		assert.Nil(t, dt.CompletedAt())
	})

	t.Run("start_then_stop_records_times_and_quantity", func(t *testing.T) {
		dt := newDestinationTransfer(t)
		started := time.Now()
		stopped := started.Add(30 * time.Minute)

		require.NoError(t, dt.Start(started))
		assert.Equal(t, transfer.InProgress, dt.Status())
		require.NotNil(t, dt.StartedAt())

		require.NoError(t, dt.Stop(stopped))
		assert.Equal(t, transfer.Completed, dt.Status())
		assert.InDelta(t, 60.0, dt.TransferredQuantity(), 0.0001)
		require.NotNil(t, dt.CompletedAt())
	})

	t.Run("double_start_is_rejected", func(t *testing.T) {
		dt := newDestinationTransfer(t)
		require.NoError(t, dt.Start(time.Now()))

		err := dt.Start(time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("stop_before_start_is_rejected", func(t *testing.T) {
		dt := newDestinationTransfer(t)
		require.ErrorIs(t, dt.Stop(time.Now()), errs.ErrInvalidStateTransition)
	})

	t.Run("rejects_non_positive_target", func(t *testing.T) {
		_, err := transfer.NewDestinationBinTransfer(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSequentialTransferJob(t *testing.T) {
	newJob := func(t *testing.T) *transfer.SequentialTransferJob {
		t.Helper()
		j, err := transfer.NewSequentialTransferJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 50, time.Now(),
		)
		require.NoError(t, err)
		return j
	}

	t.Run("opens_in_progress", func(t *testing.T) {
		j := newJob(t)

		assert.Equal(t, transfer.InProgress, j.Status())
		require.NotNil(t, j.StartedAt())
		assert.InDelta(t, 50.0, j.TransferQuantity(), 0.0001)
	})

	t.Run("complete_records_allocations_and_total", func(t *testing.T) {
		j := newJob(t)

		a1, err := transfer.NewAllocation(kernel.NewUUID(), 1, 25)
		require.NoError(t, err)
		a2, err := transfer.NewAllocation(kernel.NewUUID(), 2, 5)
		require.NoError(t, err)

		moisture := 13.5
		require.NoError(t, j.Complete([]transfer.Allocation{a1, a2}, &moisture, nil, time.Now()))

		assert.Equal(t, transfer.Completed, j.Status())
		assert.InDelta(t, 30.0, j.TotalTransferred(), 0.0001)
		require.Len(t, j.Allocations(), 2)
		assert.Equal(t, 1, j.Allocations()[0].SequenceOrder())
		require.NotNil(t, j.OutgoingMoisture())
		assert.InDelta(t, 13.5, *j.OutgoingMoisture(), 0.0001)
	})

	t.Run("complete_twice_is_rejected", func(t *testing.T) {
		j := newJob(t)
		require.NoError(t, j.Complete(nil, nil, nil, time.Now()))

		err := j.Complete(nil, nil, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := transfer.NewSequentialTransferJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), -1, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewAllocation(t *testing.T) {
	t.Run("zero_quantity_allocation_is_allowed", func(t *testing.T) {
		// Full bins are still recorded to keep the walk auditable.
		a, err := transfer.NewAllocation(kernel.NewUUID(), 3, 0)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, a.QuantityTransferred(), 0.0001)
	})

	t.Run("rejects_bad_sequence_order", func(t *testing.T) {
		_, err := transfer.NewAllocation(kernel.NewUUID(), 0, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
