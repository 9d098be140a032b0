package order_test

import (
	"testing"

	"flourmill/internal/core/domain/model/order"
	"flourmill/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_String(t *testing.T) {
	tests := []struct {
		stage    order.Stage
		expected string
	}{
		{order.Created, "CREATED"},
		{order.Planned, "PLANNED"},
		{order.TransferPreTo24InProgress, "TRANSFER_PRE_TO_24_IN_PROGRESS"},
		{order.TransferPreTo24Completed, "TRANSFER_PRE_TO_24_COMPLETED"},
		{order.Transfer24To12Completed, "TRANSFER_24_TO_12_COMPLETED"},
		{order.GrindingInProgress, "GRINDING_IN_PROGRESS"},
		{order.GrindingCompleted, "GRINDING_COMPLETED"},
		{order.PackagingCompleted, "PACKAGING_COMPLETED"},
		{order.Unknown, "UNKNOWN"},
		{order.Stage(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stage.String())
		})
	}
}

func TestStageFromString(t *testing.T) {
	t.Run("round_trips_all_valid_stages", func(t *testing.T) {
		stages := []order.Stage{
			order.Created, order.Planned,
			order.TransferPreTo24InProgress, order.TransferPreTo24Completed,
			order.Transfer24To12Completed,
			order.GrindingInProgress, order.GrindingCompleted,
			order.PackagingCompleted,
		}
		for _, s := range stages {
			parsed, err := order.StageFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_name", func(t *testing.T) {
		_, err := order.StageFromString("SHIPPED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unknown_stage_name", func(t *testing.T) {
		_, err := order.StageFromString("UNKNOWN")
		require.Error(t, err)
	})
}

func TestStage_LinearProgression(t *testing.T) {
	t.Run("full_happy_path", func(t *testing.T) {
		s := order.Created

		s, err := s.Plan()
		require.NoError(t, err)
		assert.Equal(t, order.Planned, s)

		s, err = s.StartBlendedTransfer()
		require.NoError(t, err)
		assert.Equal(t, order.TransferPreTo24InProgress, s)

		s, err = s.CompleteBlendedTransfer()
		require.NoError(t, err)
		assert.Equal(t, order.TransferPreTo24Completed, s)

		s, err = s.CompleteSequentialTransfer()
		require.NoError(t, err)
		assert.Equal(t, order.Transfer24To12Completed, s)

		s, err = s.StartGrinding()
		require.NoError(t, err)
		assert.Equal(t, order.GrindingInProgress, s)

		s, err = s.CompleteGrinding()
		require.NoError(t, err)
		assert.Equal(t, order.GrindingCompleted, s)

		s, err = s.CompletePackaging()
		require.NoError(t, err)
		assert.Equal(t, order.PackagingCompleted, s)
	})

	t.Run("starting_blended_transfer_twice_keeps_stage", func(t *testing.T) {
		s := order.TransferPreTo24InProgress

		s, err := s.StartBlendedTransfer()

		require.NoError(t, err)
		assert.Equal(t, order.TransferPreTo24InProgress, s)
	})

	t.Run("packaging_is_repeatable", func(t *testing.T) {
		s := order.PackagingCompleted

		s, err := s.CompletePackaging()

		require.NoError(t, err)
		assert.Equal(t, order.PackagingCompleted, s)
	})
}

func TestStage_RejectsOutOfOrderTransitions(t *testing.T) {
	t.Run("cannot_skip_planning", func(t *testing.T) {
		_, err := order.Created.StartBlendedTransfer()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("cannot_grind_before_sequential_transfer", func(t *testing.T) {
		_, err := order.TransferPreTo24Completed.StartGrinding()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("cannot_plan_twice", func(t *testing.T) {
		_, err := order.Planned.Plan()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("no_transition_moves_backwards", func(t *testing.T) {
		_, err := order.GrindingCompleted.StartGrinding()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)

		_, err = order.PackagingCompleted.CompleteGrinding()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("cannot_package_before_grinding_completes", func(t *testing.T) {
		_, err := order.GrindingInProgress.CompletePackaging()
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestStage_Validate(t *testing.T) {
	require.NoError(t, order.Created.Validate())
	require.NoError(t, order.PackagingCompleted.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Stage(42).Validate())
}
