package inventory_test

import (
	"math/rand"
	"testing"

	"flourmill/internal/core/domain/model/inventory"
	"flourmill/internal/core/domain/model/kernel"
	"flourmill/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBin(t *testing.T, binType inventory.BinType, capacity float64) *inventory.Bin {
	t.Helper()
	b, err := inventory.NewBin(kernel.NewUUID(), "Test Bin", binType, capacity, "T-01")
	require.NoError(t, err)
	return b
}

func TestNewBin(t *testing.T) {
	t.Run("creates_empty_bin", func(t *testing.T) {
		b := newTestBin(t, inventory.PreClean, 500)

		assert.InDelta(t, 0.0, b.CurrentQuantity(), 0.0001)
		assert.InDelta(t, 500.0, b.Capacity(), 0.0001)
		assert.InDelta(t, 500.0, b.AvailableSpace(), 0.0001)
		assert.Equal(t, inventory.PreClean, b.BinType())
		require.NoError(t, b.Validate())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := inventory.NewBin(kernel.NewUUID(), "", inventory.PreClean, 500, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unknown_bin_type", func(t *testing.T) {
		_, err := inventory.NewBin(kernel.NewUUID(), "Bin", inventory.BinTypeUnknown, 500, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_non_positive_capacity", func(t *testing.T) {
		_, err := inventory.NewBin(kernel.NewUUID(), "Bin", inventory.TwelveHour, 0, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBinTypeFromString(t *testing.T) {
	for _, bt := range []inventory.BinType{inventory.PreClean, inventory.TwentyFourHour, inventory.TwelveHour} {
		parsed, err := inventory.BinTypeFromString(bt.String())
		require.NoError(t, err)
		assert.Equal(t, bt, parsed)
	}

	_, err := inventory.BinTypeFromString("SILO")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBin_Deposit(t *testing.T) {
	t.Run("deposits_within_capacity", func(t *testing.T) {
		b := newTestBin(t, inventory.TwentyFourHour, 300)

		require.NoError(t, b.Deposit(60))
		require.NoError(t, b.Deposit(40))

		assert.InDelta(t, 100.0, b.CurrentQuantity(), 0.0001)
		assert.InDelta(t, 200.0, b.AvailableSpace(), 0.0001)
	})

	t.Run("rejects_overflow", func(t *testing.T) {
		b := newTestBin(t, inventory.TwelveHour, 25)
		require.NoError(t, b.Deposit(20))

		err := b.Deposit(10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.InDelta(t, 20.0, b.CurrentQuantity(), 0.0001)
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		b := newTestBin(t, inventory.TwelveHour, 25)
		require.ErrorIs(t, b.Deposit(-1), errs.ErrValueIsInvalid)
	})
}

func TestBin_Withdraw(t *testing.T) {
	t.Run("withdraws_available_stock", func(t *testing.T) {
		b := newTestBin(t, inventory.TwentyFourHour, 300)
		require.NoError(t, b.Deposit(100))

		require.NoError(t, b.Withdraw(50))

		assert.InDelta(t, 50.0, b.CurrentQuantity(), 0.0001)
	})

	t.Run("rejects_overdraw", func(t *testing.T) {
		b := newTestBin(t, inventory.TwentyFourHour, 300)
		require.NoError(t, b.Deposit(30))

		err := b.Withdraw(31)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.InDelta(t, 30.0, b.CurrentQuantity(), 0.0001)
	})
}

func TestBin_Draw(t *testing.T) {
	t.Run("draw_has_no_floor_check", func(t *testing.T) {
		// Blended transfers deduct per-source contributions without checking
		// availability, so a short source bin goes negative.
		b := newTestBin(t, inventory.PreClean, 500)
		require.NoError(t, b.Deposit(10))

		require.NoError(t, b.Draw(30))

		assert.InDelta(t, -20.0, b.CurrentQuantity(), 0.0001)
		assert.InDelta(t, 500.0, b.AvailableSpace(), 0.0001) // space never reported above capacity
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		b := newTestBin(t, inventory.PreClean, 500)
		require.ErrorIs(t, b.Draw(-5), errs.ErrValueIsInvalid)
	})
}

func TestBin_RandomWalkStaysWithinBounds(t *testing.T) {
	// Draw aside, no sequence of deposits and withdrawals may move the
	// quantity outside [0, capacity]: rejected calls must leave the bin
	// untouched and accepted calls must land inside the bounds.
	rng := rand.New(rand.NewSource(1))
	b := newTestBin(t, inventory.TwentyFourHour, 300)

	for i := 0; i < 1000; i++ {
		amount := rng.Float64()*400 - 50 // includes negative and overflowing amounts
		before := b.CurrentQuantity()

		var err error
		if rng.Intn(2) == 0 {
			err = b.Deposit(amount)
		} else {
			err = b.Withdraw(amount)
		}
		if err != nil {
			assert.InDelta(t, before, b.CurrentQuantity(), 0.0001)
		}

		require.GreaterOrEqual(t, b.CurrentQuantity(), 0.0)
		require.LessOrEqual(t, b.CurrentQuantity(), b.Capacity())
	}
}

func TestRestoreBin(t *testing.T) {
	t.Run("restores_stored_quantity", func(t *testing.T) {
		id := kernel.NewUUID()
		b, err := inventory.RestoreBin(id, "24HR Bin 1", inventory.TwentyFourHour, 300, 120, "24HR-01")

		require.NoError(t, err)
		assert.InDelta(t, 120.0, b.CurrentQuantity(), 0.0001)
		assert.Equal(t, "24HR-01", b.IdentityNumber())
	})

	t.Run("accepts_negative_stored_quantity", func(t *testing.T) {
		// A bin left negative by an unchecked blended-transfer draw must still
		// load, otherwise the record becomes unreadable.
		b, err := inventory.RestoreBin(kernel.NewUUID(), "PC 1", inventory.PreClean, 500, -12.5, "PC-01")

		require.NoError(t, err)
		assert.InDelta(t, -12.5, b.CurrentQuantity(), 0.0001)
	})
}

func TestShallow(t *testing.T) {
	t.Run("deposit_and_withdraw_respect_bounds", func(t *testing.T) {
		s, err := inventory.NewShallow(kernel.NewUUID(), "Shallow 1", "SH-01", 200)
		require.NoError(t, err)

		require.NoError(t, s.Deposit(150))
		require.ErrorIs(t, s.Deposit(51), errs.ErrValueIsOutOfRange)
		require.NoError(t, s.Withdraw(150))
		require.ErrorIs(t, s.Withdraw(1), errs.ErrValueIsOutOfRange)
	})

	t.Run("restore_rejects_out_of_range_quantity", func(t *testing.T) {
		_, err := inventory.RestoreShallow(kernel.NewUUID(), "Shallow 1", "SH-01", 200, 250)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGodown(t *testing.T) {
	t.Run("deposit_and_withdraw_respect_bounds", func(t *testing.T) {
		g, err := inventory.NewGodown(kernel.NewUUID(), "FG Godown 1", "FGG-01", 5000, "Warehouse A")
		require.NoError(t, err)

		require.NoError(t, g.Deposit(4999))
		require.ErrorIs(t, g.Deposit(2), errs.ErrValueIsOutOfRange)
		require.NoError(t, g.Withdraw(4999))
		require.ErrorIs(t, g.Withdraw(0.5), errs.ErrValueIsOutOfRange)
	})

	t.Run("requires_code", func(t *testing.T) {
		_, err := inventory.NewGodown(kernel.NewUUID(), "FG Godown 1", "", 5000, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
