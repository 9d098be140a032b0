package guard_test

import (
	"errors"
	"testing"

	"flourmill/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Tonnage struct {
		tons  float64
		guard guard.ConstructorGuard
	}

	var errTonnageNotConstructed = errors.New("Tonnage must be created via NewTonnage")

	newTonnage := func(tons float64) (Tonnage, error) {
		if tons < 0 {
			return Tonnage{}, errors.New("tons cannot be negative")
		}
		return Tonnage{tons: tons, guard: guard.NewConstructorGuard()}, nil
	}

	validateTonnage := func(q Tonnage) error {
		return q.guard.Validate(errTonnageNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		q, err := newTonnage(100)

		require.NoError(t, err)
		require.NoError(t, validateTonnage(q))
		assert.InDelta(t, 100.0, q.tons, 0.0001)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var q Tonnage // zero value

		err := validateTonnage(q)

		require.Error(t, err)
		assert.Equal(t, errTonnageNotConstructed, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}
