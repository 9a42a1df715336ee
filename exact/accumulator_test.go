package exact_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/strnum/exact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAccumulator_Chain computes (7*6 + 8) floorDiv 5 without errors.
func TestAccumulator_Chain(t *testing.T) {
	got, err := exact.NewAccumulator[int32](7).Multiply(6).Add(8).FloorDiv(5).Result()
	require.NoError(t, err)
	assert.Equal(t, int32(10), got)
}

// TestAccumulator_ShortCircuit ensures the first failure is kept unchanged
// even when later steps would fail differently.
func TestAccumulator_ShortCircuit(t *testing.T) {
	acc := exact.NewAccumulator[int32](math.MaxInt32)
	acc.Add(1)
	first := acc.Err()
	require.ErrorIs(t, first, exact.ErrOverflow)

	acc.FloorDiv(0).Subtract(1).FloorMod(0)

	got, err := acc.Result()
	assert.Zero(t, got)
	assert.Same(t, first, err, "the original error must be propagated")
	assert.False(t, errors.Is(err, exact.ErrDivisionByZero))
}
