package inequality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDerivative_EmptyTruncation(t *testing.T) {
	// K = 0 contributes nothing regardless of table contents.
	got, err := LogDerivative([]int8{0, 1, -1}, []float64{0, 0.5, 0.7}, 0)
	require.NoError(t, err)
	assert.Zero(t, got)

	// Nil tables are fine too: there is no k in 1..0 to look up.
	got, err = LogDerivative(nil, nil, 0)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestLogDerivative_KnownSmallSum(t *testing.T) {
	// chi = [_, 1, -1, 0], lambda = [_, 0, ln2, ln3], K = 3:
	// k=1 has lambda 0, k=2 contributes +ln2/4, k=3 is skipped (chi=0).
	chi := []int8{0, 1, -1, 0}
	lambda := []float64{0, 0, math.Log(2), math.Log(3)}

	got, err := LogDerivative(chi, lambda, 3)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2)/4.0, got, 1e-15)
}

func TestLogDerivative_SignConvention(t *testing.T) {
	// A positive chi(k) with positive lambda(k) lowers the sum.
	chi := []int8{0, 0, 1}
	lambda := []float64{0, 0, math.Log(2)}

	got, err := LogDerivative(chi, lambda, 2)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(2)/4.0, got, 1e-15)
}

func TestLogDerivative_TableRange(t *testing.T) {
	t.Run("kronecker too short", func(t *testing.T) {
		_, err := LogDerivative([]int8{0, 1}, []float64{0, 0, 0, 0}, 3)
		require.Error(t, err)
		require.True(t, IsTableRangeError(err))

		var tre *TableRangeError
		require.ErrorAs(t, err, &tre)
		assert.Equal(t, "kronecker", tre.Table)
		assert.Equal(t, 3, tre.K)
		assert.Equal(t, 1, tre.Have)
	})

	t.Run("von mangoldt too short", func(t *testing.T) {
		_, err := LogDerivative([]int8{0, 1, 1, 1}, []float64{0, 0}, 3)
		require.Error(t, err)

		var tre *TableRangeError
		require.ErrorAs(t, err, &tre)
		assert.Equal(t, "von_mangoldt", tre.Table)
	})

	t.Run("negative K", func(t *testing.T) {
		_, err := LogDerivative([]int8{0}, []float64{0}, -1)
		require.Error(t, err)
		assert.False(t, IsTableRangeError(err))
	})
}

func TestRemainderBound(t *testing.T) {
	_, err := RemainderBound(17)
	require.Error(t, err)

	got, err := RemainderBound(100)
	require.NoError(t, err)
	assert.InDelta(t, (8.55/math.Log(100)+1.0)/100.0, got, 1e-15)
	assert.Greater(t, got, 0.0)
}
