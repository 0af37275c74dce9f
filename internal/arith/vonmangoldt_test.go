package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVonMangoldt_KnownValues(t *testing.T) {
	lambda, err := VonMangoldt(30)
	require.NoError(t, err)
	require.Len(t, lambda, 31)

	ln2, ln3, ln5 := math.Log(2), math.Log(3), math.Log(5)
	want := map[int]float64{
		1: 0, 2: ln2, 3: ln3, 4: ln2, 5: ln5,
		6: 0, 8: ln2, 9: ln3, 12: 0, 16: ln2,
		25: ln5, 27: ln3, 30: 0,
	}
	for k, v := range want {
		assert.InDelta(t, v, lambda[k], 1e-15, "Lambda(%d)", k)
	}
}

func TestVonMangoldt_SupportedOnPrimePowersOnly(t *testing.T) {
	lambda, err := VonMangoldt(100)
	require.NoError(t, err)

	for k := 1; k <= 100; k++ {
		assert.GreaterOrEqual(t, lambda[k], 0.0)
		if lambda[k] > 0 {
			_, ok := primePowerOf(k)
			assert.True(t, ok, "Lambda(%d) > 0 but %d is not a prime power", k, k)
		}
	}
}

// primePowerOf is an independent trial-division oracle for the test.
func primePowerOf(n int) (int, bool) {
	if n < 2 {
		return 0, false
	}
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		for n%p == 0 {
			n /= p
		}
		return p, n == 1
	}
	return n, true
}

func TestVonMangoldt_EmptyBound(t *testing.T) {
	lambda, err := VonMangoldt(0)
	require.NoError(t, err)
	assert.Len(t, lambda, 1)

	_, err = VonMangoldt(-1)
	require.Error(t, err)
}
