package inequality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIota_ClosedForm checks the two points where the minimum is known in
// closed form: at eta=0 the second branch wins (12/9), at eta=1 the first
// (1/2 + 2/5).
func TestIota_ClosedForm(t *testing.T) {
	assert.InDelta(t, 12.0/9.0, Iota(0), 1e-15)
	assert.InDelta(t, 0.9, Iota(1), 1e-15)
}

func TestIota_PositiveAndDecreasing(t *testing.T) {
	prev := Iota(0)
	for _, eta := range []float64{0.1, 0.5, 1, 2, 5, 10, 100} {
		v := Iota(eta)
		assert.Greater(t, v, 0.0, "iota(%g) must be positive", eta)
		assert.Less(t, v, prev, "iota must decrease toward larger eta")
		prev = v
	}
}
