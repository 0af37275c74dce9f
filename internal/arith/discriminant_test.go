package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSquareFree(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 5, 6, 7, 10, -15, 30} {
		assert.True(t, IsSquareFree(n), "%d", n)
	}
	for _, n := range []int64{0, 4, 8, 9, 12, 18, -28, 50} {
		assert.False(t, IsSquareFree(n), "%d", n)
	}
}

func TestIsFundamental(t *testing.T) {
	fundamental := []int64{1, 5, 8, 12, 13, 17, 21, 24, -3, -4, -7, -8, -11, -15, -20, -163}
	for _, d := range fundamental {
		assert.True(t, IsFundamental(d), "d = %d", d)
	}

	notFundamental := []int64{0, 2, 3, 4, 6, 7, 9, 16, 25, -5, -6, -9, -12, -16}
	for _, d := range notFundamental {
		assert.False(t, IsFundamental(d), "d = %d", d)
	}
}
