package arith

import (
	"fmt"
	"math/big"
)

// Kronecker computes the Kronecker symbol table chi_d(k) = (d|k) for
// k = 1..K. The returned slice has length K+1 with index 0 unused (set to
// zero), so chi[k] is the character value at k.
//
// The symbol is completely multiplicative in k, so it is assembled from the
// odd part (the Jacobi symbol) and the power-of-two part (the supplementary
// rule at 2). d may be any nonzero integer; callers verifying L-functions
// are expected to pass fundamental discriminants.
func Kronecker(d int64, K int) ([]int8, error) {
	if d == 0 {
		return nil, fmt.Errorf("kronecker symbol undefined for d = 0")
	}
	if K < 0 {
		return nil, fmt.Errorf("truncation bound must be nonnegative, got %d", K)
	}

	chi := make([]int8, K+1)
	dBig := big.NewInt(d)
	var odd big.Int
	for k := 1; k <= K; k++ {
		chi[k] = kroneckerAt(dBig, &odd, int64(k), d)
	}
	return chi, nil
}

// kroneckerAt evaluates (d|k) for a single k >= 1 by splitting k into its
// even and odd parts. dBig and odd are scratch values reused across calls.
func kroneckerAt(dBig *big.Int, odd *big.Int, k, d int64) int8 {
	sym := int8(1)

	// Strip factors of 2, applying the supplementary rule (d|2) per factor.
	for k%2 == 0 {
		two := kroneckerTwo(d)
		if two == 0 {
			return 0
		}
		sym *= two
		k /= 2
	}

	// Remaining odd part is a Jacobi symbol.
	odd.SetInt64(k)
	sym *= int8(big.Jacobi(dBig, odd))
	return sym
}

// kroneckerTwo is the supplementary rule (d|2): zero for even d, +1 when
// d = +-1 mod 8, -1 when d = +-3 mod 8.
func kroneckerTwo(d int64) int8 {
	if d%2 == 0 {
		return 0
	}
	switch ((d % 8) + 8) % 8 {
	case 1, 7:
		return 1
	default: // 3, 5
		return -1
	}
}
