// Package testutil provides deterministic fixtures shared by package tests:
// small synthetic arithmetic tables and known zero ordinates for
// discriminants with well-documented first zeros.
package testutil

import "math"

// ChiMod5 builds the Kronecker table chi_5(k) for k = 1..K in the 1-based
// slice layout. chi_5 is the Legendre symbol mod 5: +1 on residues 1 and 4,
// -1 on residues 2 and 3, 0 on multiples of 5.
func ChiMod5(K int) []int8 {
	pattern := []int8{0, 1, -1, -1, 1}
	chi := make([]int8, K+1)
	for k := 1; k <= K; k++ {
		chi[k] = pattern[k%5]
	}
	return chi
}

// Lambda builds the von Mangoldt table Lambda(k) for k = 1..K in the
// 1-based slice layout, by trial division. Fine for the small K used in
// tests; production tables come from the sieve in the arith package.
func Lambda(K int) []float64 {
	lambda := make([]float64, K+1)
	for k := 2; k <= K; k++ {
		if p, ok := primePowerBase(k); ok {
			lambda[k] = math.Log(float64(p))
		}
	}
	return lambda
}

// primePowerBase returns (p, true) when n = p^m for a prime p.
func primePowerBase(n int) (int, bool) {
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		for n%p == 0 {
			n /= p
		}
		return p, n == 1
	}
	// n itself is prime.
	return n, true
}

// FirstZeroD5 is the ordinate of the first nontrivial zero of L(s, chi_5),
// accurate to the digits shown. Used as a realistic single-zero fixture.
const FirstZeroD5 = 4.13290092587

// ZerosD5 lists the first few zero ordinates of L(s, chi_5) in ascending
// order, enough for the adaptive driver tests to fetch several chunks.
var ZerosD5 = []float64{
	4.13290092587,
	6.18357819545,
	8.45722917442,
	9.65244482911,
	11.83931025754,
	13.26731310548,
	14.53752867523,
	15.74948383933,
	16.95076093800,
	18.62470286681,
}
