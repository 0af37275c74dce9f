package arith

import (
	"fmt"
	"math"
)

// VonMangoldt computes the von Mangoldt table Lambda(k) for k = 1..K:
// log p when k is a power of the prime p, zero otherwise. The returned
// slice has length K+1 with index 0 unused (set to zero).
func VonMangoldt(K int) ([]float64, error) {
	if K < 0 {
		return nil, fmt.Errorf("truncation bound must be nonnegative, got %d", K)
	}

	lambda := make([]float64, K+1)
	for _, p := range primesUpTo(K) {
		logP := math.Log(float64(p))
		for q := p; q <= K; q *= p {
			lambda[q] = logP
			// Guard q*p overflow for primes near K.
			if q > K/p {
				break
			}
		}
	}
	return lambda, nil
}

// primesUpTo returns all primes <= n via a sieve of Eratosthenes.
func primesUpTo(n int) []int {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	var primes []int
	for p := 2; p <= n; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		for q := p * p; q <= n; q += p {
			composite[q] = true
		}
	}
	return primes
}
