package inequality

// Iota bounds the maximum contribution of zeros missing from the window of
// half-height eta. It is the minimum of two positive expressions in eta,
// both finite for every real eta, so there are no failure modes.
//
// Iota(0) = 12/9 and the function decreases toward zero as eta grows.
func Iota(eta float64) float64 {
	eta2 := eta * eta
	term1 := 1.0/(1.0+eta2) + 2.0/(4.0+eta2)
	term2 := 12.0 / (9.0 + 4.0*eta2)
	if term1 < term2 {
		return term1
	}
	return term2
}
