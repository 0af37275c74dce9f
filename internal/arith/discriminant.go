package arith

// IsSquareFree reports whether |n| has no squared prime divisor.
// 1 is square-free; 0 is not.
func IsSquareFree(n int64) bool {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return false
	}
	if n == 1 {
		return true
	}
	if n%4 == 0 {
		return false
	}
	for p := int64(2); p*p <= n; p++ {
		if n%(p*p) == 0 {
			return false
		}
	}
	return true
}

// IsFundamental reports whether d is a fundamental discriminant of a
// quadratic field: either d = 1 mod 4 with |d| square-free, or d = 0 mod 4
// with q = d/4 square-free and q = 2 or 3 mod 4.
//
// Sweep drivers use this to skip non-fundamental values silently; the
// verification engine itself assumes the caller has already filtered.
func IsFundamental(d int64) bool {
	if d == 0 {
		return false
	}
	switch mod4(d) {
	case 1:
		return IsSquareFree(d)
	case 0:
		q := d / 4
		m := mod4(q)
		return (m == 2 || m == 3) && IsSquareFree(q)
	default:
		return false
	}
}

// mod4 is the nonnegative residue of n modulo 4.
func mod4(n int64) int64 {
	return ((n % 4) + 4) % 4
}
