package mathutil

import "math"

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits x to [lo, hi]. When hi < lo the range collapses to lo.
func IntClamp(x, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return IntMax(lo, IntMin(hi, x))
}

// IntSign returns -1, 0, or 1 based on sign.
func IntSign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// IntMod is the modulo that always lands in [0, n) for n > 0, used for wrapping indices.
func IntMod(x, n int) int {
	if n <= 0 {
		return 0
	}
	m := x % n
	if m < 0 {
		m += n
	}
	return m
}

// ceilEpsilon absorbs float noise such as 10*1.1 == 11.000000000000002.
const ceilEpsilon = 1e-9

// CeilMul returns ceil(base * factor) as an int. Prices go through here so a
// fractional multiplier never undercharges.
func CeilMul(base int, factor float64) int {
	return int(math.Ceil(float64(base)*factor - ceilEpsilon))
}
