package kernel

import "math"

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// isValidJD reports whether jd is a Julian date the kernel will accept:
// finite and strictly positive, per the Data Model's invariant on a UTC
// or TT Julian date.
func isValidJD(jd float64) bool {
	return isFinite(jd) && jd > 0
}

func nan() float64 {
	return math.NaN()
}
