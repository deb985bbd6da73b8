package kernel

import (
	"math"

	"github.com/orbitaldeck/astrokernel/ephem"
	"github.com/orbitaldeck/astrokernel/timescale"
)

const (
	coarseScanDays  = 400.0
	coarseStepDays  = 1.0
	refineHalfWidth = 5.0
	ternaryIters    = 40
)

// NextWinterSolsticeFrom finds the first northern-hemisphere winter
// solstice at or after jdUTCStart, returned as a UTC Julian date.
//
// The search runs entirely in TT: a coarse 1-day-step scan across up to
// 400 days locates the neighborhood of the declination minimum, then 40
// iterations of ternary (thirds) search over a ±5-day bracket around that
// neighborhood converge on the minimum to sub-second precision. The
// result is converted back to UTC before returning.
//
// This is the same coarse-scan-then-refine shape as a generic extrema
// finder, but deliberately not one: the fixed iteration count and fixed
// window are the spec's contract, not a tunable epsilon.
func NextWinterSolsticeFrom(jdUTCStart float64) float64 {
	if !isValidJD(jdUTCStart) {
		return nan()
	}

	jdTT0 := timescale.UTCToTTJD(jdUTCStart)

	bestJD := jdTT0
	bestVal := math.Inf(1)
	for jd := jdTT0; jd <= jdTT0+coarseScanDays; jd += coarseStepDays {
		v := ephem.ApparentSolarDeclination(jd)
		if v < bestVal {
			bestVal = v
			bestJD = jd
		}
	}

	a := bestJD - refineHalfWidth
	b := bestJD + refineHalfWidth
	for i := 0; i < ternaryIters; i++ {
		m1 := a + (b-a)/3.0
		m2 := b - (b-a)/3.0
		if ephem.ApparentSolarDeclination(m1) < ephem.ApparentSolarDeclination(m2) {
			b = m2
		} else {
			a = m1
		}
	}
	jdTTMin := (a + b) / 2.0

	return timescale.TTToUTCJD(jdTTMin)
}
