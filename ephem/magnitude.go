package ephem

import "math"

// MagnitudeMuller computes a planet's apparent visual magnitude using the
// older classical formulas attributed to G. Müller (as tabulated in Meeus,
// "Astronomical Algorithms" table 41.2). body is a 0-based planet index
// (Mercury=0 .. Neptune=7); phaseAngleDeg is the Sun-planet-observer
// angle; rAU is the planet's distance from the Sun; deltaAU is its
// distance from the observer. Returns NaN for an out-of-range index.
//
// Structurally this is the same per-body switch and "5*log10(r*delta) +
// phase polynomial" shape as the modern Mallama & Hilton (2018)
// magnitude formulas, with older coefficient sets in place of those
// 2018 ones; this package does not carry the 2018 formulas.
func MagnitudeMuller(body Planet, phaseAngleDeg, rAU, deltaAU float64) float64 {
	if body < Mercury || body > Neptune {
		return math.NaN()
	}
	dm := 5 * math.Log10(rAU*deltaAU)
	i := phaseAngleDeg

	switch body {
	case Mercury:
		return -0.36 + dm + 0.027*i + 2.2e-13*math.Pow(i, 6)
	case Venus:
		return -4.34 + dm + 0.013*i + 4.2e-7*i*i*i
	case Earth:
		return -3.86 + dm
	case Mars:
		return -1.37 + dm + 0.014*i + 4.2e-4*i*i
	case Jupiter:
		return -9.35 + dm
	case Saturn:
		return -8.68 + dm
	case Uranus:
		return -7.19 + dm
	case Neptune:
		return -6.87 + dm
	}
	return math.NaN()
}

// Magnitude1984 computes a planet's apparent visual magnitude using the
// 1984 Astronomical Almanac formulas (Meeus table 41.1).
func Magnitude1984(body Planet, phaseAngleDeg, rAU, deltaAU float64) float64 {
	if body < Mercury || body > Neptune {
		return math.NaN()
	}
	dm := 5 * math.Log10(rAU*deltaAU)
	i := phaseAngleDeg

	switch body {
	case Mercury:
		return -0.42 + dm + 0.0380*i - 0.000273*i*i + 0.000002*i*i*i
	case Venus:
		return -4.40 + dm + 0.0009*i + 0.000239*i*i - 0.00000065*i*i*i
	case Earth:
		return -3.86 + dm
	case Mars:
		return -1.52 + dm + 0.016*i
	case Jupiter:
		return -9.40 + dm + 0.005*i
	case Saturn:
		return -8.88 + dm
	case Uranus:
		return -7.19 + dm
	case Neptune:
		return -6.87 + dm
	}
	return math.NaN()
}
