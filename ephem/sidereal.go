package ephem

import "math"

// MeanSiderealTime returns Greenwich Mean Sidereal Time in radians,
// [0, 2π), for a given UT1 Julian date. Uses the IAU 1982 formula.
func MeanSiderealTime(jdUT1 float64) float64 {
	du := jdUT1 - J2000JD
	T := du / 36525.0

	gmstDeg := 280.46061837 + 360.98564736629*du +
		0.000387933*T*T - T*T*T/38710000.0

	return normalizeDeg(gmstDeg) * deg2rad
}

// ApparentSiderealTime returns Greenwich Apparent Sidereal Time in
// radians, [0, 2π): GMST plus the equation of the equinoxes
// (Δψ·cos(mean obliquity)).
func ApparentSiderealTime(jdUT1 float64) float64 {
	gmst := MeanSiderealTime(jdUT1)
	T := JulianCentury(jdUT1)

	dpsiRad, _ := Nutation(T)
	epsM := MeanObliquity(T)
	eqEq := dpsiRad * math.Cos(epsM)

	return normalizeRad(gmst + eqEq)
}
