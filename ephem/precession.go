package ephem

import "math"

// generalPrecessionLongitude returns the IAU 2006 general precession in
// longitude, p_A, in radians, for T Julian centuries from J2000 TDB.
func generalPrecessionLongitude(T float64) float64 {
	return (5028.796195*T + 1.1054348*T*T) * arcsec2rad
}

// PrecessEcliptic advances an ecliptic longitude/latitude from jdFrom to
// jdTo. To first order only the longitude shifts (precession in latitude
// is negligible): λ_to = λ_from + p_A(T_to) − p_A(T_from).
func PrecessEcliptic(lon, lat, jdFrom, jdTo float64) (newLon, newLat float64) {
	tFrom := JulianCentury(jdFrom)
	tTo := JulianCentury(jdTo)
	dp := generalPrecessionLongitude(tTo) - generalPrecessionLongitude(tFrom)
	return normalizeRad(lon + dp), lat
}

// PrecessEquatorial advances a right ascension/declination pair from
// jdFrom to jdTo using the classical ζ/z/θ rotation (Meeus ch. 21),
// evaluated over the century span between the two dates.
func PrecessEquatorial(ra, dec, jdFrom, jdTo float64) (newRA, newDec float64) {
	T := JulianCentury(jdFrom)
	t := (jdTo - jdFrom) / 36525.0

	zetaA, zA, thetaA := precessionAnglesSpan(T, t)

	cosDec, sinDec := math.Cos(dec), math.Sin(dec)
	cosRaZeta, sinRaZeta := math.Cos(ra+zetaA), math.Sin(ra+zetaA)
	cosTheta, sinTheta := math.Cos(thetaA), math.Sin(thetaA)

	A := cosDec * sinRaZeta
	B := cosTheta*cosDec*cosRaZeta - sinTheta*sinDec
	C := sinTheta*cosDec*cosRaZeta + cosTheta*sinDec

	newRA = normalizeRad(math.Atan2(A, B) + zA)
	newDec = math.Asin(clamp(C, -1, 1))
	return
}

// precessionAnglesSpan evaluates the standard precession angle polynomials
// for a starting epoch T (centuries from J2000) and an interval t
// (centuries), matching the two-epoch form of the classical formulas.
func precessionAnglesSpan(T, t float64) (zetaA, zA, thetaA float64) {
	zetaA = ((2306.2181+1.39656*T-0.000139*T*T)*t +
		(0.30188-0.000344*T)*t*t + 0.017998*t*t*t) * arcsec2rad
	zA = ((2306.2181+1.39656*T-0.000139*T*T)*t +
		(1.09468+0.000066*T)*t*t + 0.018203*t*t*t) * arcsec2rad
	thetaA = ((2004.3109-0.85330*T-0.000217*T*T)*t -
		(0.42665+0.000217*T)*t*t - 0.041833*t*t*t) * arcsec2rad
	return
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
