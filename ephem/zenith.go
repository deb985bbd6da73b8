package ephem

import "math"

// SolarDeclination returns the Sun's apparent declination, in radians, at
// TDB Julian date jdTT: nutation-corrected ecliptic longitude rotated
// through the true obliquity of the date. Annual aberration is not
// applied; ApparentSolarDeclination adds it.
func SolarDeclination(jdTT float64) float64 {
	T := JulianCentury(jdTT)

	dpsi, deps := Nutation(T)
	meanObliq := MeanObliquity(T)
	trueObliq := meanObliq + deps

	sun := SunGeocentric(jdTT)
	correctedLon := sun.Lon + dpsi

	_, dec := EclipticToEquatorial(correctedLon, sun.Lat, trueObliq)
	return dec
}

// ApparentSolarDeclination is SolarDeclination with annual aberration in
// longitude folded in. This is the quantity the winter-solstice solver
// minimizes. The per-frame state bundle takes its declination from
// SolarZenith, which, like SolarDeclination, omits aberration.
func ApparentSolarDeclination(jdTT float64) float64 {
	T := JulianCentury(jdTT)

	dpsi, deps := Nutation(T)
	meanObliq := MeanObliquity(T)
	trueObliq := meanObliq + deps

	sun := SunGeocentric(jdTT)
	aberr := AnnualAberrationLongitude(sun.Dist)
	correctedLon := sun.Lon + dpsi + aberr

	_, dec := EclipticToEquatorial(correctedLon, sun.Lat, trueObliq)
	return dec
}

// SolarZenith returns the geographic point on Earth directly beneath the
// Sun at UT1 Julian date jdUT1: longitude in radians, east-positive, and
// latitude in radians, north-positive (equal to the Sun's apparent
// declination).
func SolarZenith(jdUT1 float64) (lonRad, latRad float64) {
	T := JulianCentury(jdUT1)

	dpsi, deps := Nutation(T)
	meanObliq := MeanObliquity(T)
	trueObliq := meanObliq + deps

	sun := SunGeocentric(jdUT1)
	correctedLon := sun.Lon + dpsi

	ra, dec := EclipticToEquatorial(correctedLon, sun.Lat, trueObliq)
	gast := ApparentSiderealTime(jdUT1)

	// Local sidereal time at east longitude λ is gast+λ; the Sun sits on
	// the local meridian (zenith) where that equals its right ascension,
	// so λ = ra - gast. Written the other way around this places the
	// subsolar point in the wrong hemisphere.
	lon := normalizeRad(ra - gast)
	if lon > math.Pi {
		lon -= 2 * math.Pi
	}
	return lon, dec
}
