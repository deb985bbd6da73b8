package ephem

import "math"

// SunGeocentric returns the Sun's low-precision geocentric ecliptic
// position (Meeus, "Astronomical Algorithms" ch. 25) for TDB Julian date
// jd: apparent-free geometric longitude, near-zero latitude, and
// distance in AU. Good to about 0.01° in longitude over 1900-2100.
func SunGeocentric(jd float64) Spherical {
	T := JulianCentury(jd)

	l0 := normalizeDeg(280.46646 + T*(36000.76983+T*0.0003032))
	m := normalizeDeg(357.52911 + T*(35999.05029-T*0.0001537))
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)

	mRad := m * deg2rad
	c := (1.914602-T*(0.004817+T*0.000014))*math.Sin(mRad) +
		(0.019993-T*0.000101)*math.Sin(2*mRad) +
		0.000289*math.Sin(3*mRad)

	trueLonDeg := l0 + c
	trueAnomRad := mRad + c*deg2rad

	r := (1.000001018 * (1 - e*e)) / (1 + e*math.Cos(trueAnomRad))

	return Spherical{
		Lon:  normalizeRad(trueLonDeg * deg2rad),
		Lat:  0,
		Dist: r,
	}
}
