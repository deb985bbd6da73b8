package ephem

import "math"

// MoonGeocentric returns the Moon's geocentric ecliptic position (a
// truncated ELP2000-class series, Meeus ch. 47's dominant periodic
// terms) for TDB Julian date jd: longitude, latitude (radians), and
// distance (km).
func MoonGeocentric(jd float64) Spherical {
	T := JulianCentury(jd)

	lp := normalizeDeg(218.3164477 + T*(481267.88123421+T*(-0.0015786+T*(1.0/538841-T/65194000))))
	d := normalizeDeg(297.8501921 + T*(445267.1114034+T*(-0.0018819+T*(1.0/545868-T/113065000))))
	m := normalizeDeg(357.5291092 + T*(35999.0502909+T*(-0.0001536+T/24490000)))
	mp := normalizeDeg(134.9633964 + T*(477198.8675055+T*(0.0087414+T*(1.0/69699-T/14712000))))
	f := normalizeDeg(93.2720950 + T*(483202.0175233+T*(-0.0036539+T*(-1.0/3526000+T/863310000))))

	dr, mr, mpr, fr := d*deg2rad, m*deg2rad, mp*deg2rad, f*deg2rad

	sumL := 6.288774*math.Sin(mpr) +
		1.274027*math.Sin(2*dr-mpr) +
		0.658314*math.Sin(2*dr) +
		0.213618*math.Sin(2*mpr) -
		0.185116*math.Sin(mr) -
		0.114332*math.Sin(2*fr)

	sumB := 5.128122*math.Sin(fr) +
		0.280602*math.Sin(mpr+fr) +
		0.277693*math.Sin(mpr-fr) +
		0.173237*math.Sin(2*dr-fr) +
		0.055413*math.Sin(2*dr+fr-mpr) +
		0.046271*math.Sin(2*dr-fr-mpr)

	sumR := -20905.355*math.Cos(mpr) -
		3699.111*math.Cos(2*dr-mpr) -
		2955.968*math.Cos(2*dr) -
		569.925*math.Cos(2*mpr) +
		48.888*math.Cos(mr) -
		3.149*math.Cos(2*fr)

	lonDeg := normalizeDeg(lp + sumL)
	latDeg := sumB
	distKm := 385000.56 + sumR

	return Spherical{
		Lon:  lonDeg * deg2rad,
		Lat:  latDeg * deg2rad,
		Dist: distKm,
	}
}
