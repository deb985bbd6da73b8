package ephem

// LunarAscendingNode returns the Moon's mean ascending node ecliptic
// longitude (radians, normalized to [0, 2π)) at TDB Julian date jd.
// Adapted from the teacher's mean lunar node formula (Meeus).
func LunarAscendingNode(jd float64) float64 {
	T := JulianCentury(jd)
	omega := 125.04452 - 1934.136261*T + 0.0020708*T*T + T*T*T/450000.0
	return normalizeDeg(omega) * deg2rad
}

// LunarPerigee returns the Moon's mean perigee ecliptic longitude
// (radians, normalized to [0, 2π)) at TDB Julian date jd. The teacher's
// lunarnodes package only carried the ascending node; this adds the
// matching mean-perigee polynomial the spec also asks for.
func LunarPerigee(jd float64) float64 {
	T := JulianCentury(jd)
	pi := 83.3532465 + T*(4069.0137287+T*(-0.0103200+T*(-1.0/80053+T/18999000)))
	return normalizeDeg(pi) * deg2rad
}
