package kernel

import "github.com/orbitaldeck/astrokernel/ephem"

// Auxiliary primitives are off-hot-path entry points for inspector panels,
// debugging, and richer overlays. Each pointer-returning getter below
// writes into its own dedicated thread-local buffer and returns a
// pointer valid until the next call to that same entry point on the
// same goroutine; scalar getters need no buffer at all.

// GetSunPosition returns the Sun's geocentric ecliptic position as
// Cartesian AU, optionally corrected for nutation in longitude.
func GetSunPosition(jd float64, applyNutation bool) *[3]float64 {
	if !isValidJD(jd) {
		return nil
	}
	buf := sunPositionStore.Get()
	sun := ephem.SunGeocentric(jd)
	if applyNutation {
		T := ephem.JulianCentury(jd)
		dpsi, _ := ephem.Nutation(T)
		sun.Lon += dpsi
	}
	*buf = sun.Cartesian()
	return buf
}

// GetMoonPosition returns the Moon's geocentric ecliptic position as
// Cartesian AU (converted from the ephem package's km), optionally
// corrected for nutation in longitude.
func GetMoonPosition(jd float64, applyNutation bool) *[3]float64 {
	if !isValidJD(jd) {
		return nil
	}
	buf := moonPositionStore.Get()
	moon := ephem.MoonGeocentric(jd)
	if applyNutation {
		T := ephem.JulianCentury(jd)
		dpsi, _ := ephem.Nutation(T)
		moon.Lon += dpsi
	}
	moon.Dist /= ephem.AUKm
	*buf = moon.Cartesian()
	return buf
}

// GetPlanetPosition returns a planet's heliocentric ecliptic Cartesian
// position in AU. index must be in [0,7] (Mercury..Neptune); any other
// value yields nil.
func GetPlanetPosition(index int, jd float64) *[3]float64 {
	if index < 0 || index > int(ephem.Neptune) {
		return nil
	}
	if !isValidJD(jd) {
		return nil
	}
	buf := planetPositionStore.Get()
	*buf = ephem.HeliocentricCartesian(ephem.Planet(index), jd)
	return buf
}

// GetPlutoPosition returns Pluto's heliocentric ecliptic Cartesian
// position in AU. Unlike GetPlanetPosition, there is no invalid index to
// reject, so this never returns nil for a valid jd.
func GetPlutoPosition(jd float64) *[3]float64 {
	if !isValidJD(jd) {
		return nil
	}
	buf := plutoPositionStore.Get()
	sph := ephem.PlutoHeliocentricEcliptic(jd)
	*buf = sph.Cartesian()
	return buf
}

// GetNutation returns (Δψ, Δε) in radians at TT Julian date jd.
func GetNutation(jd float64) *[2]float64 {
	if !isValidJD(jd) {
		return nil
	}
	buf := nutationStore.Get()
	T := ephem.JulianCentury(jd)
	dpsi, deps := ephem.Nutation(T)
	buf[0], buf[1] = dpsi, deps
	return buf
}

// GetMeanObliquity returns the mean obliquity of the ecliptic, radians,
// at TT Julian date jd.
func GetMeanObliquity(jd float64) float64 {
	if !isFinite(jd) {
		return nan()
	}
	return ephem.MeanObliquity(ephem.JulianCentury(jd))
}

// GetOrbitalElements returns (L, a, e, i, Ω, ϖ, M, ω) for the body at
// index. Planet indices are [0,7]; index 8 selects Pluto. Any other
// index yields nil.
func GetOrbitalElements(index int, jd float64) *[8]float64 {
	if index < 0 || index > 8 {
		return nil
	}
	if !isValidJD(jd) {
		return nil
	}
	buf := orbitalElementsStore.Get()
	var el ephem.Elements
	if index == 8 {
		el = ephem.PlutoElements(ephem.JulianCentury(jd))
	} else {
		el = ephem.PlanetElements(ephem.Planet(index), ephem.JulianCentury(jd))
	}
	buf[0], buf[1], buf[2], buf[3] = el.L, el.A, el.E, el.I
	buf[4], buf[5], buf[6], buf[7] = el.Omega, el.Varpi, el.M, el.Omega2
	return buf
}

// GetLunarIlluminationFraction returns the Moon's illuminated fraction
// in [0,1] at TT Julian date jd.
func GetLunarIlluminationFraction(jd float64) float64 {
	if !isFinite(jd) {
		return nan()
	}
	return ephem.LunarIlluminationFraction(jd)
}

// GetLunarAscendingNode returns the Moon's mean ascending node longitude,
// radians, at TT Julian date jd.
func GetLunarAscendingNode(jd float64) float64 {
	if !isFinite(jd) {
		return nan()
	}
	return ephem.LunarAscendingNode(jd)
}

// GetLunarPerigee returns the Moon's mean perigee longitude, radians, at
// TT Julian date jd.
func GetLunarPerigee(jd float64) float64 {
	if !isFinite(jd) {
		return nan()
	}
	return ephem.LunarPerigee(jd)
}

// ApplyPrecessionEcliptic precesses an ecliptic (lon, lat) pair in
// radians from jdFrom to jdTo.
func ApplyPrecessionEcliptic(lon, lat, jdFrom, jdTo float64) *[2]float64 {
	if !isFinite(lon) || !isFinite(lat) || !isValidJD(jdFrom) || !isValidJD(jdTo) {
		return nil
	}
	buf := precessionEclStore.Get()
	newLon, newLat := ephem.PrecessEcliptic(lon, lat, jdFrom, jdTo)
	buf[0], buf[1] = newLon, newLat
	return buf
}

// ApplyPrecessionEquatorial precesses an equatorial (ra, dec) pair in
// radians from jdFrom to jdTo.
func ApplyPrecessionEquatorial(ra, dec, jdFrom, jdTo float64) *[2]float64 {
	if !isFinite(ra) || !isFinite(dec) || !isValidJD(jdFrom) || !isValidJD(jdTo) {
		return nil
	}
	buf := precessionEquStore.Get()
	newRA, newDec := ephem.PrecessEquatorial(ra, dec, jdFrom, jdTo)
	buf[0], buf[1] = newRA, newDec
	return buf
}

// GetPlanetaryApparentMagnitudeMuller returns the Müller (1893) apparent
// magnitude for the planet at index, given phase angle α in degrees,
// observer distance Δ in AU, and heliocentric distance r in AU. NaN for
// an unsupported index.
func GetPlanetaryApparentMagnitudeMuller(index int, alphaDeg, deltaAU, rAU float64) float64 {
	if index < 0 || index > int(ephem.Neptune) {
		return nan()
	}
	return ephem.MagnitudeMuller(ephem.Planet(index), alphaDeg, rAU, deltaAU)
}

// GetPlanetaryApparentMagnitude84 returns the 1984 Astronomical Almanac
// apparent magnitude for the planet at index. NaN for an unsupported
// index.
func GetPlanetaryApparentMagnitude84(index int, alphaDeg, deltaAU, rAU float64) float64 {
	if index < 0 || index > int(ephem.Neptune) {
		return nan()
	}
	return ephem.Magnitude1984(ephem.Planet(index), alphaDeg, rAU, deltaAU)
}

// GetPlanetarySemidiameter returns the apparent angular semidiameter, in
// radians, of the planet at index seen from distance dAU. NaN for an
// unsupported index.
func GetPlanetarySemidiameter(index int, dAU float64) float64 {
	if index < 0 || index > int(ephem.Neptune) {
		return nan()
	}
	return ephem.PlanetSemidiameter(ephem.Planet(index), dAU)
}

// GetSunSemidiameter returns the Sun's apparent angular semidiameter, in
// radians, seen from distance dAU.
func GetSunSemidiameter(dAU float64) float64 {
	if !isFinite(dAU) {
		return nan()
	}
	return ephem.SunSemidiameter(dAU)
}

// GetMoonSemidiameter returns the Moon's apparent angular semidiameter,
// in radians, seen from distance dKm.
func GetMoonSemidiameter(dKm float64) float64 {
	if !isFinite(dKm) {
		return nan()
	}
	return ephem.MoonSemidiameter(dKm)
}

// GetMoonHorizontalParallax returns the Moon's horizontal parallax, in
// radians, seen from distance dKm.
func GetMoonHorizontalParallax(dKm float64) float64 {
	if !isFinite(dKm) {
		return nan()
	}
	return ephem.MoonHorizontalParallax(dKm)
}

// GetMeanSiderealTime returns Greenwich mean sidereal time in radians,
// normalized to [0, 2π), at UT1 Julian date jd.
func GetMeanSiderealTime(jd float64) float64 {
	if !isFinite(jd) {
		return nan()
	}
	return ephem.MeanSiderealTime(jd)
}

// GetApparentSiderealTime returns Greenwich apparent sidereal time in
// radians, normalized to [0, 2π), at UT1 Julian date jd.
func GetApparentSiderealTime(jd float64) float64 {
	if !isFinite(jd) {
		return nan()
	}
	return ephem.ApparentSiderealTime(jd)
}

// ConvertEclipticToEquatorial converts an ecliptic (lon, lat) pair in
// radians to equatorial (ra, dec), at TT Julian date jd, optionally
// applying nutation in longitude and obliquity first.
func ConvertEclipticToEquatorial(lon, lat, jd float64, applyNutation bool) *[2]float64 {
	if !isFinite(lon) || !isFinite(lat) || !isValidJD(jd) {
		return nil
	}
	buf := equatorialStore.Get()
	T := ephem.JulianCentury(jd)
	obliq := ephem.MeanObliquity(T)
	if applyNutation {
		dpsi, deps := ephem.Nutation(T)
		lon += dpsi
		obliq += deps
	}
	ra, dec := ephem.EclipticToEquatorial(lon, lat, obliq)
	buf[0], buf[1] = ra, dec
	return buf
}

// JulianDayToCentury returns the number of Julian centuries of 36525
// days since J2000.0 for Julian date jd.
func JulianDayToCentury(jd float64) float64 {
	if !isFinite(jd) {
		return nan()
	}
	return ephem.JulianCentury(jd)
}
