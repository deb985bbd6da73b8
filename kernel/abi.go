//go:build wasip1

package kernel

import "unsafe"

// This file is the kernel's actual ABI boundary: thin, allocation-free
// wrappers around the package's Go entry points, each carrying a
// //go:wasmexport directive so the host's module loader sees a stable,
// primitive-only symbol. Every wrapper degrades pointer results to a
// raw unsafe.Pointer (nil standing in for null) and boolean/index arguments to
// their narrowest integer type, per the calling ABI: no aggregates, no
// strings except get_version, cross the boundary.

//go:wasmexport compute_state
func wasmComputeState(jdUTC float64) unsafe.Pointer {
	return unsafe.Pointer(ComputeState(jdUTC))
}

//go:wasmexport next_winter_solstice_from
func wasmNextWinterSolsticeFrom(jdUTCStart float64) float64 {
	return NextWinterSolsticeFrom(jdUTCStart)
}

//go:wasmexport set_tai_minus_utc_override
func wasmSetTAIMinusUTCOverride(seconds float64) {
	setTAIMinusUTCOverride(seconds)
}

//go:wasmexport clear_tai_minus_utc_override
func wasmClearTAIMinusUTCOverride() {
	clearTAIMinusUTCOverride()
}

//go:wasmexport utc_to_tt_jd
func wasmUTCToTTJD(jdUTC float64) float64 {
	return UTCToTTJD(jdUTC)
}

//go:wasmexport tt_to_utc_jd
func wasmTTToUTCJD(jdTT float64) float64 {
	return TTToUTCJD(jdTT)
}

//go:wasmexport get_sun_position
func wasmGetSunPosition(jd float64, applyNutation int32) unsafe.Pointer {
	return unsafe.Pointer(GetSunPosition(jd, applyNutation != 0))
}

//go:wasmexport get_moon_position
func wasmGetMoonPosition(jd float64, applyNutation int32) unsafe.Pointer {
	return unsafe.Pointer(GetMoonPosition(jd, applyNutation != 0))
}

//go:wasmexport get_planet_position
func wasmGetPlanetPosition(index int32, jd float64) unsafe.Pointer {
	p := GetPlanetPosition(int(index), jd)
	if p == nil {
		return nil
	}
	return unsafe.Pointer(p)
}

//go:wasmexport get_pluto_position
func wasmGetPlutoPosition(jd float64) unsafe.Pointer {
	return unsafe.Pointer(GetPlutoPosition(jd))
}

//go:wasmexport get_nutation
func wasmGetNutation(jd float64) unsafe.Pointer {
	return unsafe.Pointer(GetNutation(jd))
}

//go:wasmexport get_mean_obliquity
func wasmGetMeanObliquity(jd float64) float64 {
	return GetMeanObliquity(jd)
}

//go:wasmexport get_orbital_elements
func wasmGetOrbitalElements(index int32, jd float64) unsafe.Pointer {
	p := GetOrbitalElements(int(index), jd)
	if p == nil {
		return nil
	}
	return unsafe.Pointer(p)
}

//go:wasmexport get_lunar_illumination_fraction
func wasmGetLunarIlluminationFraction(jd float64) float64 {
	return GetLunarIlluminationFraction(jd)
}

//go:wasmexport get_lunar_ascending_node
func wasmGetLunarAscendingNode(jd float64) float64 {
	return GetLunarAscendingNode(jd)
}

//go:wasmexport get_lunar_perigee
func wasmGetLunarPerigee(jd float64) float64 {
	return GetLunarPerigee(jd)
}

//go:wasmexport apply_precession_ecliptic
func wasmApplyPrecessionEcliptic(lon, lat, jdFrom, jdTo float64) unsafe.Pointer {
	return unsafe.Pointer(ApplyPrecessionEcliptic(lon, lat, jdFrom, jdTo))
}

//go:wasmexport apply_precession_equatorial
func wasmApplyPrecessionEquatorial(ra, dec, jdFrom, jdTo float64) unsafe.Pointer {
	return unsafe.Pointer(ApplyPrecessionEquatorial(ra, dec, jdFrom, jdTo))
}

//go:wasmexport get_planetary_apparent_magnitude_muller
func wasmGetPlanetaryApparentMagnitudeMuller(index int32, alphaDeg, deltaAU, rAU float64) float64 {
	return GetPlanetaryApparentMagnitudeMuller(int(index), alphaDeg, deltaAU, rAU)
}

//go:wasmexport get_planetary_apparent_magnitude_84
func wasmGetPlanetaryApparentMagnitude84(index int32, alphaDeg, deltaAU, rAU float64) float64 {
	return GetPlanetaryApparentMagnitude84(int(index), alphaDeg, deltaAU, rAU)
}

//go:wasmexport get_planetary_semidiameter
func wasmGetPlanetarySemidiameter(index int32, dAU float64) float64 {
	return GetPlanetarySemidiameter(int(index), dAU)
}

//go:wasmexport get_sun_semidiameter
func wasmGetSunSemidiameter(dAU float64) float64 {
	return GetSunSemidiameter(dAU)
}

//go:wasmexport get_moon_semidiameter
func wasmGetMoonSemidiameter(dKm float64) float64 {
	return GetMoonSemidiameter(dKm)
}

//go:wasmexport get_moon_horizontal_parallax
func wasmGetMoonHorizontalParallax(dKm float64) float64 {
	return GetMoonHorizontalParallax(dKm)
}

//go:wasmexport get_mean_sidereal_time
func wasmGetMeanSiderealTime(jd float64) float64 {
	return GetMeanSiderealTime(jd)
}

//go:wasmexport get_apparent_sidereal_time
func wasmGetApparentSiderealTime(jd float64) float64 {
	return GetApparentSiderealTime(jd)
}

//go:wasmexport convert_ecliptic_to_equatorial
func wasmConvertEclipticToEquatorial(lon, lat, jd float64, applyNutation int32) unsafe.Pointer {
	return unsafe.Pointer(ConvertEclipticToEquatorial(lon, lat, jd, applyNutation != 0))
}

//go:wasmexport julian_day_to_century
func wasmJulianDayToCentury(jd float64) float64 {
	return JulianDayToCentury(jd)
}

//go:wasmexport get_function_count
func wasmGetFunctionCount() uint32 {
	return GetFunctionCount()
}

// get_version is deliberately not exported here: it is the one
// string-returning entry point, and passing a Go string across the
// wasmexport boundary needs the host's own (ptr, len) convention, which
// is a decision for the embedding host, not this kernel.
