package kernel

import (
	"github.com/orbitaldeck/astrokernel/ephem"
	"github.com/orbitaldeck/astrokernel/timescale"
)

// ComputeState is the kernel's single per-frame hot-path entry point. It
// writes an 11-element f64 bundle into the calling goroutine's frame
// buffer and returns a pointer to it:
//
//	[0:3)  reserved, always 0.0 (no geocentric Sun position is computed
//	       per frame — the host derives Sun direction from Earth's
//	       heliocentric position at index 6:9)
//	[3:6)  Moon geocentric Cartesian position, AU
//	[6:9)  Earth heliocentric Cartesian position, AU
//	[9]    solar-zenith longitude, radians, east-positive
//	[10]   solar-zenith latitude, radians, north-positive
//
// The returned pointer is valid until the next call to ComputeState on
// the same goroutine. jdUTC that is not finite and strictly positive is
// not a computable instant; ComputeState returns nil rather than touch
// the frame buffer, and the caller must check for nil before reading.
func ComputeState(jdUTC float64) *[11]float64 {
	if !isValidJD(jdUTC) {
		return nil
	}

	buf := frameStore.Get()

	jdTT := timescale.UTCToTTJD(jdUTC)

	moon := ephem.MoonGeocentric(jdTT)
	moonCart := (ephem.Spherical{Lon: moon.Lon, Lat: moon.Lat, Dist: moon.Dist / ephem.AUKm}).Cartesian()

	earthCart := ephem.HeliocentricCartesian(ephem.Earth, jdTT)

	// GAST/Earth-orientation quantities are rotation-angle functions of
	// UT1; UT1 and UTC never differ by more than ~0.9s (the reason DUT1
	// exists), well inside the solar-zenith tolerance the kernel targets,
	// so the UTC Julian date is used directly in place of UT1.
	zenithLon, zenithLat := ephem.SolarZenith(jdUTC)

	buf[0], buf[1], buf[2] = 0, 0, 0
	buf[3], buf[4], buf[5] = moonCart[0], moonCart[1], moonCart[2]
	buf[6], buf[7], buf[8] = earthCart[0], earthCart[1], earthCart[2]
	buf[9] = zenithLon
	buf[10] = zenithLat

	return buf
}
