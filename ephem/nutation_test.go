package ephem

import (
	"math"
	"testing"
)

func TestMeanObliquityAtJ2000(t *testing.T) {
	eps := MeanObliquity(0)
	wantDeg := 23.4392911
	gotDeg := eps * rad2deg
	if math.Abs(gotDeg-wantDeg) > 1e-6 {
		t.Errorf("MeanObliquity(0) = %f deg, want %f deg", gotDeg, wantDeg)
	}
}

func TestNutationMagnitudeIsPlausible(t *testing.T) {
	dpsi, deps := Nutation(0)

	// Nutation in longitude and obliquity are both known to stay under
	// about 20 arcseconds in magnitude.
	maxRad := 20.0 * arcsec2rad
	if math.Abs(dpsi) > maxRad {
		t.Errorf("Nutation(0) dpsi = %e rad, exceeds plausible 20 arcsec bound", dpsi)
	}
	if math.Abs(deps) > maxRad {
		t.Errorf("Nutation(0) deps = %e rad, exceeds plausible 20 arcsec bound", deps)
	}
}

func TestNutationVariesOverOneJulianCentury(t *testing.T) {
	dpsi0, deps0 := Nutation(0)
	dpsi1, deps1 := Nutation(1)

	if dpsi0 == dpsi1 && deps0 == deps1 {
		t.Errorf("Nutation(0) and Nutation(1) are identical, expected the luni-solar terms to vary over a century")
	}
}
