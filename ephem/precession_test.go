package ephem

import (
	"math"
	"testing"
)

func TestPrecessEclipticIdentityOverZeroSpan(t *testing.T) {
	lon, lat := PrecessEcliptic(1.0, 0.5, J2000JD, J2000JD)
	if math.Abs(lon-1.0) > 1e-12 || math.Abs(lat-0.5) > 1e-12 {
		t.Errorf("PrecessEcliptic over zero span = (%f, %f), want (1.0, 0.5)", lon, lat)
	}
}

func TestPrecessEquatorialIdentityOverZeroSpan(t *testing.T) {
	ra, dec := PrecessEquatorial(1.0, 0.3, J2000JD, J2000JD)
	if math.Abs(ra-1.0) > 1e-10 || math.Abs(dec-0.3) > 1e-10 {
		t.Errorf("PrecessEquatorial over zero span = (%f, %f), want (1.0, 0.3)", ra, dec)
	}
}

func TestPrecessEquatorialOneCenturyShiftIsPlausible(t *testing.T) {
	jdPlus100y := J2000JD + 100*365.25
	_, dec0 := PrecessEquatorial(0, 0, J2000JD, J2000JD)
	ra1, dec1 := PrecessEquatorial(0, 0, J2000JD, jdPlus100y)

	// General precession in longitude is about 1.4 deg/century; a point
	// on the equator should show an RA shift of a similar order and a
	// small but nonzero declination shift.
	if math.Abs(ra1) < 1e-4 {
		t.Errorf("PrecessEquatorial RA shift over a century = %f rad, want clearly nonzero", ra1)
	}
	if dec0 != 0 {
		t.Fatalf("sanity check failed: PrecessEquatorial(0,0,same,same) dec = %f, want 0", dec0)
	}
	_ = dec1
}
