package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSunPositionFinite(t *testing.T) {
	p := GetSunPosition(2451545.0, true)
	r := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
	if r < 0.98 || r > 0.99 {
		t.Errorf("GetSunPosition distance = %f AU, want ~0.983", r)
	}
}

func TestGetPlanetPositionInvalidIndexIsNil(t *testing.T) {
	if p := GetPlanetPosition(-1, 2451545.0); p != nil {
		t.Errorf("GetPlanetPosition(-1, ...) = %v, want nil", p)
	}
	if p := GetPlanetPosition(8, 2451545.0); p != nil {
		t.Errorf("GetPlanetPosition(8, ...) = %v, want nil", p)
	}
}

func TestGetPlutoPositionNeverNil(t *testing.T) {
	require.NotNil(t, GetPlutoPosition(2451545.0), "GetPlutoPosition should never be nil for a valid jd")
}

func TestGetOrbitalElementsIndexDomain(t *testing.T) {
	assert.Nil(t, GetOrbitalElements(-1, 2451545.0))
	assert.Nil(t, GetOrbitalElements(9, 2451545.0))
	assert.NotNil(t, GetOrbitalElements(8, 2451545.0), "index 8 selects Pluto")
	assert.NotNil(t, GetOrbitalElements(2, 2451545.0), "index 2 selects Earth")
}

func TestGetLunarIlluminationFractionInRange(t *testing.T) {
	f := GetLunarIlluminationFraction(2451545.0)
	if f < 0 || f > 1 {
		t.Errorf("GetLunarIlluminationFraction = %f, want [0, 1]", f)
	}
}

func TestSiderealTimeNormalizationAndSpread(t *testing.T) {
	gmst := GetMeanSiderealTime(2451545.0)
	gast := GetApparentSiderealTime(2451545.0)

	if gmst < 0 || gmst >= 2*math.Pi {
		t.Errorf("GetMeanSiderealTime = %f, want [0, 2π)", gmst)
	}
	if gast < 0 || gast >= 2*math.Pi {
		t.Errorf("GetApparentSiderealTime = %f, want [0, 2π)", gast)
	}
	diff := math.Abs(gast - gmst)
	if diff > 0.1 && 2*math.Pi-diff > 0.1 {
		t.Errorf("|GAST-GMST| = %f, want magnitude < 0.1 rad", diff)
	}
}

func TestGetPlanetaryApparentMagnitudeUnsupportedIndexIsNaN(t *testing.T) {
	if m := GetPlanetaryApparentMagnitudeMuller(9, 0, 1, 1); !math.IsNaN(m) {
		t.Errorf("GetPlanetaryApparentMagnitudeMuller(9, ...) = %f, want NaN", m)
	}
	if m := GetPlanetaryApparentMagnitude84(9, 0, 1, 1); !math.IsNaN(m) {
		t.Errorf("GetPlanetaryApparentMagnitude84(9, ...) = %f, want NaN", m)
	}
}

// TestSolarZenithConsistencyWithComputeState exercises spec property 6:
// the zenith computed step-by-step from the individual auxiliary getters
// must match compute_state's bundled zenith to within 1e-12 rad.
func TestSolarZenithConsistencyWithComputeState(t *testing.T) {
	const jd = 2451545.0

	frame := ComputeState(jd)

	sunPos := GetSunPosition(jd, false)
	lon := math.Atan2(sunPos[1], sunPos[0])
	eq := ConvertEclipticToEquatorial(lon, 0, jd, true)

	gast := GetApparentSiderealTime(jd)
	zenithLon := eq[0] - gast
	for zenithLon > math.Pi {
		zenithLon -= 2 * math.Pi
	}
	for zenithLon <= -math.Pi {
		zenithLon += 2 * math.Pi
	}

	if math.Abs(zenithLon-frame[9]) > 1e-12 {
		t.Errorf("step-by-step zenith longitude = %f, compute_state = %f, want within tolerance", zenithLon, frame[9])
	}
	if math.Abs(eq[1]-frame[10]) > 1e-12 {
		t.Errorf("step-by-step zenith latitude = %f, compute_state = %f, want within tolerance", eq[1], frame[10])
	}
}

func TestJulianDayToCenturyMatchesEphem(t *testing.T) {
	got := JulianDayToCentury(2451545.0)
	if got != 0 {
		t.Errorf("JulianDayToCentury(J2000) = %f, want 0", got)
	}
}

func TestGetVersionAndFunctionCount(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion() returned an empty string")
	}
	if GetFunctionCount() != 25 {
		t.Errorf("GetFunctionCount() = %d, want 25", GetFunctionCount())
	}
}
